package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	err_storage "github.com/avGenie/go-checkout-system/internal/app/storage/api/errors"
	"github.com/avGenie/go-checkout-system/internal/app/storage/api/model"
	"github.com/avGenie/go-checkout-system/internal/app/storage/postgres/migrations"
)

const uniqueViolationCode = "23505"

type Postgres struct {
	model.Storage

	db *sql.DB
}

func NewPostgresStorage(ctx context.Context, dbStorageConnect string) (*Postgres, error) {
	db, err := sql.Open("pgx", dbStorageConnect)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}

	storage := &Postgres{
		db: db,
	}

	if err := storage.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error while postgresql ping: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error while setting goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("error while applying migrations: %w", err)
	}

	return nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Postgres) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	order.ID = entity.OrderID(uuid.NewString())
	order.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while starting create order transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO orders
		(id, user_id, transaction_id, payment_status, products_quantity, total_price,
		 address, city, state, country, pin_code, phone_no, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	address := order.ShippingAddress
	_, err = tx.ExecContext(ctx, query,
		order.ID, order.BuyerID, order.PaymentInfo.TransactionID, order.PaymentInfo.Status,
		order.ProductsQuantity, order.TotalPrice,
		address.Address, address.City, address.State, address.Country, address.PinCode, address.PhoneNo,
		order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Order{}, err_storage.ErrOrderTransactionExists
		}

		return entity.Order{}, fmt.Errorf("error while inserting order: %w", err)
	}

	query = `INSERT INTO order_products (order_id, position, product_id, quantity, unit_cost) VALUES ($1, $2, $3, $4, $5)`
	for position, product := range order.OrderedProducts {
		_, err = tx.ExecContext(ctx, query, order.ID, position, product.ProductID, product.Quantity, product.UnitCost)
		if err != nil {
			return entity.Order{}, fmt.Errorf("error while inserting ordered product %s: %w", product.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return entity.Order{}, fmt.Errorf("error while committing create order transaction: %w", err)
	}

	return order, nil
}

func (s *Postgres) GetUserOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error) {
	query := `SELECT o.id, o.user_id, o.transaction_id, o.payment_status, o.products_quantity, o.total_price,
			o.address, o.city, o.state, o.country, o.pin_code, o.phone_no, o.created_at,
			p.product_id, p.quantity, p.unit_cost
		FROM orders o
		JOIN order_products p ON p.order_id = o.id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, o.id, p.position`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error while selecting user orders: %w", err)
	}
	defer rows.Close()

	var orders entity.Orders
	for rows.Next() {
		var order entity.Order
		var product entity.OrderedProduct
		address := &order.ShippingAddress

		err := rows.Scan(
			&order.ID, &order.BuyerID, &order.PaymentInfo.TransactionID, &order.PaymentInfo.Status,
			&order.ProductsQuantity, &order.TotalPrice,
			&address.Address, &address.City, &address.State, &address.Country, &address.PinCode, &address.PhoneNo,
			&order.CreatedAt,
			&product.ProductID, &product.Quantity, &product.UnitCost,
		)
		if err != nil {
			return nil, fmt.Errorf("error while scanning user order: %w", err)
		}

		last := len(orders) - 1
		if last >= 0 && orders[last].ID == order.ID {
			orders[last].OrderedProducts = append(orders[last].OrderedProducts, product)
			continue
		}

		order.CreatedAt = order.CreatedAt.UTC()
		order.OrderedProducts = []entity.OrderedProduct{product}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating user orders: %w", err)
	}

	if len(orders) == 0 {
		return nil, err_storage.ErrOrdersForUserNotFound
	}

	return orders, nil
}

func (s *Postgres) GetProduct(ctx context.Context, productID entity.ProductID) (entity.Product, error) {
	query := `SELECT id, name, price FROM products WHERE id = $1`

	var product entity.Product
	err := s.db.QueryRowContext(ctx, query, productID).Scan(&product.ID, &product.Name, &product.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Product{}, err_storage.ErrProductNotFound
		}

		return entity.Product{}, fmt.Errorf("error while selecting product %s: %w", productID, err)
	}

	return product, nil
}

func (s *Postgres) SaveProducts(ctx context.Context, products []entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error while starting save products transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO products (id, name, price) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, updated_at = now()`
	for _, product := range products {
		if _, err := tx.ExecContext(ctx, query, product.ID, product.Name, product.Price); err != nil {
			return fmt.Errorf("error while saving product %s: %w", product.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error while committing save products transaction: %w", err)
	}

	return nil
}

func (s *Postgres) GetCart(ctx context.Context, userID entity.UserID) (entity.Cart, error) {
	query := `SELECT product_id, quantity, unit_cost FROM cart_items WHERE user_id = $1 ORDER BY added_at, product_id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return entity.Cart{}, fmt.Errorf("error while selecting cart: %w", err)
	}
	defer rows.Close()

	cart := entity.Cart{
		BuyerID: userID,
	}
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitCost); err != nil {
			return entity.Cart{}, fmt.Errorf("error while scanning cart item: %w", err)
		}

		cart.Items = append(cart.Items, item)
	}

	if err := rows.Err(); err != nil {
		return entity.Cart{}, fmt.Errorf("error while iterating cart: %w", err)
	}

	return cart, nil
}

func (s *Postgres) AddCartItem(ctx context.Context, userID entity.UserID, item entity.CartItem) error {
	query := `INSERT INTO cart_items (user_id, product_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity, unit_cost = EXCLUDED.unit_cost`

	_, err := s.db.ExecContext(ctx, query, userID, item.ProductID, item.Quantity, item.UnitCost)
	if err != nil {
		return fmt.Errorf("error while upserting cart item: %w", err)
	}

	return nil
}

func (s *Postgres) RemoveCartItems(ctx context.Context, userID entity.UserID, productIDs ...entity.ProductID) error {
	if len(productIDs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error while starting remove cart items transaction: %w", err)
	}
	defer tx.Rollback()

	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`
	for _, productID := range productIDs {
		if _, err := tx.ExecContext(ctx, query, userID, productID); err != nil {
			return fmt.Errorf("error while removing cart item %s: %w", productID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error while committing remove cart items transaction: %w", err)
	}

	return nil
}

func (s *Postgres) ClearCart(ctx context.Context, userID entity.UserID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error while clearing cart: %w", err)
	}

	if removed, err := result.RowsAffected(); err == nil {
		zap.L().Debug("cart cleared", zap.String("user_id", userID.String()), zap.Int64("items", removed))
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
