package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	err_storage "github.com/avGenie/go-checkout-system/internal/app/storage/api/errors"
	"github.com/avGenie/go-checkout-system/internal/app/storage/postgres/migrations"
)

const testUserID = "ac2a4811-4f10-487f-bde3-e39a14af7cd8"

var orderColumns = []string{
	"id", "user_id", "transaction_id", "payment_status", "products_quantity", "total_price",
	"address", "city", "state", "country", "pin_code", "phone_no", "created_at",
	"product_id", "quantity", "unit_cost",
}

func newMockStorage(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return &Postgres{db: db}, mock
}

func exampleOrder() entity.Order {
	return entity.Order{
		BuyerID: testUserID,
		ShippingAddress: entity.ShippingAddress{
			Address: "12 MG Road",
			City:    "Pune",
			Country: "India",
		},
		OrderedProducts: []entity.OrderedProduct{
			{ProductID: "p1", Quantity: 2, UnitCost: decimal.NewFromInt(500)},
			{ProductID: "p2", Quantity: 1, UnitCost: decimal.NewFromInt(300)},
		},
		PaymentInfo: entity.PaymentInfo{
			TransactionID: "pay_29QQoUBi66xm2f",
			Status:        entity.StatusSuccessfulPayment,
		},
		ProductsQuantity: 3,
		TotalPrice:       decimal.NewFromInt(1300),
	}
}

func expectOrderInsert(mock sqlmock.Sqlmock, order entity.Order) *sqlmock.ExpectedExec {
	return mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).WithArgs(
		sqlmock.AnyArg(), order.BuyerID, order.PaymentInfo.TransactionID, order.PaymentInfo.Status,
		order.ProductsQuantity, order.TotalPrice,
		"12 MG Road", "Pune", "", "India", "", "",
		sqlmock.AnyArg(),
	)
}

func TestCreateOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	order := exampleOrder()

	mock.ExpectBegin()
	expectOrderInsert(mock, order).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_products")).
		WithArgs(sqlmock.AnyArg(), 0, "p1", 2, decimal.NewFromInt(500)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_products")).
		WithArgs(sqlmock.AnyArg(), 1, "p2", 1, decimal.NewFromInt(300)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := storage.CreateOrder(context.Background(), order)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, time.UTC, created.CreatedAt.Location())
	assert.Equal(t, order.PaymentInfo, created.PaymentInfo)
}

func TestCreateOrderDuplicateTransaction(t *testing.T) {
	storage, mock := newMockStorage(t)
	order := exampleOrder()

	mock.ExpectBegin()
	expectOrderInsert(mock, order).WillReturnError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "orders_transaction_id_key",
	})
	mock.ExpectRollback()

	_, err := storage.CreateOrder(context.Background(), order)
	assert.ErrorIs(t, err, err_storage.ErrOrderTransactionExists)
}

func TestCreateOrderLineFailureRollsBack(t *testing.T) {
	storage, mock := newMockStorage(t)
	order := exampleOrder()

	mock.ExpectBegin()
	expectOrderInsert(mock, order).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_products")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := storage.CreateOrder(context.Background(), order)
	require.Error(t, err)
	assert.NotErrorIs(t, err, err_storage.ErrOrderTransactionExists)
}

func TestGetUserOrders(t *testing.T) {
	storage, mock := newMockStorage(t)

	newer := time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC)
	older := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows(orderColumns).
		AddRow("o2", testUserID, "pay_2", "Successful", 3, "1300", "12 MG Road", "Pune", "", "India", "", "", newer, "p1", 2, "500").
		AddRow("o2", testUserID, "pay_2", "Successful", 3, "1300", "12 MG Road", "Pune", "", "India", "", "", newer, "p2", 1, "300").
		AddRow("o1", testUserID, "pay_1", "Successful", 1, "99.5", "4 Park St", "Kolkata", "", "India", "", "", older, "p3", 1, "99.5")

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders o")).WithArgs(testUserID).WillReturnRows(rows)

	orders, err := storage.GetUserOrders(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, entity.OrderID("o2"), orders[0].ID)
	assert.Equal(t, "pay_2", orders[0].PaymentInfo.TransactionID)
	assert.Equal(t, entity.StatusSuccessfulPayment, orders[0].PaymentInfo.Status)
	assert.True(t, decimal.NewFromInt(1300).Equal(orders[0].TotalPrice))
	require.Len(t, orders[0].OrderedProducts, 2)
	assert.Equal(t, entity.ProductID("p1"), orders[0].OrderedProducts[0].ProductID)
	assert.Equal(t, entity.ProductID("p2"), orders[0].OrderedProducts[1].ProductID)

	assert.Equal(t, entity.OrderID("o1"), orders[1].ID)
	assert.Equal(t, "Kolkata", orders[1].ShippingAddress.City)
	require.Len(t, orders[1].OrderedProducts, 1)
	assert.True(t, decimal.RequireFromString("99.5").Equal(orders[1].OrderedProducts[0].UnitCost))
}

func TestGetUserOrdersEmpty(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders o")).WithArgs(testUserID).WillReturnRows(sqlmock.NewRows(orderColumns))

	_, err := storage.GetUserOrders(context.Background(), testUserID)
	assert.ErrorIs(t, err, err_storage.ErrOrdersForUserNotFound)
}

func TestGetCart(t *testing.T) {
	tests := []struct {
		name  string
		rows  *sqlmock.Rows
		items int
	}{
		{
			name: "cart with items",
			rows: sqlmock.NewRows([]string{"product_id", "quantity", "unit_cost"}).
				AddRow("p1", 2, "500").
				AddRow("p2", 1, "300"),
			items: 2,
		},
		{
			name:  "empty cart",
			rows:  sqlmock.NewRows([]string{"product_id", "quantity", "unit_cost"}),
			items: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			storage, mock := newMockStorage(t)

			mock.ExpectQuery(regexp.QuoteMeta("FROM cart_items")).WithArgs(testUserID).WillReturnRows(test.rows)

			cart, err := storage.GetCart(context.Background(), testUserID)
			require.NoError(t, err)

			assert.Equal(t, entity.UserID(testUserID), cart.BuyerID)
			assert.Len(t, cart.Items, test.items)
		})
	}
}

func TestAddCartItem(t *testing.T) {
	storage, mock := newMockStorage(t)

	item := entity.CartItem{ProductID: "p1", Quantity: 2, UnitCost: decimal.RequireFromString("499.99")}

	mock.ExpectExec(regexp.QuoteMeta("SET quantity = cart_items.quantity + EXCLUDED.quantity, unit_cost = EXCLUDED.unit_cost")).
		WithArgs(testUserID, "p1", 2, decimal.RequireFromString("499.99")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := storage.AddCartItem(context.Background(), testUserID, item)
	assert.NoError(t, err)
}

func TestRemoveCartItems(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2")).
		WithArgs(testUserID, "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2")).
		WithArgs(testUserID, "p2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := storage.RemoveCartItems(context.Background(), testUserID, "p1", "p2")
	assert.NoError(t, err)
}

func TestRemoveCartItemsFailureRollsBack(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_items")).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := storage.RemoveCartItems(context.Background(), testUserID, "p1")
	assert.Error(t, err)
}

func TestRemoveCartItemsEmpty(t *testing.T) {
	storage, _ := newMockStorage(t)

	assert.NoError(t, storage.RemoveCartItems(context.Background(), testUserID))
}

func TestClearCart(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_items WHERE user_id = $1")).
		WithArgs(testUserID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	assert.NoError(t, storage.ClearCart(context.Background(), testUserID))
}

func TestGetProduct(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = $1")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).AddRow("p1", "Clay lamp", "120.50"))

	product, err := storage.GetProduct(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, entity.ProductID("p1"), product.ID)
	assert.Equal(t, "Clay lamp", product.Name)
	assert.True(t, decimal.RequireFromString("120.5").Equal(product.Price))
}

func TestGetProductNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = $1")).
		WithArgs("p9").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}))

	_, err := storage.GetProduct(context.Background(), "p9")
	assert.ErrorIs(t, err, err_storage.ErrProductNotFound)
}

func TestSaveProducts(t *testing.T) {
	storage, mock := newMockStorage(t)

	products := []entity.Product{
		{ID: "p1", Name: "Clay lamp", Price: decimal.NewFromInt(120)},
		{ID: "p2", Name: "Madhubani painting", Price: decimal.RequireFromString("499.99")},
	}

	mock.ExpectBegin()
	for _, product := range products {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
			WithArgs(product.ID, product.Name, product.Price).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	assert.NoError(t, storage.SaveProducts(context.Background(), products))
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: "23514"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, isUniqueViolation(test.err))
		})
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	assert.NoError(t, err)
	assert.Contains(t, entries, "00001_create_orders.sql")
	assert.Contains(t, entries, "00002_create_cart_items.sql")
	assert.Contains(t, entries, "00003_create_products.sql")
}
