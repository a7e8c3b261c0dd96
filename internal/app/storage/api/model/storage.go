package model

import (
	"context"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
)

type Storage interface {
	Close() error
	Ping(ctx context.Context) error

	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	GetUserOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error)

	GetProduct(ctx context.Context, productID entity.ProductID) (entity.Product, error)
	SaveProducts(ctx context.Context, products []entity.Product) error

	GetCart(ctx context.Context, userID entity.UserID) (entity.Cart, error)
	AddCartItem(ctx context.Context, userID entity.UserID, item entity.CartItem) error
	RemoveCartItems(ctx context.Context, userID entity.UserID, productIDs ...entity.ProductID) error
	ClearCart(ctx context.Context, userID entity.UserID) error
}
