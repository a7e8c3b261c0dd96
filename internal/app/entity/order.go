package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	StatusPendingPayment    PaymentStatus = `Pending`
	StatusSuccessfulPayment PaymentStatus = `Successful`
	StatusFailedPayment     PaymentStatus = `Failed`
)

type OrderID string

func (o OrderID) String() string {
	return string(o)
}

type ProductID string

type OrderedProduct struct {
	ProductID ProductID
	Quantity  int
	UnitCost  decimal.Decimal
}

func (p OrderedProduct) Cost() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

type PaymentInfo struct {
	TransactionID string
	Status        PaymentStatus
}

type Orders []Order

type Order struct {
	ID               OrderID
	BuyerID          UserID
	ShippingAddress  ShippingAddress
	OrderedProducts  []OrderedProduct
	PaymentInfo      PaymentInfo
	ProductsQuantity int
	TotalPrice       decimal.Decimal
	CreatedAt        time.Time
}
