package entity

import "github.com/shopspring/decimal"

type Product struct {
	ID    ProductID
	Name  string
	Price decimal.Decimal
}
