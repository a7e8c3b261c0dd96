package model

import "github.com/shopspring/decimal"

type CatalogProduct struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
