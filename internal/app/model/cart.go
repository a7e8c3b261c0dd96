package model

import "github.com/shopspring/decimal"

// AddCartItemRequest carries no price: the unit cost always comes from the product catalog.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CartItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

type CartResponse struct {
	Items            []CartItem      `json:"items"`
	ProductsQuantity int             `json:"products_quantity"`
	TotalPrice       decimal.Decimal `json:"total_price"`
}
