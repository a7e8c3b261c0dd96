package entity

import "github.com/shopspring/decimal"

type CartItem struct {
	ProductID ProductID
	Quantity  int
	UnitCost  decimal.Decimal
}

type Cart struct {
	BuyerID UserID
	Items   []CartItem
}

func (c Cart) Find(productID ProductID) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return CartItem{}, false
}
