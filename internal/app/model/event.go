package model

type CheckoutEvent struct {
	Type          string `json:"type"`
	CheckoutID    string `json:"checkout_id"`
	OrderID       string `json:"order_id,omitempty"`
	BuyerID       string `json:"buyer_id"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	OccurredAt    string `json:"occurred_at"`
}
