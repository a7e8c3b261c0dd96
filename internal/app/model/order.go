package model

import "github.com/shopspring/decimal"

type ContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pin_code"`
	PhoneNo string `json:"phone_no"`
}

type CheckoutRequest struct {
	ProductID       string          `json:"product_id,omitempty"`
	Contact         ContactRequest  `json:"contact"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
}

type CreateOrderRequest struct {
	CheckoutRequest
	PaymentID string `json:"payment_id"`
}

type OrderedProduct struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

type PaymentInfo struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type OrderResponses []OrderResponse

type OrderResponse struct {
	ID               string           `json:"id"`
	Buyer            string           `json:"buyer"`
	ShippingData     ShippingAddress  `json:"shipping_data"`
	OrderedProducts  []OrderedProduct `json:"ordered_products"`
	PaymentInfo      PaymentInfo      `json:"payment_info"`
	ProductsQuantity int              `json:"products_quantity"`
	TotalPrice       decimal.Decimal  `json:"total_price"`
	CreatedAt        string           `json:"created_at"`
}

type ProcessingResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
