package validator

import (
	"net/mail"

	"github.com/avGenie/go-checkout-system/internal/app/model"
)

const (
	ErrEmptyShippingAddress = "shipping address, city and country are required"
	ErrInvalidContactEmail  = "contact email is invalid"
	ErrEmptyPaymentID       = "payment id is required"
	ErrInvalidCartItem      = "product id is required and quantity must be positive"
)

func ValidateCheckoutRequest(request model.CheckoutRequest) (string, bool) {
	address := request.ShippingAddress
	if len(address.Address) == 0 || len(address.City) == 0 || len(address.Country) == 0 {
		return ErrEmptyShippingAddress, false
	}

	if len(request.Contact.Email) != 0 {
		if _, err := mail.ParseAddress(request.Contact.Email); err != nil {
			return ErrInvalidContactEmail, false
		}
	}

	return "", true
}

func ValidateCreateOrderRequest(request model.CreateOrderRequest) (string, bool) {
	if len(request.PaymentID) == 0 {
		return ErrEmptyPaymentID, false
	}

	return ValidateCheckoutRequest(request.CheckoutRequest)
}

func ValidateAddCartItemRequest(request model.AddCartItemRequest) bool {
	return len(request.ProductID) > 0 && request.Quantity > 0
}
