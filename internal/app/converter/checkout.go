package converter

import (
	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/model"
)

const checkoutDescription = "Order Payment"

func ConvertSessionToCheckoutOptions(keyID, merchant string, session entity.CheckoutSession, address entity.ShippingAddress) model.CheckoutOptions {
	return model.CheckoutOptions{
		Key:         keyID,
		Amount:      session.Amount,
		Currency:    session.Currency,
		Name:        merchant,
		Description: checkoutDescription,
		Prefill: model.CheckoutPrefill{
			Name:    session.Contact.Name,
			Email:   session.Contact.Email,
			Contact: session.Contact.Phone,
		},
		Notes: model.CheckoutNotes{
			Address: address.Address,
		},
	}
}

func ConvertCheckoutEventToOutput(event entity.CheckoutEvent) model.CheckoutEvent {
	return model.CheckoutEvent{
		Type:          string(event.Type),
		CheckoutID:    event.CheckoutID,
		OrderID:       event.OrderID.String(),
		BuyerID:       event.BuyerID.String(),
		TransactionID: event.TransactionID,
		Amount:        event.Amount,
		Currency:      event.Currency,
		OccurredAt:    FormatTime(event.OccurredAt),
	}
}
