package converter

import (
	"time"

	"github.com/golang-module/carbon/v2"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	"github.com/avGenie/go-checkout-system/internal/app/model"
)

func ConvertStorageOrdersToOutputOrders(orders entity.Orders) model.OrderResponses {
	responses := make(model.OrderResponses, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ConvertOrderToOutput(order))
	}

	return responses
}

func ConvertOrderToOutput(order entity.Order) model.OrderResponse {
	products := make([]model.OrderedProduct, 0, len(order.OrderedProducts))
	for _, product := range order.OrderedProducts {
		products = append(products, model.OrderedProduct{
			ProductID: string(product.ProductID),
			Quantity:  product.Quantity,
			UnitCost:  product.UnitCost,
		})
	}

	return model.OrderResponse{
		ID:               order.ID.String(),
		Buyer:            order.BuyerID.String(),
		ShippingData:     ConvertShippingAddressToOutput(order.ShippingAddress),
		OrderedProducts:  products,
		ProductsQuantity: order.ProductsQuantity,
		TotalPrice:       order.TotalPrice,
		CreatedAt:        FormatTime(order.CreatedAt),
		PaymentInfo: model.PaymentInfo{
			ID:     order.PaymentInfo.TransactionID,
			Status: string(order.PaymentInfo.Status),
		},
	}
}

func ConvertShippingAddressToOutput(address entity.ShippingAddress) model.ShippingAddress {
	return model.ShippingAddress{
		Address: address.Address,
		City:    address.City,
		State:   address.State,
		Country: address.Country,
		PinCode: address.PinCode,
		PhoneNo: address.PhoneNo,
	}
}

func ConvertCreateOrderRequestToSubmission(userID entity.UserID, request model.CreateOrderRequest) entity.Submission {
	return entity.Submission{
		Intent:           ConvertProductIDToIntent(request.ProductID),
		BuyerID:          userID,
		Contact:          ConvertContactRequestToEntity(request.Contact),
		ShippingAddress:  ConvertShippingAddressToEntity(request.ShippingAddress),
		PaymentReference: request.PaymentID,
	}
}

func ConvertProductIDToIntent(productID string) entity.CheckoutIntent {
	if len(productID) == 0 {
		return entity.MultiItemIntent()
	}

	return entity.SingleItemIntent(entity.ProductID(productID))
}

func ConvertContactRequestToEntity(contact model.ContactRequest) entity.Contact {
	return entity.Contact{
		Name:  contact.Name,
		Email: contact.Email,
		Phone: contact.Phone,
	}
}

func ConvertShippingAddressToEntity(address model.ShippingAddress) entity.ShippingAddress {
	return entity.ShippingAddress{
		Address: address.Address,
		City:    address.City,
		State:   address.State,
		Country: address.Country,
		PinCode: address.PinCode,
		PhoneNo: address.PhoneNo,
	}
}

func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return carbon.CreateFromStdTime(t, carbon.UTC).ToRfc3339String()
}
