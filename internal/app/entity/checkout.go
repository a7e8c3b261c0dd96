package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type IntentKind int

const (
	IntentMultiItem IntentKind = iota
	IntentSingleItem
)

// CheckoutIntent selects what is bought: the whole cart or one product from it.
type CheckoutIntent struct {
	Kind      IntentKind
	ProductID ProductID
}

func MultiItemIntent() CheckoutIntent {
	return CheckoutIntent{Kind: IntentMultiItem}
}

func SingleItemIntent(productID ProductID) CheckoutIntent {
	return CheckoutIntent{
		Kind:      IntentSingleItem,
		ProductID: productID,
	}
}

// CheckoutSession is the server-computed payload sent to the payment gateway.
type CheckoutSession struct {
	Products         []OrderedProduct
	ProductsQuantity int
	TotalPrice       decimal.Decimal
	Amount           int64
	Currency         string
	Contact          Contact
}

func (s CheckoutSession) ProductIDs() []ProductID {
	ids := make([]ProductID, 0, len(s.Products))
	for _, product := range s.Products {
		ids = append(ids, product.ProductID)
	}

	return ids
}

type AuthorizationOutcome int

const (
	OutcomeFailure AuthorizationOutcome = iota
	OutcomeSuccess
)

type Authorization struct {
	Outcome       AuthorizationOutcome
	TransactionID string
	ErrorMessage  string
}

type Submission struct {
	Intent           CheckoutIntent
	BuyerID          UserID
	Contact          Contact
	ShippingAddress  ShippingAddress
	PaymentReference string
}

type CheckoutEventType string

const (
	EventOrderCompleted       CheckoutEventType = `order.completed`
	EventReconciliationNeeded CheckoutEventType = `checkout.reconciliation_needed`
)

type CheckoutEvent struct {
	Type          CheckoutEventType
	CheckoutID    string
	OrderID       OrderID
	BuyerID       UserID
	TransactionID string
	Amount        int64
	Currency      string
	OccurredAt    time.Time
}

// AuthorizeRequest is sent once per checkout attempt. IdempotencyKey is never
// reused between attempts.
type AuthorizeRequest struct {
	IdempotencyKey   string
	Amount           int64
	Currency         string
	Contact          Contact
	Notes            map[string]string
	PaymentReference string
}
