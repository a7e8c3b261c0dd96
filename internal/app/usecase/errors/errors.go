package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token is expired")
)

// Checkout error taxonomy. Callers match them with errors.Is.
var (
	ErrValidation = errors.New("checkout validation failed")
	ErrGateway    = errors.New("payment gateway authorization failed")
	ErrStorage    = errors.New("order storage failed after payment")
	ErrConfig     = errors.New("invalid configuration")

	ErrCheckoutInProgress = errors.New("checkout is already in progress for buyer")
)

// ReconciliationError is returned when the payment was captured but the order
// could not be stored. It matches ErrStorage.
type ReconciliationError struct {
	CheckoutID    string
	TransactionID string
	Err           error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%s: checkout %s, transaction %s: %v", ErrStorage, e.CheckoutID, e.TransactionID, e.Err)
}

func (e *ReconciliationError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}
