package checkout

import (
	"errors"
	"fmt"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
)

type State string

const (
	StateInitiated            State = `initiated`
	StateConfirmed            State = `confirmed`
	StateCompleted            State = `completed`
	StateRejected             State = `rejected`
	StateReconciliationNeeded State = `reconciliation_needed`
)

var ErrInvalidTransition = errors.New("invalid checkout state transition")

var validTransitions = map[State][]State{
	StateInitiated:            {StateConfirmed, StateRejected},
	StateConfirmed:            {StateCompleted, StateReconciliationNeeded},
	StateCompleted:            {},
	StateRejected:             {},
	StateReconciliationNeeded: {},
}

// Attempt tracks one user-initiated checkout from gateway call to persistence.
type Attempt struct {
	ID            string
	BuyerID       entity.UserID
	Session       entity.CheckoutSession
	TransactionID string
	State         State
}

func newAttempt(id string, buyerID entity.UserID, session entity.CheckoutSession) *Attempt {
	return &Attempt{
		ID:      id,
		BuyerID: buyerID,
		Session: session,
		State:   StateInitiated,
	}
}

func (a *Attempt) CanTransitionTo(target State) bool {
	for _, state := range validTransitions[a.State] {
		if state == target {
			return true
		}
	}

	return false
}

func (a *Attempt) transition(target State) error {
	if !a.CanTransitionTo(target) {
		return fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, a.State, target)
	}

	a.State = target

	return nil
}

func (a *Attempt) terminal() bool {
	return len(validTransitions[a.State]) == 0
}
