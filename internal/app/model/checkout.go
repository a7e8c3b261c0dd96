package model

type KeyResponse struct {
	Key string `json:"key"`
}

type CheckoutPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type CheckoutNotes struct {
	Address string `json:"address"`
}

// CheckoutOptions are handed to the hosted checkout widget as is.
type CheckoutOptions struct {
	Key         string          `json:"key"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Prefill     CheckoutPrefill `json:"prefill"`
	Notes       CheckoutNotes   `json:"notes"`
}
