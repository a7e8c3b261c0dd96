package entity

import "github.com/google/uuid"

type UserID string

func (u UserID) String() string {
	return string(u)
}

func (u UserID) Valid() bool {
	return uuid.Validate(string(u)) == nil
}

type UserIDCtxKey struct{}

type UserIDCtx struct {
	UserID     UserID
	StatusCode int
}

func CreateUserIDCtx(userID UserID, code int) UserIDCtx {
	return UserIDCtx{
		UserID:     userID,
		StatusCode: code,
	}
}

// Contact is the prefill information handed to the payment gateway.
type Contact struct {
	Name  string
	Email string
	Phone string
}

type ShippingAddress struct {
	Address string
	City    string
	State   string
	Country string
	PinCode string
	PhoneNo string
}

func (a ShippingAddress) Empty() bool {
	return len(a.Address) == 0 || len(a.City) == 0 || len(a.Country) == 0
}
