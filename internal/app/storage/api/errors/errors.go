package storage

import "errors"

var (
	ErrOrderTransactionExists = errors.New("order with given transaction id already exists in storage")
	ErrOrdersForUserNotFound  = errors.New("orders for given user don't exist in storage")
	ErrProductNotFound        = errors.New("product with given id doesn't exist in storage")

	ErrSubmissionLocked = errors.New("submission for given key is already in progress")
)
