package order

import "errors"

var (
	// ErrOrderNotFound indicates the order doesn't exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidInput indicates invalid order input.
	ErrInvalidInput = errors.New("invalid order input")
)
