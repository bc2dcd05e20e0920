package inspection

import "errors"

var (
	// ErrOrderNotFound indicates the order doesn't exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidInput indicates invalid evaluation input.
	ErrInvalidInput = errors.New("invalid inspection input")
)
