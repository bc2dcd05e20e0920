package measurement

import "errors"

var (
	// ErrSpecNotFound indicates the measurement spec doesn't exist.
	ErrSpecNotFound = errors.New("measurement spec not found")
	// ErrInvalidInput indicates invalid measurement input.
	ErrInvalidInput = errors.New("invalid measurement input")
)
