package ledger

import "errors"

var (
	// ErrCheckNotFound indicates no check exists for the item.
	ErrCheckNotFound = errors.New("check not found")
	// ErrConflict indicates a racing writer already took the next version.
	ErrConflict = errors.New("check version already written")
	// ErrInvalidInput indicates invalid ledger input.
	ErrInvalidInput = errors.New("invalid ledger input")
)
