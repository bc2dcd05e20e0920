package session

import "errors"

var (
	// ErrSessionNotFound indicates the session doesn't exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionClosed indicates the session is closed and immutable.
	ErrSessionClosed = errors.New("session is closed")
	// ErrOrderNotFound indicates the order the session belongs to doesn't exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidInput indicates invalid session input.
	ErrInvalidInput = errors.New("invalid session input")
)
