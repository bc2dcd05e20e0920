package defect

import "errors"

var (
	// ErrEntryNotFound indicates the entry doesn't exist.
	ErrEntryNotFound = errors.New("defect entry not found")
	// ErrSessionNotFound indicates the target session doesn't exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionClosed indicates the target session is closed.
	ErrSessionClosed = errors.New("session is closed")
	// ErrLocationRequired indicates a located entry has no locations.
	ErrLocationRequired = errors.New("at least one location required")
	// ErrQuantityMismatch indicates entry quantity doesn't match location sums.
	ErrQuantityMismatch = errors.New("entry quantity does not match location quantities")
	// ErrImagesMissing indicates a location has fewer images than defective units.
	ErrImagesMissing = errors.New("location requires one image per defective unit")
	// ErrInvalidInput indicates invalid entry input.
	ErrInvalidInput = errors.New("invalid defect entry input")
)
