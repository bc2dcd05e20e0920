// Package repoerr holds the repository sentinel errors in a leaf package
// so domain packages can reference them without importing repository
// (which imports the domain packages).
package repoerr

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an append-only uniqueness check fails
	ErrConflict = errors.New("conflict: version already written")

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
