package resolver

import "errors"

var (
	// ErrNotFound indicates a store has no record under the requested key.
	ErrNotFound = errors.New("resolver: record not found")

	// ErrEmptyIdentifier indicates a blank identifier.
	ErrEmptyIdentifier = errors.New("resolver: empty identifier")

	// ErrInvalidTable indicates an unusable PostgreSQL table name.
	ErrInvalidTable = errors.New("resolver: invalid table name")
)
