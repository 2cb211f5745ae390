package enclosure

import "errors"

var (
	// ErrUnknownType indicates a type tag that names no enclosure variant.
	ErrUnknownType = errors.New("enclosure: unknown enclosure type")

	// ErrMissingField indicates a required record field is absent.
	ErrMissingField = errors.New("enclosure: missing required field")

	// ErrInvalidRecord indicates the raw bytes could not be decoded.
	ErrInvalidRecord = errors.New("enclosure: invalid record")
)
