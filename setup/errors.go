package setup

import "errors"

var (
	// ErrOutOfRange indicates a lookup or removal of an absent role or kind.
	ErrOutOfRange = errors.New("setup: out of range")

	// ErrInvalidCount indicates a driver count below one.
	ErrInvalidCount = errors.New("setup: driver count must be at least 1")

	// ErrUnsupported indicates a response kind the enclosure type cannot produce.
	ErrUnsupported = errors.New("setup: unsupported response for enclosure")

	// ErrKindMismatch indicates a response stored under a kind it does not report.
	ErrKindMismatch = errors.New("setup: response kind mismatch")

	// ErrInvalidSnapshot indicates snapshot bytes that cannot be decoded.
	ErrInvalidSnapshot = errors.New("setup: invalid snapshot")
)
