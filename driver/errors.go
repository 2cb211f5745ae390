// Package driver: sentinel errors and structured error types.
//
// Callers branch with errors.Is on the sentinels; FieldError and
// RoleMismatchError carry the diagnostic detail and unwrap to them.
package driver

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates a required section or field is absent.
	ErrMissingField = errors.New("driver: missing required field")

	// ErrInvalidField indicates a field is present but has the wrong type or
	// an unusable value (e.g. an unknown unit tag under WithStrictUnits).
	ErrInvalidField = errors.New("driver: invalid field")

	// ErrInvalidRecord indicates the raw bytes could not be decoded at all.
	ErrInvalidRecord = errors.New("driver: invalid record")

	// ErrNumeric reports a guarded division by zero or undefined logarithm
	// during derivation. Only returned under WithStrictNumerics.
	ErrNumeric = errors.New("driver: numeric edge case")

	// ErrUnknownType indicates a speaker_type that names no known driver type.
	ErrUnknownType = errors.New("driver: unknown speaker type")

	// ErrRoleMismatch indicates a speaker_type that differs from the role the
	// caller expected.
	ErrRoleMismatch = errors.New("driver: speaker type does not match role")
)

// FieldError locates a construction failure within the record.
// Path is dotted, e.g. "thiele_small_parameters.fs.value".
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// RoleMismatchError is returned by Create when the record's speaker_type
// differs from the expected role's display string.
type RoleMismatchError struct {
	Expected string
	Actual   string
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("driver: expected speaker type %q, record declares %q", e.Expected, e.Actual)
}

func (e *RoleMismatchError) Unwrap() error { return ErrRoleMismatch }
