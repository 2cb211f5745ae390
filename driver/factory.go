package driver

import "fmt"

// Create decodes data (JSON or YAML), checks that general_info.speaker_type
// equals expected.String(), and builds the driver.
//
// Errors:
//   - decode errors from Parse.
//   - ErrUnknownType when speaker_type names no known type.
//   - *RoleMismatchError (ErrRoleMismatch) when the declared type differs
//     from the expected role; an absent speaker_type reads as "unknown".
//   - construction errors from New.
func Create(expected Role, data []byte, opts ...Option) (*Driver, error) {
	rec, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return CreateFromRecord(expected, rec, opts...)
}

// CreateFromRecord is Create for an already decoded record.
func CreateFromRecord(expected Role, rec *Record, opts ...Option) (*Driver, error) {
	actual := rec.speakerType()
	switch {
	case actual == "":
		actual = "unknown"
	case !IsKnownType(actual):
		return nil, fmt.Errorf("speaker_type %q: %w", actual, ErrUnknownType)
	}
	if want := expected.String(); actual != want {
		return nil, &RoleMismatchError{Expected: want, Actual: actual}
	}

	return New(rec, opts...)
}

// CreateAny builds a driver of whatever known type the record declares.
// A missing or unrecognized speaker_type yields ErrUnknownType.
func CreateAny(data []byte, opts ...Option) (*Driver, error) {
	rec, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if st := rec.speakerType(); !IsKnownType(st) {
		return nil, fmt.Errorf("speaker_type %q: %w", st, ErrUnknownType)
	}

	return New(rec, opts...)
}
