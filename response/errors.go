package response

import "errors"

var (
	// ErrInvalidFrequency indicates a frequency that is not a positive finite number.
	ErrInvalidFrequency = errors.New("response: frequency must be positive and finite")

	// ErrDegenerate indicates driver or enclosure values that make the model
	// meaningless (zero compliance, zero box volume, missing driver).
	ErrDegenerate = errors.New("response: degenerate driver or enclosure parameters")

	// ErrSingular indicates a zero total mechanical impedance.
	ErrSingular = errors.New("response: singular mechanical impedance")

	// ErrInvalidGrid indicates grid bounds or sizes that cannot form a grid.
	ErrInvalidGrid = errors.New("response: invalid frequency grid")
)
