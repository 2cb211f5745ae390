package compare

import "errors"

var (
	// ErrEmptyCurve indicates one or both inputs have no samples.
	ErrEmptyCurve = errors.New("compare: curves must be non-empty")

	// ErrBadWindow indicates a Window below -1.
	ErrBadWindow = errors.New("compare: window must be >= -1")

	// ErrPathNeedsMatrix indicates ReturnPath without FullMatrix.
	ErrPathNeedsMatrix = errors.New("compare: ReturnPath requires MemoryMode=FullMatrix")
)
