package driver

// Option configures New and the factory functions.
type Option func(*options)

type options struct {
	strictUnits    bool
	strictNumerics bool
}

// WithStrictUnits makes construction fail with ErrInvalidField (wrapping
// units.ErrUnknownUnit) when a converted quantity carries an unknown tag.
// By default such values are taken as already-SI.
func WithStrictUnits() Option {
	return func(o *options) { o.strictUnits = true }
}

// WithStrictNumerics makes construction fail with ErrNumeric when a derived
// parameter hits a division-by-zero or log guard, instead of storing 0.
func WithStrictNumerics() Option {
	return func(o *options) { o.strictNumerics = true }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
