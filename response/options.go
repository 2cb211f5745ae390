package response

import (
	"fmt"

	"github.com/katalvlaran/sival/environment"
)

// Option configures a Response at construction.
type Option func(*options)

type options struct {
	count  int
	medium environment.Medium
}

// WithCount sets the number of identical drivers N. Panics if n < 1.
func WithCount(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("response: WithCount(%d): count must be >= 1", n))
	}

	return func(o *options) { o.count = n }
}

// WithMedium attaches the medium whose ρ₀ and c are read on every
// evaluation. A nil medium keeps environment.Defaults.
func WithMedium(m environment.Medium) Option {
	return func(o *options) {
		if m != nil {
			o.medium = m
		}
	}
}

func gatherOptions(opts []Option) options {
	o := options{count: 1, medium: environment.Defaults}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
