package setup

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/sival/driver"
	"go.uber.org/zap"
)

// Option configures New and Restore.
type Option func(*options)

type options struct {
	id         uuid.UUID
	name       string
	log        *zap.Logger
	driverOpts []driver.Option
}

// WithID fixes the setup ID instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(o *options) { o.id = id }
}

// WithName sets a human-readable label.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger; nil keeps zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithDriverOptions passes options to every driver construction.
func WithDriverOptions(opts ...driver.Option) Option {
	return func(o *options) { o.driverOpts = append(o.driverOpts, opts...) }
}

func gatherOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	return o
}
