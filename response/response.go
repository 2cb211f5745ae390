package response

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sival/driver"
	"github.com/katalvlaran/sival/enclosure"
	"github.com/katalvlaran/sival/environment"
)

// Response maps a frequency to a scalar for one driver role in one
// enclosure.
type Response interface {
	// Kind returns what the response computes.
	Kind() Kind
	// Evaluate returns the value at f Hz.
	Evaluate(f float64) (float64, error)
	// Count returns the number of identical drivers.
	Count() int
	// Driver returns the bound driver model.
	Driver() *driver.Driver
	// Enclosure returns the bound enclosure.
	Enclosure() enclosure.Enclosure
}

// binding holds what every response variant shares.
type binding struct {
	drv    *driver.Driver
	box    enclosure.Enclosure
	count  int
	medium environment.Medium
}

func newBinding(d *driver.Driver, e enclosure.Enclosure, opts []Option) binding {
	o := gatherOptions(opts)

	return binding{drv: d, box: e, count: o.count, medium: o.medium}
}

func (b *binding) Count() int                     { return b.count }
func (b *binding) Driver() *driver.Driver         { return b.drv }
func (b *binding) Enclosure() enclosure.Enclosure { return b.box }

// SetDriver rebinds the driver and its count. Panics if count < 1.
func (b *binding) SetDriver(d *driver.Driver, count int) {
	if count < 1 {
		panic(fmt.Sprintf("response: SetDriver count %d: must be >= 1", count))
	}
	b.drv, b.count = d, count
}

// SetEnclosure rebinds the enclosure.
func (b *binding) SetEnclosure(e enclosure.Enclosure) { b.box = e }

// check validates the frequency and the bound models.
func (b *binding) check(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%w: %v Hz", ErrInvalidFrequency, f)
	}
	if b.drv == nil || b.box == nil {
		return fmt.Errorf("%w: driver or enclosure not bound", ErrDegenerate)
	}
	if b.box.Volume() <= 0 {
		return fmt.Errorf("%w: enclosure volume is %v L", ErrDegenerate, b.box.Volume())
	}

	return nil
}

// boxShare returns the enclosure volume available to one driver in m³.
func (b *binding) boxShare() float64 {
	return b.box.Volume() / 1e3 / float64(b.count)
}
