package environment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
)

// Physical constants shared by the whole module.
const (
	// DefaultSpeedOfSound is the speed of sound c in dry air at 20 °C (m/s).
	DefaultSpeedOfSound = 343.0

	// DefaultDensityOfAir is the air density ρ₀ at 20 °C, sea level (kg/m³).
	DefaultDensityOfAir = 1.204

	// Pi is π, re-exported for formula readability.
	Pi = math.Pi
)

// Resolver turns a driver identifier into raw record bytes.
//
// Implementations are expected to try the identifier as a filesystem path
// first and as a logical key (UUID, model key) in an application-defined
// store second. On failure they return an error wrapping ErrAccess.
type Resolver interface {
	Resolve(ctx context.Context, identifier string) ([]byte, error)
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(ctx context.Context, identifier string) ([]byte, error)

// Resolve calls f(ctx, identifier).
func (f ResolverFunc) Resolve(ctx context.Context, identifier string) ([]byte, error) {
	return f(ctx, identifier)
}

// Medium exposes the acoustic properties of the propagation medium.
// *Environment satisfies it; response engines depend only on this view.
type Medium interface {
	SpeedOfSound() float64
	DensityOfAir() float64
}

// Defaults is a Medium fixed at DefaultSpeedOfSound and DefaultDensityOfAir.
var Defaults Medium = fixedMedium{c: DefaultSpeedOfSound, rho: DefaultDensityOfAir}

type fixedMedium struct{ c, rho float64 }

func (m fixedMedium) SpeedOfSound() float64 { return m.c }
func (m fixedMedium) DensityOfAir() float64 { return m.rho }

// Environment is the session-scoped ambient context.
//
// The two constants are guarded by a read/write lock so parallel response
// sweeps may read while an owner resets them; the resolver reference is
// immutable after New.
type Environment struct {
	mu           sync.RWMutex
	speedOfSound float64
	densityOfAir float64

	resolver Resolver
}

// New returns an Environment with default constants and the given resolver.
// resolver may be nil when the caller never resolves identifiers.
func New(resolver Resolver) *Environment {
	return &Environment{
		speedOfSound: DefaultSpeedOfSound,
		densityOfAir: DefaultDensityOfAir,
		resolver:     resolver,
	}
}

// DefaultSpeedOfSound returns the package default, independent of any
// Environment instance.
func (*Environment) DefaultSpeedOfSound() float64 { return DefaultSpeedOfSound }

// DefaultDensityOfAir returns the package default air density.
func (*Environment) DefaultDensityOfAir() float64 { return DefaultDensityOfAir }

// SpeedOfSound returns the active speed of sound in m/s.
func (e *Environment) SpeedOfSound() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.speedOfSound
}

// SetSpeedOfSound overrides the speed of sound.
func (e *Environment) SetSpeedOfSound(c float64) {
	e.mu.Lock()
	e.speedOfSound = c
	e.mu.Unlock()
}

// ResetSpeedOfSound restores DefaultSpeedOfSound.
func (e *Environment) ResetSpeedOfSound() {
	e.SetSpeedOfSound(DefaultSpeedOfSound)
}

// DensityOfAir returns the active air density in kg/m³.
func (e *Environment) DensityOfAir() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.densityOfAir
}

// SetDensityOfAir overrides the air density.
func (e *Environment) SetDensityOfAir(rho float64) {
	e.mu.Lock()
	e.densityOfAir = rho
	e.mu.Unlock()
}

// ResetDensityOfAir restores DefaultDensityOfAir.
func (e *Environment) ResetDensityOfAir() {
	e.SetDensityOfAir(DefaultDensityOfAir)
}

// DriverResolver returns the configured Resolver (possibly nil).
func (e *Environment) DriverResolver() Resolver {
	return e.resolver
}

// Resolve delegates to the configured Resolver.
//
// Errors:
//   - ErrAccess wrapping ErrNoResolver if none is configured.
//   - Resolver errors are returned as is; a resolver error that does not
//     already wrap ErrAccess is wrapped so callers can rely on errors.Is.
func (e *Environment) Resolve(ctx context.Context, identifier string) ([]byte, error) {
	if e.resolver == nil {
		return nil, fmt.Errorf("%w: %w", ErrAccess, ErrNoResolver)
	}
	data, err := e.resolver.Resolve(ctx, identifier)
	if err != nil {
		if !errors.Is(err, ErrAccess) {
			err = fmt.Errorf("resolve %q: %w: %w", identifier, ErrAccess, err)
		}

		return nil, err
	}

	return data, nil
}
