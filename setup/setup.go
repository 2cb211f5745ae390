package setup

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/katalvlaran/sival/driver"
	"github.com/katalvlaran/sival/enclosure"
	"github.com/katalvlaran/sival/environment"
	"github.com/katalvlaran/sival/response"
	"go.uber.org/zap"
)

// slot is a role entry together with the identifier it was resolved from.
type slot struct {
	cfg        RoleConfig
	identifier string
}

// Setup is one acoustic design.
type Setup struct {
	id   uuid.UUID
	name string

	env       *environment.Environment
	box       enclosure.Enclosure
	drivers   map[driver.Role]*slot
	responses map[response.Kind]response.Response

	log        *zap.Logger
	driverOpts []driver.Option
}

// New returns an empty Setup with a fresh enclosure of type t. A nil env
// is replaced by environment.New(nil), which cannot resolve identifiers.
func New(env *environment.Environment, t enclosure.Type, opts ...Option) (*Setup, error) {
	box, err := enclosure.New(t)
	if err != nil {
		return nil, err
	}

	return newSetup(env, box, gatherOptions(opts)), nil
}

// NewWithEnclosure is New for an already configured enclosure.
func NewWithEnclosure(env *environment.Environment, box enclosure.Enclosure, opts ...Option) (*Setup, error) {
	if box == nil {
		return nil, fmt.Errorf("enclosure: %w", enclosure.ErrMissingField)
	}

	return newSetup(env, box, gatherOptions(opts)), nil
}

func newSetup(env *environment.Environment, box enclosure.Enclosure, o options) *Setup {
	if env == nil {
		env = environment.New(nil)
	}

	return &Setup{
		id:         o.id,
		name:       o.name,
		env:        env,
		box:        box,
		drivers:    make(map[driver.Role]*slot),
		responses:  make(map[response.Kind]response.Response),
		log:        o.log.With(zap.String("setup", o.id.String())),
		driverOpts: o.driverOpts,
	}
}

// ID returns the setup identifier.
func (s *Setup) ID() uuid.UUID { return s.id }

// Name returns the label given at construction.
func (s *Setup) Name() string { return s.name }

// Enclosure returns the owned enclosure.
func (s *Setup) Enclosure() enclosure.Enclosure { return s.box }

// Environment returns the shared environment.
func (s *Setup) Environment() *environment.Environment { return s.env }

// load resolves identifier and builds a driver checked against role.
func (s *Setup) load(ctx context.Context, role driver.Role, identifier string, count int) (*slot, error) {
	if count < 1 {
		return nil, fmt.Errorf("%s: %w: got %d", role, ErrInvalidCount, count)
	}
	data, err := s.env.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	d, err := driver.Create(role, data, s.driverOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", role, identifier, err)
	}

	return &slot{cfg: RoleConfig{Driver: d, Count: count}, identifier: identifier}, nil
}

// AddDriver resolves identifier, builds the driver for role and stores it
// unless the role is already taken. It reports whether the driver was
// inserted; resolution and construction errors are returned either way.
func (s *Setup) AddDriver(ctx context.Context, role driver.Role, identifier string, count int) (bool, error) {
	sl, err := s.load(ctx, role, identifier, count)
	if err != nil {
		return false, err
	}
	if _, taken := s.drivers[role]; taken {
		s.log.Debug("role already assigned", zap.Stringer("role", role))

		return false, nil
	}
	s.drivers[role] = sl
	s.log.Debug("driver added",
		zap.Stringer("role", role), zap.String("identifier", identifier), zap.Int("count", count))

	return true, nil
}

// SetDriver is AddDriver that replaces an existing assignment.
func (s *Setup) SetDriver(ctx context.Context, role driver.Role, identifier string, count int) error {
	sl, err := s.load(ctx, role, identifier, count)
	if err != nil {
		return err
	}
	s.drivers[role] = sl
	s.log.Debug("driver set",
		zap.Stringer("role", role), zap.String("identifier", identifier), zap.Int("count", count))

	return nil
}

// DriverByRole returns the configuration of role.
func (s *Setup) DriverByRole(role driver.Role) (RoleConfig, error) {
	sl, ok := s.drivers[role]
	if !ok {
		return RoleConfig{}, fmt.Errorf("%w: no driver with role %s", ErrOutOfRange, role)
	}

	return sl.cfg, nil
}

// RemoveDriver drops role. Responses already built for it keep their
// driver.
func (s *Setup) RemoveDriver(role driver.Role) error {
	if _, ok := s.drivers[role]; !ok {
		return fmt.Errorf("%w: no driver with role %s", ErrOutOfRange, role)
	}
	delete(s.drivers, role)
	s.log.Debug("driver removed", zap.Stringer("role", role))

	return nil
}

// Roles lists the assigned roles in declaration order.
func (s *Setup) Roles() []driver.Role {
	out := make([]driver.Role, 0, len(s.drivers))
	for r := range s.drivers {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NewResponse builds the response of kind for role, matching the
// enclosure type, bound to the role's driver and count and to the
// Environment's constants.
func (s *Setup) NewResponse(kind response.Kind, role driver.Role) (response.Response, error) {
	cfg, err := s.DriverByRole(role)
	if err != nil {
		return nil, err
	}
	opts := []response.Option{response.WithCount(cfg.Count), response.WithMedium(s.env)}

	if s.box.Type() == enclosure.Sealed {
		switch kind {
		case response.Impedance:
			return response.NewSealedImpedance(cfg.Driver, s.box, opts...), nil
		case response.Spl:
			return response.NewSealedSPL(cfg.Driver, s.box, opts...), nil
		}
	}

	return nil, fmt.Errorf("%w: %s in %s enclosure", ErrUnsupported, kind, s.box.Type())
}

// AddResponse stores r under its kind unless that kind is taken. It
// reports whether r was inserted.
func (s *Setup) AddResponse(r response.Response) bool {
	if r == nil {
		return false
	}
	if _, taken := s.responses[r.Kind()]; taken {
		return false
	}
	s.responses[r.Kind()] = r
	s.log.Debug("response added", zap.Stringer("kind", r.Kind()))

	return true
}

// SetResponse stores r under kind, replacing any previous one.
func (s *Setup) SetResponse(kind response.Kind, r response.Response) error {
	if r == nil {
		return fmt.Errorf("%w: nil response for %s", ErrKindMismatch, kind)
	}
	if r.Kind() != kind {
		return fmt.Errorf("%w: %s stored as %s", ErrKindMismatch, r.Kind(), kind)
	}
	s.responses[kind] = r
	s.log.Debug("response set", zap.Stringer("kind", kind))

	return nil
}

// ResponseByType returns the response stored under kind.
func (s *Setup) ResponseByType(kind response.Kind) (response.Response, error) {
	r, ok := s.responses[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no response of type %s", ErrOutOfRange, kind)
	}

	return r, nil
}

// RemoveResponse drops the response stored under kind.
func (s *Setup) RemoveResponse(kind response.Kind) error {
	if _, ok := s.responses[kind]; !ok {
		return fmt.Errorf("%w: no response of type %s", ErrOutOfRange, kind)
	}
	delete(s.responses, kind)
	s.log.Debug("response removed", zap.Stringer("kind", kind))

	return nil
}

// Kinds lists the stored response kinds in declaration order.
func (s *Setup) Kinds() []response.Kind {
	out := make([]response.Kind, 0, len(s.responses))
	for k := range s.responses {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// roleOf finds the role whose driver is d.
func (s *Setup) roleOf(d *driver.Driver) (driver.Role, bool) {
	for _, r := range s.Roles() {
		if s.drivers[r].cfg.Driver == d {
			return r, true
		}
	}

	return 0, false
}
