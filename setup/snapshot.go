package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/katalvlaran/sival/driver"
	"github.com/katalvlaran/sival/enclosure"
	"github.com/katalvlaran/sival/environment"
	"github.com/katalvlaran/sival/response"
)

// Snapshot is the serialisable form of a Setup.
type Snapshot struct {
	ID        string           `json:"id" yaml:"id" cbor:"1,keyasint"`
	Name      string           `json:"name,omitempty" yaml:"name,omitempty" cbor:"2,keyasint,omitempty"`
	Enclosure enclosure.Record `json:"enclosure" yaml:"enclosure" cbor:"3,keyasint"`
	Drivers   []DriverEntry    `json:"drivers" yaml:"drivers" cbor:"4,keyasint"`
	Responses []ResponseEntry  `json:"responses,omitempty" yaml:"responses,omitempty" cbor:"5,keyasint,omitempty"`
	Summaries []driver.Summary `json:"summaries,omitempty" yaml:"summaries,omitempty" cbor:"-"`
}

// DriverEntry is one role assignment.
type DriverEntry struct {
	Role       string `json:"role" yaml:"role" cbor:"1,keyasint"`
	Identifier string `json:"identifier" yaml:"identifier" cbor:"2,keyasint"`
	Count      int    `json:"count" yaml:"count" cbor:"3,keyasint"`
}

// ResponseEntry names a stored response and the role it was built for.
type ResponseEntry struct {
	Kind string `json:"kind" yaml:"kind" cbor:"1,keyasint"`
	Role string `json:"role" yaml:"role" cbor:"2,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	if encMode, err = encOpts.EncMode(); err != nil {
		panic(fmt.Sprintf("setup: cbor encoder: %v", err))
	}
	decOpts := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}
	if decMode, err = decOpts.DecMode(); err != nil {
		panic(fmt.Sprintf("setup: cbor decoder: %v", err))
	}
}

// Snapshot captures the setup. Responses whose driver is no longer
// assigned to any role are left out.
func (s *Setup) Snapshot() Snapshot {
	snap := Snapshot{
		ID:        s.id.String(),
		Name:      s.name,
		Enclosure: s.box.Record(),
		Drivers:   make([]DriverEntry, 0, len(s.drivers)),
	}
	for _, r := range s.Roles() {
		sl := s.drivers[r]
		snap.Drivers = append(snap.Drivers, DriverEntry{Role: r.Key(), Identifier: sl.identifier, Count: sl.cfg.Count})
		snap.Summaries = append(snap.Summaries, sl.cfg.Driver.Summary())
	}
	for _, k := range s.Kinds() {
		role, ok := s.roleOf(s.responses[k].Driver())
		if !ok {
			continue
		}
		snap.Responses = append(snap.Responses, ResponseEntry{Kind: k.String(), Role: role.Key()})
	}

	return snap
}

// MarshalJSON encodes Snapshot().
func (s *Setup) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// MarshalCBOR encodes Snapshot() with integer keys, without driver
// summaries.
func (s *Setup) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(s.Snapshot())
}

// DecodeSnapshot reads a JSON or CBOR snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return snap, fmt.Errorf("%w: empty input", ErrInvalidSnapshot)
	}
	var err error
	if trimmed[0] == '{' {
		err = json.Unmarshal(trimmed, &snap)
	} else {
		err = decMode.Unmarshal(data, &snap)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	return snap, nil
}

// Restore rebuilds a Setup from a JSON or CBOR snapshot, resolving every
// driver identifier through env again.
func Restore(ctx context.Context, env *environment.Environment, data []byte, opts ...Option) (*Setup, error) {
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	return FromSnapshot(ctx, env, snap, opts...)
}

// FromSnapshot is Restore for a decoded snapshot.
func FromSnapshot(ctx context.Context, env *environment.Environment, snap Snapshot, opts ...Option) (*Setup, error) {
	box, err := enclosure.FromRecord(snap.Enclosure)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	o := gatherOptions(opts)
	if id, err := uuid.Parse(snap.ID); err == nil {
		o.id = id
	}
	if o.name == "" {
		o.name = snap.Name
	}
	s := newSetup(env, box, o)

	for _, e := range snap.Drivers {
		role, err := driver.ParseRole(e.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
		if _, err := s.AddDriver(ctx, role, e.Identifier, e.Count); err != nil {
			return nil, err
		}
	}
	for _, e := range snap.Responses {
		kind, err := response.ParseKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
		role, err := driver.ParseRole(e.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
		r, err := s.NewResponse(kind, role)
		if err != nil {
			return nil, err
		}
		s.AddResponse(r)
	}

	return s, nil
}
