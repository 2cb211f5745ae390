package enclosure

import (
	"fmt"
	"strings"
)

// Type tags an enclosure variant.
type Type int

const (
	Sealed Type = iota
	Vented
)

// String returns the record tag of t.
func (t Type) String() string {
	switch t {
	case Sealed:
		return "Sealed"
	case Vented:
		return "Vented"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a record tag (case-insensitive) to its Type.
func ParseType(tag string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "sealed":
		return Sealed, nil
	case "vented":
		return Vented, nil
	default:
		return 0, fmt.Errorf("type %q: %w", tag, ErrUnknownType)
	}
}

// Defaults for the loss quality factor Ql. Ql models box losses as a
// mechanical resistance Rmb = 1/(ωc·Cmb·Ql) in series with the box
// compliance; larger Ql means a less lossy box, and Ql ≤ 0 or +Inf is
// treated as lossless by the response models.
const (
	DefaultSealedQL = 10.0
	DefaultVentedQL = 7.0
)

// Enclosure is the capability set shared by every variant.
type Enclosure interface {
	// Type returns the variant tag.
	Type() Type
	// Volume returns the net internal volume in litres.
	Volume() float64
	// SetVolume replaces the net internal volume (litres).
	SetVolume(liters float64)
	// QL returns the enclosure loss quality factor; <= 0 means lossless.
	QL() float64
	// Record returns the serializable form.
	Record() Record
	// MarshalJSON serializes Record().
	MarshalJSON() ([]byte, error)
}

// base carries the fields common to all variants.
type base struct {
	typ    Type
	volume float64 // litres
	ql     float64
}

func (b *base) Type() Type               { return b.typ }
func (b *base) Volume() float64          { return b.volume }
func (b *base) SetVolume(liters float64) { b.volume = liters }
func (b *base) QL() float64              { return b.ql }

func (b *base) record() Record {
	ql := b.ql

	return Record{
		Type:   b.typ.String(),
		Volume: &Quantity{Value: b.volume, Unit: "L"},
		QL:     &ql,
	}
}
