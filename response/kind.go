package response

import (
	"fmt"
	"strings"
)

// Kind tags what a Response computes.
type Kind int

const (
	// Spl is sound pressure level in dB.
	Spl Kind = iota
	// Impedance is electrical input impedance magnitude in Ω.
	Impedance
)

// String returns the display name of k.
func (k Kind) String() string {
	switch k {
	case Spl:
		return "Spl"
	case Impedance:
		return "Impedance"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Unit returns the unit symbol of values produced by k.
func (k Kind) Unit() string {
	switch k {
	case Spl:
		return "dB"
	case Impedance:
		return "Ohm"
	default:
		return ""
	}
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind { return []Kind{Spl, Impedance} }

// ParseKind maps a name (case-insensitive) to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(strings.TrimSpace(name), k.String()) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("response: unknown kind %q", name)
}
