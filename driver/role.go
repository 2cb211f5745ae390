package driver

import "fmt"

// Role is the logical position of a driver within a loudspeaker system.
type Role int

const (
	SubWoofer Role = iota
	Woofer
	WooferSecondary
	Midrange
	Tweeter
	Fullrange
)

// roleInfo binds a role to its display string (the speaker_type a record
// must declare) and a unique key for serialization.
var roleInfo = [...]struct {
	display string
	key     string
}{
	SubWoofer:       {"SubWoofer", "subwoofer"},
	Woofer:          {"Woofer", "woofer"},
	WooferSecondary: {"Woofer", "woofer-secondary"},
	Midrange:        {"Midrange", "midrange"},
	Tweeter:         {"Tweeter", "tweeter"},
	Fullrange:       {"Fullrange", "fullrange"},
}

// Roles returns every role in declaration order.
func Roles() []Role {
	return []Role{SubWoofer, Woofer, WooferSecondary, Midrange, Tweeter, Fullrange}
}

func (r Role) valid() bool { return r >= SubWoofer && int(r) < len(roleInfo) }

// String returns the canonical display string. WooferSecondary shares
// "Woofer" with Woofer because both accept the same driver type.
func (r Role) String() string {
	if !r.valid() {
		return "unknown"
	}

	return roleInfo[r].display
}

// Key returns a unique, lower-case identifier suitable for serialization.
func (r Role) Key() string {
	if !r.valid() {
		return fmt.Sprintf("role(%d)", int(r))
	}

	return roleInfo[r].key
}

// ParseRole maps a Key back to its Role.
func ParseRole(key string) (Role, error) {
	for _, r := range Roles() {
		if roleInfo[r].key == key {
			return r, nil
		}
	}

	return 0, fmt.Errorf("role %q: %w", key, ErrUnknownType)
}

// IsKnownType reports whether speakerType is the display string of some role.
func IsKnownType(speakerType string) bool {
	for _, r := range Roles() {
		if roleInfo[r].display == speakerType {
			return true
		}
	}

	return false
}
