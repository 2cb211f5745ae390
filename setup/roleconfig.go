package setup

import (
	"fmt"

	"github.com/katalvlaran/sival/driver"
)

// RoleConfig is the driver chosen for a role and how many identical units
// are used.
type RoleConfig struct {
	Driver *driver.Driver
	Count  int
}

// NewRoleConfig validates count.
func NewRoleConfig(d *driver.Driver, count int) (RoleConfig, error) {
	if count < 1 {
		return RoleConfig{}, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	return RoleConfig{Driver: d, Count: count}, nil
}
