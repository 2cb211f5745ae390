package driver_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/sival/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreate_MatchingRole accepts both woofer roles for a "Woofer" record.
func TestCreate_MatchingRole(t *testing.T) {
	data := readFixture(t, "woofer.json")
	for _, role := range []driver.Role{driver.Woofer, driver.WooferSecondary} {
		d, err := driver.Create(role, data)
		require.NoError(t, err, role.Key())
		assert.Equal(t, "Woofer", d.SpeakerType())
	}
}

// TestCreate_RoleMismatch names both sides of the mismatch.
func TestCreate_RoleMismatch(t *testing.T) {
	_, err := driver.Create(driver.SubWoofer, readFixture(t, "woofer.json"))
	assert.ErrorIs(t, err, driver.ErrRoleMismatch)
	var rm *driver.RoleMismatchError
	require.True(t, errors.As(err, &rm))
	assert.Equal(t, "SubWoofer", rm.Expected)
	assert.Equal(t, "Woofer", rm.Actual)
}

// TestCreate_MissingSpeakerType reads as "unknown".
func TestCreate_MissingSpeakerType(t *testing.T) {
	rec := newRecord()
	rec.GeneralInfo.SpeakerType = ""
	_, err := driver.CreateFromRecord(driver.Woofer, rec)
	var rm *driver.RoleMismatchError
	require.True(t, errors.As(err, &rm))
	assert.Equal(t, "unknown", rm.Actual)

	_, err = driver.CreateFromRecord(driver.Woofer, nil)
	assert.ErrorIs(t, err, driver.ErrRoleMismatch)
}

// TestCreate_UnknownType rejects a declared type no role accepts before
// comparing roles.
func TestCreate_UnknownType(t *testing.T) {
	horn := bytes.Replace(readFixture(t, "woofer.json"),
		[]byte(`"speaker_type": "Woofer"`), []byte(`"speaker_type": "Horn"`), 1)
	_, err := driver.Create(driver.Woofer, horn)
	assert.ErrorIs(t, err, driver.ErrUnknownType)
	assert.NotErrorIs(t, err, driver.ErrRoleMismatch)
	assert.Contains(t, err.Error(), `"Horn"`)
}

// TestCreateAny dispatches on any known type and rejects the rest.
func TestCreateAny(t *testing.T) {
	data := readFixture(t, "woofer.json")
	d, err := driver.CreateAny(data)
	require.NoError(t, err)
	assert.Equal(t, "AW-200", d.Model())

	horn := bytes.Replace(data, []byte(`"speaker_type": "Woofer"`), []byte(`"speaker_type": "Horn"`), 1)
	_, err = driver.CreateAny(horn)
	assert.ErrorIs(t, err, driver.ErrUnknownType)
}

// TestCreate_PropagatesOptions: strict numerics reach New.
func TestCreate_PropagatesOptions(t *testing.T) {
	data := bytes.Replace(readFixture(t, "woofer.json"), []byte(`"value": 7.5`), []byte(`"value": 0`), 1)
	_, err := driver.Create(driver.Woofer, data)
	require.NoError(t, err)
	_, err = driver.Create(driver.Woofer, data, driver.WithStrictNumerics())
	assert.ErrorIs(t, err, driver.ErrNumeric)
}

// TestRoles covers display strings, keys and parsing.
func TestRoles(t *testing.T) {
	want := map[driver.Role][2]string{
		driver.SubWoofer:       {"SubWoofer", "subwoofer"},
		driver.Woofer:          {"Woofer", "woofer"},
		driver.WooferSecondary: {"Woofer", "woofer-secondary"},
		driver.Midrange:        {"Midrange", "midrange"},
		driver.Tweeter:         {"Tweeter", "tweeter"},
		driver.Fullrange:       {"Fullrange", "fullrange"},
	}
	require.Len(t, driver.Roles(), len(want))
	for _, r := range driver.Roles() {
		assert.Equal(t, want[r][0], r.String())
		assert.Equal(t, want[r][1], r.Key())
		back, err := driver.ParseRole(r.Key())
		require.NoError(t, err)
		assert.Equal(t, r, back)
		assert.True(t, driver.IsKnownType(r.String()))
	}

	assert.Equal(t, "unknown", driver.Role(99).String())
	assert.Equal(t, "role(99)", driver.Role(99).Key())
	_, err := driver.ParseRole("horn")
	assert.ErrorIs(t, err, driver.ErrUnknownType)
	assert.False(t, driver.IsKnownType("Horn"))
}
