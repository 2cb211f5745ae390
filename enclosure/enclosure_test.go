package enclosure_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sival/enclosure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Fresh creates each variant from its tag only.
func TestNew_Fresh(t *testing.T) {
	for _, typ := range []enclosure.Type{enclosure.Sealed, enclosure.Vented} {
		e, err := enclosure.New(typ)
		require.NoError(t, err)
		assert.Equal(t, typ, e.Type())
		assert.Equal(t, 0.0, e.Volume())
	}
	_, err := enclosure.New(enclosure.Type(7))
	assert.ErrorIs(t, err, enclosure.ErrUnknownType)
}

// TestSetVolume is the only mutator.
func TestSetVolume(t *testing.T) {
	e := enclosure.NewSealed(20)
	assert.Equal(t, 20.0, e.Volume())
	e.SetVolume(35.5)
	assert.Equal(t, 35.5, e.Volume())
	assert.Equal(t, enclosure.DefaultSealedQL, e.QL())
}

// TestParse_Sealed converts the volume unit to litres.
func TestParse_Sealed(t *testing.T) {
	e, err := enclosure.Parse([]byte(`{"type": "Sealed", "volume": {"value": 0.02, "unit": "m3"}, "ql": 15}`))
	require.NoError(t, err)
	assert.Equal(t, enclosure.Sealed, e.Type())
	assert.InDelta(t, 20.0, e.Volume(), 1e-12)
	assert.Equal(t, 15.0, e.QL())
}

// TestParse_VentedYAML reads the variant-specific members.
func TestParse_VentedYAML(t *testing.T) {
	doc := `
type: vented
volume: {value: 1.5, unit: ft3}
tuning_frequency: 32
port_diameter: {value: 10, unit: cm}
port_length: {value: 250, unit: mm}
`
	e, err := enclosure.Parse([]byte(doc))
	require.NoError(t, err)
	v, ok := e.(*enclosure.VentedBox)
	require.True(t, ok)
	assert.InDelta(t, 42.4752, v.Volume(), 1e-9)
	assert.Equal(t, 32.0, v.TuningFrequency())
	assert.InDelta(t, 0.1, v.PortDiameter(), 1e-15)
	assert.InDelta(t, 0.25, v.PortLength(), 1e-15)
	assert.InDelta(t, 0.00785398, v.PortArea(), 1e-8)
	assert.Equal(t, enclosure.DefaultVentedQL, v.QL())
}

// TestParse_Errors covers discriminator and presence failures.
func TestParse_Errors(t *testing.T) {
	_, err := enclosure.Parse([]byte(`{"type": "Horn", "volume": {"value": 1, "unit": "L"}}`))
	assert.ErrorIs(t, err, enclosure.ErrUnknownType)

	_, err = enclosure.Parse([]byte(`{"volume": {"value": 1, "unit": "L"}}`))
	assert.ErrorIs(t, err, enclosure.ErrMissingField)

	_, err = enclosure.Parse([]byte(`{"type": "Sealed"}`))
	assert.ErrorIs(t, err, enclosure.ErrMissingField)

	_, err = enclosure.Parse([]byte(``))
	assert.ErrorIs(t, err, enclosure.ErrInvalidRecord)

	_, err = enclosure.Parse([]byte(`{"type": [`))
	assert.ErrorIs(t, err, enclosure.ErrInvalidRecord)
}

// TestRecordRoundTrip serializes and rebuilds both variants.
func TestRecordRoundTrip(t *testing.T) {
	boxes := []enclosure.Enclosure{
		enclosure.NewSealed(20).WithQL(12),
		enclosure.NewVented(55, 28).WithPort(0.1, 0.3).WithQL(5),
	}
	for _, orig := range boxes {
		data, err := json.Marshal(orig)
		require.NoError(t, err)

		back, err := enclosure.Parse(data)
		require.NoError(t, err)
		if diff := cmp.Diff(orig.Record(), back.Record()); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", orig.Type(), diff)
		}
	}
}

// TestSealedRecord_Shape pins the JSON layout of a sealed box.
func TestSealedRecord_Shape(t *testing.T) {
	data, err := enclosure.NewSealed(20).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Sealed","volume":{"value":20,"unit":"L"},"ql":10}`, string(data))
}

// TestParseType is case-insensitive.
func TestParseType(t *testing.T) {
	for tag, want := range map[string]enclosure.Type{"Sealed": enclosure.Sealed, "VENTED": enclosure.Vented, " sealed ": enclosure.Sealed} {
		got, err := enclosure.ParseType(tag)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, "Type(9)", enclosure.Type(9).String())
}
