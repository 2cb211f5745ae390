package enclosure

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/sival/units"
	"gopkg.in/yaml.v3"
)

// Quantity is a {value, unit} pair.
type Quantity struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// Record is the serialized form shared by all variants. Variant-specific
// members are omitted when they do not apply.
type Record struct {
	Type            string    `json:"type" yaml:"type"`
	Volume          *Quantity `json:"volume" yaml:"volume"`
	QL              *float64  `json:"ql,omitempty" yaml:"ql,omitempty"`
	TuningFrequency *float64  `json:"tuning_frequency,omitempty" yaml:"tuning_frequency,omitempty"`
	PortDiameter    *Quantity `json:"port_diameter,omitempty" yaml:"port_diameter,omitempty"`
	PortLength      *Quantity `json:"port_length,omitempty" yaml:"port_length,omitempty"`
}

// liters converts q to litres through units.ToVolume.
func (q *Quantity) liters() float64 {
	if q.Unit == "L" {
		return q.Value
	}

	return units.ToVolume(q.Value, q.Unit) * 1e3
}

// meters converts q to metres through units.ToLength.
func (q *Quantity) meters() float64 {
	return units.ToLength(q.Value, q.Unit)
}

// New returns a fresh enclosure of type t with zero volume and default Ql.
func New(t Type) (Enclosure, error) {
	switch t {
	case Sealed:
		return NewSealed(0), nil
	case Vented:
		return NewVented(0, 0), nil
	default:
		return nil, fmt.Errorf("%s: %w", t, ErrUnknownType)
	}
}

// FromRecord builds the variant named by rec.Type. Each variant reads its
// own members; absent optional members keep their defaults.
func FromRecord(rec Record) (Enclosure, error) {
	if rec.Type == "" {
		return nil, fmt.Errorf("type: %w", ErrMissingField)
	}
	t, err := ParseType(rec.Type)
	if err != nil {
		return nil, err
	}
	if rec.Volume == nil {
		return nil, fmt.Errorf("volume: %w", ErrMissingField)
	}

	switch t {
	case Sealed:
		return sealedFromRecord(rec), nil
	default:
		return ventedFromRecord(rec), nil
	}
}

// Parse decodes a JSON or YAML record and builds the enclosure.
func Parse(data []byte) (Enclosure, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidRecord)
	}
	var rec Record
	// yaml.v3 accepts JSON documents as well.
	if err := yaml.Unmarshal(trimmed, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return FromRecord(rec)
}

// marshalRecord is the shared MarshalJSON body.
func marshalRecord(e Enclosure) ([]byte, error) {
	return json.Marshal(e.Record())
}
