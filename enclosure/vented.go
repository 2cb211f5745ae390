package enclosure

import "math"

// VentedBox is a bass-reflex box tuned by a port.
type VentedBox struct {
	base
	fb           float64 // Hz
	portDiameter float64 // m
	portLength   float64 // m
}

// NewVented returns a vented box with net volume in litres, tuning
// frequency fb in Hz and Ql = DefaultVentedQL. Port geometry is unset.
func NewVented(liters, fb float64) *VentedBox {
	return &VentedBox{
		base: base{typ: Vented, volume: liters, ql: DefaultVentedQL},
		fb:   fb,
	}
}

// WithPort returns a copy of v with the given port diameter and length (m).
func (v *VentedBox) WithPort(diameter, length float64) *VentedBox {
	c := *v
	c.portDiameter, c.portLength = diameter, length

	return &c
}

// WithQL returns a copy of v using loss factor ql.
func (v *VentedBox) WithQL(ql float64) *VentedBox {
	c := *v
	c.ql = ql

	return &c
}

// TuningFrequency returns Fb in Hz.
func (v *VentedBox) TuningFrequency() float64 { return v.fb }

// PortDiameter returns the port diameter in m (0 when unset).
func (v *VentedBox) PortDiameter() float64 { return v.portDiameter }

// PortLength returns the port length in m (0 when unset).
func (v *VentedBox) PortLength() float64 { return v.portLength }

// PortArea returns the port cross-section π·(d/2)² in m².
func (v *VentedBox) PortArea() float64 {
	r := v.portDiameter / 2

	return math.Pi * r * r
}

// Record implements Enclosure.
func (v *VentedBox) Record() Record {
	rec := v.record()
	fb := v.fb
	rec.TuningFrequency = &fb
	if v.portDiameter > 0 || v.portLength > 0 {
		rec.PortDiameter = &Quantity{Value: v.portDiameter, Unit: "m"}
		rec.PortLength = &Quantity{Value: v.portLength, Unit: "m"}
	}

	return rec
}

// MarshalJSON implements Enclosure.
func (v *VentedBox) MarshalJSON() ([]byte, error) { return marshalRecord(v) }

func ventedFromRecord(rec Record) *VentedBox {
	v := NewVented(rec.Volume.liters(), 0)
	if rec.QL != nil {
		v.ql = *rec.QL
	}
	if rec.TuningFrequency != nil {
		v.fb = *rec.TuningFrequency
	}
	if rec.PortDiameter != nil {
		v.portDiameter = rec.PortDiameter.meters()
	}
	if rec.PortLength != nil {
		v.portLength = rec.PortLength.meters()
	}

	return v
}
