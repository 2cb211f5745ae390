package driver

import (
	"fmt"

	"github.com/katalvlaran/sival/units"
)

// Param names a derivable parameter.
type Param int

const (
	ParamQes Param = iota
	ParamQts
	ParamCms
	ParamStiffness
	ParamVas
	ParamVd
	ParamSensitivity
)

var paramNames = [...]string{
	ParamQes:         "qes",
	ParamQts:         "qts",
	ParamCms:         "cms",
	ParamStiffness:   "stiffness",
	ParamVas:         "vas",
	ParamVd:          "vd",
	ParamSensitivity: "sensitivity",
}

// String returns the record key of p.
func (p Param) String() string {
	if p < ParamQes || int(p) >= len(paramNames) {
		return fmt.Sprintf("param(%d)", int(p))
	}

	return paramNames[p]
}

// optional is a value that may be absent.
type optional struct {
	v  float64
	ok bool
}

func some(v float64) optional { return optional{v: v, ok: true} }

// Driver is a complete, SI-normalized driver model. It has no setters.
type Driver struct {
	// general info
	uuid         string
	brand        string
	manufacturer string
	providedBy   string
	comment      string
	model        string
	indexed      bool
	speakerType  string

	// electrical
	impedance     float64
	sensitivity   float64
	re            float64
	le            float64
	znom          float64
	pe            float64
	pmax          float64
	bl            float64
	motorConstant float64
	fluxDensity   float64

	// Thiele-Small
	fs        float64
	qms       float64
	qes       float64
	qts       float64
	mms       float64
	mmd       float64
	stiffness float64
	cms       float64
	vas       float64
	rms       float64
	sd        float64
	xmax      optional
	xlim      optional
	vd        optional

	// physical dimensions
	nominalDiameter      string
	vcDiameter           float64
	windingHeight        float64
	airGapHeight         float64
	effectiveDiameter    float64
	baffleCutoutDiameter float64
	volumeOccupied       float64
	netWeight            float64
	material             string

	derived uint8 // bit per Param
}

// New validates rec and returns the complete model.
//
// Stage 1 reads every fundamental field; the first absent or unusable one
// aborts construction with a *FieldError. Stage 2 takes each derivable
// parameter from rec when present, otherwise computes it from the values
// established so far, in the order Qes, Qts, Cms, Kms, Vas, Vd, sensitivity.
//
// No partially built *Driver is ever returned.
func New(rec *Record, opts ...Option) (*Driver, error) {
	if rec == nil {
		return nil, &FieldError{Path: "record", Err: ErrMissingField}
	}
	o := gatherOptions(opts)
	fr := &fieldReader{strictUnits: o.strictUnits}
	d := &Driver{}

	// Stage 1: sections.
	gi := rec.GeneralInfo
	ep := rec.ElectricalParameters
	ts := rec.ThieleSmall
	pd := rec.PhysicalDimensions
	switch {
	case gi == nil:
		return nil, &FieldError{Path: "general_info", Err: ErrMissingField}
	case ep == nil:
		return nil, &FieldError{Path: "electrical_parameters", Err: ErrMissingField}
	case ts == nil:
		return nil, &FieldError{Path: "thiele_small_parameters", Err: ErrMissingField}
	case pd == nil:
		return nil, &FieldError{Path: "physical_dimensions", Err: ErrMissingField}
	}

	// Stage 1: fundamentals.
	d.uuid = fr.text("general_info.uuid", gi.UUID)
	d.brand = fr.text("general_info.brand", gi.Brand)
	d.manufacturer = fr.text("general_info.manufacturer", gi.Manufacturer)
	d.providedBy = fr.text("general_info.providedby", gi.ProvidedBy)
	d.comment = fr.text("general_info.comment", gi.Comment)
	d.model = fr.text("general_info.model", gi.Model)
	d.indexed = fr.flag("general_info.indexed", gi.Indexed)
	d.speakerType = gi.SpeakerType

	d.re = fr.raw("electrical_parameters.re", ep.Re)
	d.bl = fr.raw("electrical_parameters.bl", ep.Bl)
	d.impedance = fr.raw("electrical_parameters.impedance", ep.Impedance)
	d.le = fr.raw("electrical_parameters.le", ep.Le)
	d.znom = fr.raw("electrical_parameters.znom", ep.Znom)
	d.pe = fr.raw("electrical_parameters.pe", ep.Pe)
	d.pmax = fr.raw("electrical_parameters.pmax", ep.Pmax)
	d.motorConstant = fr.raw("electrical_parameters.motor_constant", ep.MotorConstant)
	d.fluxDensity = fr.raw("electrical_parameters.flux_density", ep.FluxDensity)

	d.fs = fr.raw("thiele_small_parameters.fs", ts.Fs)
	d.qms = fr.raw("thiele_small_parameters.qms", ts.Qms)
	d.mms = fr.conv("thiele_small_parameters.mms", ts.Mms, units.Mass)
	d.sd = fr.conv("thiele_small_parameters.sd", ts.Sd, units.Area)
	d.mmd = fr.conv("thiele_small_parameters.mmd", ts.Mmd, units.Mass)
	d.rms = fr.raw("thiele_small_parameters.rms", ts.Rms)
	d.xmax = fr.optConv("thiele_small_parameters.xmax", ts.Xmax, units.Length)
	d.xlim = fr.optConv("thiele_small_parameters.xlim", ts.Xlim, units.Length)

	d.nominalDiameter = fr.text("physical_dimensions.nominal_diameter", pd.NominalDiameter)
	d.vcDiameter = fr.conv("physical_dimensions.vc_diameter", pd.VCDiameter, units.Length)
	d.windingHeight = fr.conv("physical_dimensions.winding_height", pd.WindingHeight, units.Length)
	d.airGapHeight = fr.conv("physical_dimensions.air_gap_height", pd.AirGapHeight, units.Length)
	d.effectiveDiameter = fr.conv("physical_dimensions.effective_diameter", pd.EffectiveDiameter, units.Length)
	d.baffleCutoutDiameter = fr.conv("physical_dimensions.baffle_cutout_diameter", pd.BaffleCutoutDiameter, units.Length)
	d.volumeOccupied = fr.conv("physical_dimensions.volume_occupied", pd.VolumeOccupied, units.Volume)
	d.netWeight = fr.conv("physical_dimensions.net_weight", pd.NetWeight, units.Mass)
	d.material = fr.text("physical_dimensions.material", pd.Material)
	if fr.err != nil {
		return nil, fr.err
	}

	// Stage 2: derivables, order matters.
	if err := d.derive(rec, fr, o.strictNumerics); err != nil {
		return nil, err
	}

	return d, nil
}

// derive fills the derivable parameters. fr is reused for the verbatim
// reads so unit handling matches stage 1.
func (d *Driver) derive(rec *Record, fr *fieldReader, strict bool) error {
	ep, ts := rec.ElectricalParameters, rec.ThieleSmall
	guard := func(p Param, fired bool, reason string) error {
		d.derived |= 1 << p
		if fired && strict {
			section := "thiele_small_parameters."
			if p == ParamSensitivity {
				section = "electrical_parameters."
			}

			return &FieldError{
				Path: section + p.String(),
				Err:  fmt.Errorf("%w: %s", ErrNumeric, reason),
			}
		}

		return nil
	}
	var fired bool

	// 1. Qes
	if ts.Qes != nil {
		d.qes = fr.raw("thiele_small_parameters.qes", ts.Qes)
	} else {
		d.qes, fired = qesOf(d.fs, d.mms, d.re, d.bl)
		if err := guard(ParamQes, fired, "bl is zero"); err != nil {
			return err
		}
	}

	// 2. Qts
	if ts.Qts != nil {
		d.qts = fr.raw("thiele_small_parameters.qts", ts.Qts)
	} else {
		d.qts, fired = qtsOf(d.qms, d.qes)
		if err := guard(ParamQts, fired, "qms + qes is zero"); err != nil {
			return err
		}
	}

	// 3. Cms
	if ts.Cms != nil {
		d.cms = fr.raw("thiele_small_parameters.cms", ts.Cms)
	} else {
		d.cms, fired = cmsOf(d.fs, d.mms)
		if err := guard(ParamCms, fired, "fs or mms is zero"); err != nil {
			return err
		}
	}

	// 4. Kms
	if ts.Stiffness != nil {
		d.stiffness = fr.raw("thiele_small_parameters.stiffness", ts.Stiffness)
	} else {
		d.stiffness = kmsOf(d.fs, d.mms)
		d.derived |= 1 << ParamStiffness
	}

	// 5. Vas
	if ts.Vas != nil {
		d.vas = fr.conv("thiele_small_parameters.vas", ts.Vas, units.Volume)
	} else {
		d.vas = vasOf(d.sd, d.cms)
		d.derived |= 1 << ParamVas
	}

	// 6. Vd
	if ts.Vd != nil {
		d.vd = fr.optConv("thiele_small_parameters.vd", ts.Vd, units.Volume)
	} else if d.xmax.ok {
		d.vd = some(d.sd * d.xmax.v)
		d.derived |= 1 << ParamVd
	}

	// 7. Sensitivity
	if ep.Sensitivity != nil {
		d.sensitivity = fr.raw("electrical_parameters.sensitivity", ep.Sensitivity)
	} else {
		d.sensitivity, fired = sensitivityOf(d.fs, d.vas, d.qes)
		if err := guard(ParamSensitivity, fired, "qes is zero or efficiency is not positive"); err != nil {
			return err
		}
	}

	return fr.err
}

// fieldReader reads record fields and keeps the first error.
type fieldReader struct {
	strictUnits bool
	err         error
}

func (fr *fieldReader) fail(path string, err error) {
	if fr.err == nil {
		fr.err = &FieldError{Path: path, Err: err}
	}
}

func (fr *fieldReader) text(path string, p *string) string {
	if p == nil {
		fr.fail(path, ErrMissingField)

		return ""
	}

	return *p
}

func (fr *fieldReader) flag(path string, p *bool) bool {
	if p == nil {
		fr.fail(path, ErrMissingField)

		return false
	}

	return *p
}

// raw returns q.value verbatim.
func (fr *fieldReader) raw(path string, q *Quantity) float64 {
	if q == nil {
		fr.fail(path, ErrMissingField)

		return 0
	}
	if q.Value == nil {
		fr.fail(path+".value", ErrMissingField)

		return 0
	}

	return *q.Value
}

// conv returns q converted to SI; the unit member is required.
func (fr *fieldReader) conv(path string, q *Quantity, dim units.Dimension) float64 {
	v := fr.raw(path, q)
	if q == nil || q.Value == nil {
		return 0
	}
	if q.Unit == nil {
		fr.fail(path+".unit", ErrMissingField)

		return 0
	}
	if fr.strictUnits {
		si, err := units.Convert(dim, v, *q.Unit)
		if err != nil {
			fr.fail(path+".unit", fmt.Errorf("%w: %w", ErrInvalidField, err))

			return 0
		}

		return si
	}

	return units.For(dim)(v, *q.Unit)
}

// optConv is conv for fields that may be absent.
func (fr *fieldReader) optConv(path string, q *Quantity, dim units.Dimension) optional {
	if q == nil {
		return optional{}
	}

	return some(fr.conv(path, q, dim))
}

// UUID returns the unique identifier.
func (d *Driver) UUID() string { return d.uuid }

// Brand returns the brand name.
func (d *Driver) Brand() string { return d.brand }

// Manufacturer returns the manufacturer.
func (d *Driver) Manufacturer() string { return d.manufacturer }

// ProvidedBy returns the data provider.
func (d *Driver) ProvidedBy() string { return d.providedBy }

// Comment returns the free-text comment.
func (d *Driver) Comment() string { return d.comment }

// Model returns the model name.
func (d *Driver) Model() string { return d.model }

// Indexed reports the indexed flag.
func (d *Driver) Indexed() bool { return d.indexed }

// SpeakerType returns general_info.speaker_type ("" when absent).
func (d *Driver) SpeakerType() string { return d.speakerType }

// Impedance returns the rated impedance in Ohm.
func (d *Driver) Impedance() float64 { return d.impedance }

// Sensitivity returns the 1 W / 1 m sensitivity in dB.
func (d *Driver) Sensitivity() float64 { return d.sensitivity }

// Re returns the voice-coil DC resistance in Ohm.
func (d *Driver) Re() float64 { return d.re }

// Le returns the voice-coil inductance in Henry.
func (d *Driver) Le() float64 { return d.le }

// Znom returns the nominal impedance in Ohm.
func (d *Driver) Znom() float64 { return d.znom }

// Pe returns the rated power in W.
func (d *Driver) Pe() float64 { return d.pe }

// Pmax returns the maximum power in W.
func (d *Driver) Pmax() float64 { return d.pmax }

// Bl returns the force factor in T·m.
func (d *Driver) Bl() float64 { return d.bl }

// MotorConstant returns the motor constant in N/√W.
func (d *Driver) MotorConstant() float64 { return d.motorConstant }

// FluxDensity returns the air-gap flux density in T.
func (d *Driver) FluxDensity() float64 { return d.fluxDensity }

// Fs returns the free-air resonance in Hz.
func (d *Driver) Fs() float64 { return d.fs }

// Qms returns the mechanical Q.
func (d *Driver) Qms() float64 { return d.qms }

// Qes returns the electrical Q.
func (d *Driver) Qes() float64 { return d.qes }

// Qts returns the total Q.
func (d *Driver) Qts() float64 { return d.qts }

// Mms returns the moving mass in kg.
func (d *Driver) Mms() float64 { return d.mms }

// Mmd returns the diaphragm mass in kg.
func (d *Driver) Mmd() float64 { return d.mmd }

// Stiffness returns the suspension stiffness Kms in N/m.
func (d *Driver) Stiffness() float64 { return d.stiffness }

// Cms returns the suspension compliance in m/N.
func (d *Driver) Cms() float64 { return d.cms }

// Vas returns the equivalent air volume in m³.
func (d *Driver) Vas() float64 { return d.vas }

// Rms returns the mechanical resistance in N·s/m.
func (d *Driver) Rms() float64 { return d.rms }

// Sd returns the effective radiating area in m².
func (d *Driver) Sd() float64 { return d.sd }

// Xmax returns the linear excursion in m, if known.
func (d *Driver) Xmax() (float64, bool) { return d.xmax.v, d.xmax.ok }

// Xlim returns the mechanical limit excursion in m, if known.
func (d *Driver) Xlim() (float64, bool) { return d.xlim.v, d.xlim.ok }

// Vd returns the displacement volume in m³, if known.
func (d *Driver) Vd() (float64, bool) { return d.vd.v, d.vd.ok }

// NominalDiameter returns the nominal size label, e.g. "8 in".
func (d *Driver) NominalDiameter() string { return d.nominalDiameter }

// VCDiameter returns the voice-coil diameter in m.
func (d *Driver) VCDiameter() float64 { return d.vcDiameter }

// WindingHeight returns the voice-coil winding height in m.
func (d *Driver) WindingHeight() float64 { return d.windingHeight }

// AirGapHeight returns the air-gap height in m.
func (d *Driver) AirGapHeight() float64 { return d.airGapHeight }

// EffectiveDiameter returns the effective piston diameter in m.
func (d *Driver) EffectiveDiameter() float64 { return d.effectiveDiameter }

// BaffleCutoutDiameter returns the mounting hole diameter in m.
func (d *Driver) BaffleCutoutDiameter() float64 { return d.baffleCutoutDiameter }

// VolumeOccupied returns the volume the driver displaces inside a box, m³.
func (d *Driver) VolumeOccupied() float64 { return d.volumeOccupied }

// NetWeight returns the driver weight in kg.
func (d *Driver) NetWeight() float64 { return d.netWeight }

// Material returns the cone material label.
func (d *Driver) Material() string { return d.material }

// IsDerived reports whether p was computed rather than read from the record.
func (d *Driver) IsDerived(p Param) bool {
	return p >= ParamQes && int(p) < len(paramNames) && d.derived&(1<<p) != 0
}

// Derived lists the computed parameters in derivation order.
func (d *Driver) Derived() []Param {
	var out []Param
	for p := ParamQes; int(p) < len(paramNames); p++ {
		if d.IsDerived(p) {
			out = append(out, p)
		}
	}

	return out
}
