package driver

// Summary is a flat, serializable view of a Driver in SI units.
// Optional values are nil when absent.
type Summary struct {
	UUID         string `json:"uuid" yaml:"uuid"`
	Brand        string `json:"brand" yaml:"brand"`
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`
	Model        string `json:"model" yaml:"model"`
	SpeakerType  string `json:"speaker_type,omitempty" yaml:"speaker_type,omitempty"`

	Re          float64 `json:"re" yaml:"re"`
	Le          float64 `json:"le" yaml:"le"`
	Bl          float64 `json:"bl" yaml:"bl"`
	Sensitivity float64 `json:"sensitivity" yaml:"sensitivity"`

	Fs        float64  `json:"fs" yaml:"fs"`
	Qms       float64  `json:"qms" yaml:"qms"`
	Qes       float64  `json:"qes" yaml:"qes"`
	Qts       float64  `json:"qts" yaml:"qts"`
	Mms       float64  `json:"mms" yaml:"mms"`
	Cms       float64  `json:"cms" yaml:"cms"`
	Stiffness float64  `json:"stiffness" yaml:"stiffness"`
	Vas       float64  `json:"vas" yaml:"vas"`
	Rms       float64  `json:"rms" yaml:"rms"`
	Sd        float64  `json:"sd" yaml:"sd"`
	Xmax      *float64 `json:"xmax,omitempty" yaml:"xmax,omitempty"`
	Xlim      *float64 `json:"xlim,omitempty" yaml:"xlim,omitempty"`
	Vd        *float64 `json:"vd,omitempty" yaml:"vd,omitempty"`

	Derived []string `json:"derived,omitempty" yaml:"derived,omitempty"`
}

// Summary returns the flat view of d.
func (d *Driver) Summary() Summary {
	s := Summary{
		UUID:         d.uuid,
		Brand:        d.brand,
		Manufacturer: d.manufacturer,
		Model:        d.model,
		SpeakerType:  d.speakerType,
		Re:           d.re,
		Le:           d.le,
		Bl:           d.bl,
		Sensitivity:  d.sensitivity,
		Fs:           d.fs,
		Qms:          d.qms,
		Qes:          d.qes,
		Qts:          d.qts,
		Mms:          d.mms,
		Cms:          d.cms,
		Stiffness:    d.stiffness,
		Vas:          d.vas,
		Rms:          d.rms,
		Sd:           d.sd,
		Xmax:         d.xmax.ptr(),
		Xlim:         d.xlim.ptr(),
		Vd:           d.vd.ptr(),
	}
	for _, p := range d.Derived() {
		s.Derived = append(s.Derived, p.String())
	}

	return s
}

func (o optional) ptr() *float64 {
	if !o.ok {
		return nil
	}
	v := o.v

	return &v
}
