// SPDX-License-Identifier: MIT

package response

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/sival/driver"
	"github.com/katalvlaran/sival/enclosure"
)

// SealedImpedance is the electrical input impedance of N identical drivers
// wired in parallel, sharing one closed box.
//
// Model (ω = 2πf):
//
//	Zel = Re + jωLe
//	Zmd = Rms + j(ωMms − 1/(ωCms))
//	Zmb = 1/(jωCmb) + Rmb           (see boxImpedance)
//	Z   = (Zel + Bl²/(Zmd + Zmb)) / N
//
// Complexity: O(1) per frequency.
//
// Errors:
//   - ErrInvalidFrequency for f ≤ 0 or non-finite f.
//   - ErrDegenerate when Cms or the box volume is zero, or nothing is bound.
//   - ErrSingular when the total mechanical impedance vanishes.
type SealedImpedance struct {
	binding
}

// NewSealedImpedance binds d and e. Defaults: one driver, environment.Defaults.
func NewSealedImpedance(d *driver.Driver, e enclosure.Enclosure, opts ...Option) *SealedImpedance {
	return &SealedImpedance{binding: newBinding(d, e, opts)}
}

// Kind implements Response.
func (*SealedImpedance) Kind() Kind { return Impedance }

// Evaluate returns |Z(f)| in Ω.
func (s *SealedImpedance) Evaluate(f float64) (float64, error) {
	z, err := s.Complex(f)
	if err != nil {
		return 0, err
	}

	return cmplx.Abs(z), nil
}

// Complex returns Z(f) as a complex impedance in Ω.
func (s *SealedImpedance) Complex(f float64) (complex128, error) {
	if err := s.check(f); err != nil {
		return 0, err
	}
	d := s.drv
	if d.Cms() == 0 {
		return 0, fmt.Errorf("%w: cms is zero", ErrDegenerate)
	}
	w := 2 * math.Pi * f

	zel := complex(d.Re(), w*d.Le())
	zmd := complex(d.Rms(), w*d.Mms()-1/(w*d.Cms()))
	zm := zmd + s.boxImpedance(w)
	if zm == 0 {
		return 0, fmt.Errorf("%w at %v Hz", ErrSingular, f)
	}
	bl := complex(d.Bl(), 0)
	z := zel + bl*bl/zm

	return z / complex(float64(s.count), 0), nil
}

// boxImpedance is the air spring of the box reflected to the mechanical
// side; zero when the driver has no radiating area.
//
//	Vb  = box volume / N            (m³, each driver's share)
//	Cab = Vb / (ρc²)                acoustic compliance
//	Cmb = Cab / Sd²                 mechanical compliance
//	ωc  = 1/√(Mms · Cms·Cmb/(Cms+Cmb))
//	Rmb = 1/(ωc · Cmb · Ql)         box losses
//	Zmb = 1/(jωCmb) + Rmb
//
// Ql ≤ 0 or +Inf drops Rmb (lossless box). ρ and c come from the Medium at
// call time.
func (s *SealedImpedance) boxImpedance(w float64) complex128 {
	d := s.drv
	sd := d.Sd()
	if sd == 0 {
		return 0
	}
	rho, c := s.medium.DensityOfAir(), s.medium.SpeedOfSound()
	cab := s.boxShare() / (rho * c * c)
	cmb := cab / (sd * sd)
	zmb := 1 / complex(0, w*cmb)

	ql := s.box.QL()
	if ql <= 0 || math.IsInf(ql, 1) {
		return zmb
	}
	wc := 1 / math.Sqrt(d.Mms()*d.Cms()*cmb/(d.Cms()+cmb))
	if math.IsInf(wc, 0) || math.IsNaN(wc) {
		return zmb
	}

	return zmb + complex(1/(wc*cmb*ql), 0)
}

// SealedSPL is the on-axis sound pressure level of N identical drivers in
// a closed box, modelled as a second-order high-pass at the system
// resonance fc with total damping Qtc.
//
// Model:
//
//	α   = Vas / Vb                  (Vb per driver)
//	fc  = Fs · √(1+α)
//	Qtc = Qts · √(1+α)
//	H   = s² / (s² + s·ωc/Qtc + ωc²),  s = jω, ωc = 2πfc
//	SPL = sensitivity + 20·log10|H| + 20·log10 N
//
// Complexity: O(1) per frequency.
//
// Errors:
//   - ErrInvalidFrequency for f ≤ 0 or non-finite f.
//   - ErrDegenerate when volume, Fs or Qts is not positive.
type SealedSPL struct {
	binding
}

// NewSealedSPL binds d and e. Defaults: one driver, environment.Defaults.
func NewSealedSPL(d *driver.Driver, e enclosure.Enclosure, opts ...Option) *SealedSPL {
	return &SealedSPL{binding: newBinding(d, e, opts)}
}

// Kind implements Response.
func (*SealedSPL) Kind() Kind { return Spl }

// Alignment returns the system resonance fc in Hz and its total Q.
func (s *SealedSPL) Alignment() (fc, qtc float64, err error) {
	if s.drv == nil || s.box == nil || s.box.Volume() <= 0 {
		return 0, 0, fmt.Errorf("%w: driver, enclosure or volume missing", ErrDegenerate)
	}
	d := s.drv
	if d.Fs() <= 0 || d.Qts() <= 0 {
		return 0, 0, fmt.Errorf("%w: fs or qts is not positive", ErrDegenerate)
	}
	k := math.Sqrt(1 + d.Vas()/s.boxShare())

	return d.Fs() * k, d.Qts() * k, nil
}

// Evaluate returns the SPL at f Hz in dB.
func (s *SealedSPL) Evaluate(f float64) (float64, error) {
	if err := s.check(f); err != nil {
		return 0, err
	}
	fc, qtc, err := s.Alignment()
	if err != nil {
		return 0, err
	}
	w, wc := 2*math.Pi*f, 2*math.Pi*fc
	jw := complex(0, w)
	h := jw * jw / (jw*jw + jw*complex(wc/qtc, 0) + complex(wc*wc, 0))

	return s.drv.Sensitivity() + 20*math.Log10(cmplx.Abs(h)) + 20*math.Log10(float64(s.count)), nil
}
