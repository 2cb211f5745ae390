// SPDX-License-Identifier: MIT

package driver

import (
	"math"

	"github.com/katalvlaran/sival/environment"
)

// Fixed constants used by derivation. Deliberately not the configurable
// Environment values: a driver model must not change with session state.
const (
	rho0   = environment.DefaultDensityOfAir
	cSound = environment.DefaultSpeedOfSound
	twoPi  = 2 * math.Pi

	// sensitivityRef is 10·log₁₀ of the 1 W / 1 m reference intensity ratio.
	sensitivityRef = 112.0
)

// Each qesOf-style helper returns the value and whether a guard fired.

func qesOf(fs, mms, re, bl float64) (float64, bool) {
	if bl == 0 {
		return 0, true
	}

	return twoPi * fs * mms * re / (bl * bl), false
}

func qtsOf(qms, qes float64) (float64, bool) {
	if qms+qes == 0 {
		return 0, true
	}

	return qms * qes / (qms + qes), false
}

func cmsOf(fs, mms float64) (float64, bool) {
	w := twoPi * fs
	if w == 0 || mms == 0 {
		return 0, true
	}

	return 1 / (w * w * mms), false
}

func kmsOf(fs, mms float64) float64 {
	w := twoPi * fs

	return w * w * mms
}

func vasOf(sd, cms float64) float64 {
	return rho0 * cSound * cSound * sd * sd * cms
}

func sensitivityOf(fs, vas, qes float64) (float64, bool) {
	if cSound == 0 || qes == 0 {
		return 0, true
	}
	eta0 := 4 * math.Pi * math.Pi * math.Pow(fs, 3) * vas / (math.Pow(cSound, 3) * qes)
	if eta0 <= 0 {
		return 0, true
	}

	return sensitivityRef + 10*math.Log10(eta0), false
}

// ComputeQes returns the electrical Q, 2π·Fs·Mms·Re/Bl², or 0 when bl == 0.
func ComputeQes(fs, mms, re, bl float64) float64 {
	v, _ := qesOf(fs, mms, re, bl)

	return v
}

// ComputeQts returns Qms·Qes/(Qms+Qes), or 0 when the sum is 0.
func ComputeQts(qms, qes float64) float64 {
	v, _ := qtsOf(qms, qes)

	return v
}

// ComputeCms returns the suspension compliance 1/((2π·Fs)²·Mms) in m/N,
// or 0 when fs or mms is 0.
func ComputeCms(fs, mms float64) float64 {
	v, _ := cmsOf(fs, mms)

	return v
}

// ComputeKms returns the suspension stiffness (2π·Fs)²·Mms in N/m.
func ComputeKms(fs, mms float64) float64 { return kmsOf(fs, mms) }

// ComputeVas returns the equivalent volume ρ₀·c²·Sd²·Cms in m³ using the
// default air constants.
func ComputeVas(sd, cms float64) float64 { return vasOf(sd, cms) }

// ComputeSensitivity returns the 1 W / 1 m reference efficiency level in dB.
// It is 0 when qes is 0 or the efficiency is not positive.
func ComputeSensitivity(fs, vas, qes float64) float64 {
	v, _ := sensitivityOf(fs, vas, qes)

	return v
}
