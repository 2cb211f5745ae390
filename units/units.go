// SPDX-License-Identifier: MIT

package units

import "fmt"

// Dimension identifies the physical quantity a unit tag belongs to.
type Dimension int

const (
	// Length converts to metres.
	Length Dimension = iota
	// Mass converts to kilograms.
	Mass
	// Area converts to square metres.
	Area
	// Volume converts to cubic metres.
	Volume
)

// String returns the lower-case dimension name.
func (d Dimension) String() string {
	switch d {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Area:
		return "area"
	case Volume:
		return "volume"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// Conversion factors to the SI base unit of each dimension.
// The SI tag itself maps to 1 so that strict lookups recognize it.
var (
	lengthFactors = map[string]float64{
		"m":  1,
		"mm": 1e-3,
		"cm": 1e-2,
		"in": 0.0254,
		"ft": 0.3048,
	}
	massFactors = map[string]float64{
		"kg": 1,
		"g":  1e-3,
		"oz": 0.0283495,
		"lb": 0.453592,
	}
	areaFactors = map[string]float64{
		"m2":  1,
		"cm2": 1e-4,
		"in2": 0.00064516,
		"ft2": 0.092903,
	}
	volumeFactors = map[string]float64{
		"m3":  1,
		"L":   1e-3,
		"l":   1e-3,
		"dm3": 1e-3,
		"cm3": 1e-6,
		"in3": 1.63871e-5,
		"ft3": 0.0283168,
	}
)

// factors returns the lookup table of d, or nil for an unknown dimension.
func factors(d Dimension) map[string]float64 {
	switch d {
	case Length:
		return lengthFactors
	case Mass:
		return massFactors
	case Area:
		return areaFactors
	case Volume:
		return volumeFactors
	default:
		return nil
	}
}

// permissive scales value by the factor of unit, falling back to identity.
func permissive(table map[string]float64, value float64, unit string) float64 {
	if f, ok := table[unit]; ok {
		return value * f
	}

	return value
}

// ToLength converts value given in unit to metres.
// Unrecognized tags are treated as metres.
func ToLength(value float64, unit string) float64 {
	return permissive(lengthFactors, value, unit)
}

// ToMass converts value given in unit to kilograms.
// Unrecognized tags are treated as kilograms.
func ToMass(value float64, unit string) float64 {
	return permissive(massFactors, value, unit)
}

// ToArea converts value given in unit to square metres.
// Unrecognized tags are treated as square metres.
func ToArea(value float64, unit string) float64 {
	return permissive(areaFactors, value, unit)
}

// ToVolume converts value given in unit to cubic metres.
// Unrecognized tags are treated as cubic metres.
func ToVolume(value float64, unit string) float64 {
	return permissive(volumeFactors, value, unit)
}

// Known reports whether unit is a recognized tag of dimension d.
func Known(d Dimension, unit string) bool {
	_, ok := factors(d)[unit]

	return ok
}

// Convert is the strict counterpart of the ToX functions.
//
// Errors:
//   - ErrUnknownDimension if d is not one of Length, Mass, Area, Volume.
//   - ErrUnknownUnit (wrapped with the offending tag) if unit is not
//     recognized for d.
func Convert(d Dimension, value float64, unit string) (float64, error) {
	table := factors(d)
	if table == nil {
		return 0, ErrUnknownDimension
	}
	f, ok := table[unit]
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", d, unit, ErrUnknownUnit)
	}

	return value * f, nil
}

// Func is the signature shared by ToLength, ToMass, ToArea and ToVolume.
type Func func(value float64, unit string) float64

// For returns the permissive converter of d, or nil for an unknown dimension.
func For(d Dimension) Func {
	switch d {
	case Length:
		return ToLength
	case Mass:
		return ToMass
	case Area:
		return ToArea
	case Volume:
		return ToVolume
	default:
		return nil
	}
}
