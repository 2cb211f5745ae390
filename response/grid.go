// SPDX-License-Identifier: MIT

package response

import (
	"fmt"
	"math"
)

// LogSpace returns n frequencies spaced evenly on a log scale from f0 to f1
// inclusive. Requires 0 < f0 < f1 and n >= 2.
func LogSpace(f0, f1 float64, n int) ([]float64, error) {
	if err := checkGrid(f0, f1, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	l0, step := math.Log10(f0), (math.Log10(f1)-math.Log10(f0))/float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, l0+step*float64(i))
	}
	out[0], out[n-1] = f0, f1

	return out, nil
}

// LinSpace returns n frequencies spaced evenly from f0 to f1 inclusive.
// Requires 0 < f0 < f1 and n >= 2.
func LinSpace(f0, f1 float64, n int) ([]float64, error) {
	if err := checkGrid(f0, f1, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	step := (f1 - f0) / float64(n-1)
	for i := range out {
		out[i] = f0 + step*float64(i)
	}
	out[n-1] = f1

	return out, nil
}

// PerOctave returns a log grid from f0 to f1 with the given number of
// points per octave (e.g. 3, 6, 12, 24).
func PerOctave(f0, f1 float64, perOctave int) ([]float64, error) {
	if perOctave < 1 || !(f0 > 0) || !(f1 > f0) {
		return nil, fmt.Errorf("%w: [%v, %v] at %d per octave", ErrInvalidGrid, f0, f1, perOctave)
	}
	n := int(math.Ceil(math.Log2(f1/f0)*float64(perOctave))) + 1

	return LogSpace(f0, f1, max(n, 2))
}

func checkGrid(f0, f1 float64, n int) error {
	if n < 2 || !(f0 > 0) || !(f1 > f0) || math.IsInf(f1, 0) {
		return fmt.Errorf("%w: [%v, %v] with %d points", ErrInvalidGrid, f0, f1, n)
	}

	return nil
}
