// Package units normalizes {value, unit} pairs from loudspeaker data sheets
// into SI base units.
//
// What is covered?
//
//	Four physical dimensions appear in driver records:
//	  • Length m, mm, cm, in, ft        → metre
//	  • Mass   kg, g, oz, lb            → kilogram
//	  • Area   m2, cm2, in2, ft2        → square metre
//	  • Volume m3, L/l/dm3, cm3, in3, ft3 → cubic metre
//
// Two flavours:
//
//   - ToLength / ToMass / ToArea / ToVolume are permissive: an unrecognized
//     unit tag is treated as already-SI and the value passes through as is.
//     Callers must not rely on tag validation happening here.
//   - Convert is strict: an unrecognized tag yields ErrUnknownUnit.
//
// Usage:
//
//	sd := units.ToArea(330, "cm2")                 // 0.033
//	vas, err := units.Convert(units.Volume, 48, "L") // 0.048, nil
//
// All functions are pure and safe for concurrent use.
package units
