// Package driver builds complete, SI-normalized loudspeaker driver models
// from partially specified manufacturer records.
//
// 🚀 What does it do?
//
//	A data sheet rarely lists every Thiele-Small parameter. New reads the
//	fundamental measurements (Re, Bl, Fs, Qms, Mms, Sd, …), converts their
//	units, and derives whatever is missing in a fixed dependency order:
//
//	  1. Qes = 2π·Fs·Mms·Re / Bl²
//	  2. Qts = Qms·Qes / (Qms + Qes)
//	  3. Cms = 1 / ((2π·Fs)²·Mms)
//	  4. Kms = (2π·Fs)²·Mms
//	  5. Vas = ρ₀·c²·Sd²·Cms
//	  6. Vd  = Sd·Xmax            (only when Xmax is known)
//	  7. SPL = 112 + 10·log₁₀(4π²·Fs³·Vas / (c³·Qes))
//
//	Later steps consume earlier results, so Qts uses a derived Qes and Vas a
//	derived Cms. Values present in the record are always taken verbatim.
//	ρ₀ and c are the fixed environment defaults here; a configurable
//	Environment only affects response evaluation.
//
// ✨ Guards:
//   - Division by zero and log of a non-positive number yield 0 by default.
//   - WithStrictNumerics turns those cases into ErrNumeric.
//   - WithStrictUnits rejects unknown unit tags instead of passing values
//     through as already-SI.
//
// ⚙️ Usage:
//
//	rec, err := driver.ParseJSON(data)
//	d, err := driver.New(rec)
//	fmt.Println(d.Qts(), d.Vas())
//
//	// or, with role validation against general_info.speaker_type:
//	d, err := driver.Create(driver.Woofer, data)
//
// A *Driver is immutable after construction and may be shared freely
// between roles, setups and goroutines.
package driver
