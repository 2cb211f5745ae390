// Package response evaluates frequency-domain behavior of one driver role
// mounted in an enclosure.
//
// 🚀 What does it do?
//
//	A Response binds a *driver.Driver, an enclosure.Enclosure and a driver
//	count N, and maps a frequency in Hz to a scalar:
//
//	  SealedImpedance → |Z(f)| in Ω, the electrical input impedance seen
//	                    by the amplifier (N drivers wired in parallel)
//	  SealedSPL       → sound pressure level in dB SPL (2.83 V / 1 m)
//
// 🔬 Sealed impedance model (ω = 2πf):
//
//	Z_el  = Re + jωLe
//	Z_md  = Rms + j(ωMms − 1/(ωCms))
//	Cab   = Vb / (ρ₀c²)            Vb: box share per driver in m³
//	Cmb   = Cab / Sd²
//	Z_mb  = Rmb + 1/(jωCmb)        Rmb = 1/(ωc·Cmb·Ql)
//	Z     = Z_el + Bl² / (Z_md + Z_mb)
//
//	ρ₀ and c are read from the Medium on every evaluation, so resetting
//	them on a shared *environment.Environment takes effect immediately.
//
// ✨ Grids and sweeps:
//   - LogSpace / LinSpace build frequency grids.
//   - Sweep evaluates a grid in parallel (bounded by WithWorkers) and keeps
//     the input order.
//
// ⚙️ Usage:
//
//	z := response.NewSealedImpedance(drv, box, response.WithCount(2))
//	mag, err := z.Evaluate(100)
//
//	grid, _ := response.LogSpace(10, 1000, 64)
//	pts, err := response.Sweep(ctx, z, grid)
package response
