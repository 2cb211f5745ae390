// Package setup binds driver roles, one enclosure and computed responses
// into a single acoustic design.
//
// 🚀 What does it do?
//
//	A Setup owns:
//	  - one enclosure (chosen by type at construction),
//	  - at most one driver per role (SubWoofer, Woofer, …) with a count,
//	  - at most one response per kind (Spl, Impedance).
//
//	Drivers enter through AddDriver / SetDriver, which resolve the
//	identifier through the Environment, decode the record, and check its
//	speaker_type against the role. Responses are built with NewResponse,
//	which picks the variant matching the enclosure type.
//
// ✨ Snapshots:
//   - Snapshot, MarshalJSON and MarshalCBOR record identifiers rather than
//     driver data, so Restore re-resolves through the Environment.
//   - CBOR uses integer keys and canonical ordering.
//
// ⚙️ Usage:
//
//	s, err := setup.New(env, enclosure.Sealed, setup.WithName("sub 20L"))
//	ok, err := s.AddDriver(ctx, driver.SubWoofer, "drivers/aw-200.json", 1)
//	z, err := s.NewResponse(response.Impedance, driver.SubWoofer)
//	s.AddResponse(z)
//
// A Setup is owned by one goroutine at a time.
package setup
