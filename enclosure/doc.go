// Package enclosure models loudspeaker cabinets.
//
// Every variant satisfies the Enclosure interface: a type tag, a net
// internal volume in litres that can be changed through SetVolume, the
// enclosure loss quality factor Ql, and a serializable Record.
//
// Variants:
//   - Sealed: closed box; Ql defaults to DefaultSealedQL.
//   - Vented: bass-reflex box; adds tuning frequency and port geometry,
//     Ql defaults to DefaultVentedQL.
//
// The factory functions New, FromRecord and Parse dispatch on the type tag.
// An enclosure never references a driver.
package enclosure
