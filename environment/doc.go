// Package environment holds the ambient physical context of a simulation
// session: the speed of sound, the density of air, and the capability used
// to turn a driver identifier into raw record bytes.
//
// Defaults follow dry air at 20 °C at sea level:
//
//	DefaultSpeedOfSound = 343.0  m/s
//	DefaultDensityOfAir = 1.204  kg/m³
//
// Each constant can be overridden and reset to its default independently.
// An Environment implements the Medium interface consumed by the response
// package, so changes become visible to subsequent evaluations.
//
// Resolver is the seam to storage. The resolver package ships file,
// in-memory, Redis and PostgreSQL implementations and a chain that tries
// an identifier as a path first and as a logical key (e.g. a UUID) second.
package environment
