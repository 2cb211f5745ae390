// Package sival is a loudspeaker simulation toolkit: it completes driver
// data sheets and predicts how a driver behaves in an enclosure.
//
// 🚀 What is sival?
//
//	A small set of packages that take a partially specified manufacturer
//	record, turn it into a consistent SI parameter set, and evaluate
//	closed-form electro-mechanical-acoustic models over frequency:
//		• Unit normalisation: metric and imperial lengths, masses, areas, volumes
//		• Driver derivation: Qes, Qts, Cms, Kms, Vas, Vd, sensitivity
//		• Enclosures: sealed and vented boxes with loss factor Ql
//		• Responses: sealed-box impedance and SPL, parallel frequency sweeps
//		• Curve comparison: dynamic time warping between responses
//		• Setups: driver roles, enclosure and responses with snapshots
//
// ✨ Why sival?
//
//   - Deterministic: same record and constants, same numbers
//   - Read-only models: drivers and enclosures are safe to share
//   - Pluggable data: records resolve from files, Redis or PostgreSQL
//
// Packages:
//
//	units/        unit tag tables and converters
//	environment/  speed of sound, air density, driver resolver
//	driver/       record decoding, derivation, role factories
//	enclosure/    sealed and vented box models
//	response/     impedance and SPL engines, grids, Sweep
//	compare/      DTW distance between curves
//	resolver/     file, directory, memory, Redis, PostgreSQL stores
//	setup/        roles, responses, JSON/CBOR snapshots
//	config/       YAML configuration for the command
//	cmd/sival/    command-line front end
//
// Signal flow:
//
//	identifier ─▶ Resolver ─▶ bytes ─▶ driver.Create ─▶ *Driver
//	                                                   │
//	enclosure.New ─▶ Enclosure ─────────────┐          │
//	                                        ▼          ▼
//	                          response.NewSealedImpedance ─▶ Evaluate(f)
//
//	go install github.com/katalvlaran/sival/cmd/sival@latest
package sival
