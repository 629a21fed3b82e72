// Package xraydb declares the external interfaces the correction algorithms
// consume: a cross-section Table (mass attenuation coefficients, absorption
// edges, emission lines, molar masses, element resolution) and a
// FormulaParser that turns a chemical formula into a stoichiometric
// composition.
//
// The package ships no tabulated data of its own. Callers inject a concrete
// Table into every computation; nothing in this module reaches a global
// database, so computations stay pure, parallel-safe, and testable against
// synthetic tables.
//
// The sorting helpers reproduce the externally observable listing contract:
// edges ordered by descending energy, emission lines by descending intensity,
// with exact ties keeping their input order.
package xraydb
