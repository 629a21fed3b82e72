// Package core provides the shared physical-quantity primitives used by the
// self-absorption correction packages: measurement geometry with functional
// options, the energy-to-wavenumber conversion, numerically stable
// exponential helpers, and the common error kinds.
//
// All correction algorithms accept raw []float64 energy grids; core holds
// only the small pieces every algorithm needs and nothing sample-specific.
package core
