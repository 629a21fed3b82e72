package core

import "errors"

// Error kinds shared by all correction algorithms. Callers match them with
// errors.Is; wrapping functions add index and parameter context.
var (
	// ErrInvalidFormula reports an unparseable formula, or a stated absorber
	// element that is absent from the parsed composition.
	ErrInvalidFormula = errors.New("xas: invalid formula")

	// ErrNoEmissionLines reports an absorber/edge combination with zero
	// positive-intensity emission lines.
	ErrNoEmissionLines = errors.New("xas: no emission lines")

	// ErrInsufficientData reports a violated numeric precondition: an empty
	// energy grid, a non-finite or non-positive density, thickness, angle, or
	// chi, a per-point denominator below its stability floor, or a
	// root-finding failure.
	ErrInsufficientData = errors.New("xas: insufficient data")
)
