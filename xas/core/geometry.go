package core

import (
	"fmt"
	"math"
)

// Geometry describes the fluorescence measurement geometry: the incident
// beam angle and the fluorescence exit angle, both measured from the sample
// surface in radians and required to lie in (0, π).
type Geometry struct {
	Incident float64
	Exit     float64
}

// DefaultGeometry returns the conventional 45° incident / 45° exit geometry
// (ratio 1).
func DefaultGeometry() Geometry {
	return Geometry{
		Incident: math.Pi / 4,
		Exit:     math.Pi / 4,
	}
}

// Ratio returns g = sin(incident) / sin(exit).
func (g Geometry) Ratio() float64 {
	return math.Sin(g.Incident) / math.Sin(g.Exit)
}

// SinIncident returns sin(incident), the divisor for effective path lengths.
func (g Geometry) SinIncident() float64 {
	return math.Sin(g.Incident)
}

// Validate reports ErrInsufficientData unless both angles are finite with a
// positive sine.
func (g Geometry) Validate() error {
	if !IsFinite(g.Incident) || !IsFinite(g.Exit) {
		return fmt.Errorf("%w: angles must be finite", ErrInsufficientData)
	}

	if math.Sin(g.Incident) <= 0 || math.Sin(g.Exit) <= 0 {
		return fmt.Errorf("%w: angles must be in (0, pi) with positive sine", ErrInsufficientData)
	}

	return nil
}

// GeometryOption mutates a Geometry.
type GeometryOption func(*Geometry)

// WithAngles sets the incident and exit angles in radians.
func WithAngles(incident, exit float64) GeometryOption {
	return func(g *Geometry) {
		g.Incident = incident
		g.Exit = exit
	}
}

// WithAnglesDeg sets the incident and exit angles in degrees.
func WithAnglesDeg(incident, exit float64) GeometryOption {
	return func(g *Geometry) {
		g.Incident = incident * math.Pi / 180
		g.Exit = exit * math.Pi / 180
	}
}

// ApplyGeometryOptions applies zero or more options to the default 45°/45°
// geometry. With no options the result is exactly DefaultGeometry.
func ApplyGeometryOptions(opts ...GeometryOption) Geometry {
	geo := DefaultGeometry()
	for _, opt := range opts {
		if opt != nil {
			opt(&geo)
		}
	}

	return geo
}
