package selfabs

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/sample"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// denomFloor is the magnitude floor for the exact-formula denominators; a
// smaller value means the expression has lost all significance.
const denomFloor = 1e-300

// Thickness resolves a sample thickness in cm given the sample density.
// The two implementations are ThicknessCM and PelletMassDiameter.
type Thickness interface {
	resolveCM(density float64) (float64, error)
}

// ThicknessCM is a directly specified thickness in cm.
type ThicknessCM float64

func (t ThicknessCM) resolveCM(_ float64) (float64, error) {
	return checkThickness(float64(t))
}

// PelletMassDiameter derives the thickness of a pressed pellet from its mass
// and diameter: d = m / (ρ·π·(D/2)²).
type PelletMassDiameter struct {
	MassG      float64
	DiameterCM float64
}

func (p PelletMassDiameter) resolveCM(density float64) (float64, error) {
	if !core.IsFinite(p.MassG) || p.MassG <= 0 {
		return 0, fmt.Errorf("%w: pellet mass must be finite and > 0: %g g", core.ErrInsufficientData, p.MassG)
	}

	if !core.IsFinite(p.DiameterCM) || p.DiameterCM <= 0 {
		return 0, fmt.Errorf("%w: pellet diameter must be finite and > 0: %g cm", core.ErrInsufficientData, p.DiameterCM)
	}

	area := math.Pi * (p.DiameterCM * 0.5) * (p.DiameterCM * 0.5)

	return checkThickness(p.MassG / (density * area))
}

func checkThickness(d float64) (float64, error) {
	if !core.IsFinite(d) || d <= 0 {
		return 0, fmt.Errorf("%w: resolved thickness must be finite and > 0: %g cm", core.ErrInsufficientData, d)
	}

	return d, nil
}

// AmeyanagiSettings parameterizes the exact suppression evaluation.
type AmeyanagiSettings struct {
	// Density is the effective sample density in g/cm³.
	Density float64

	// Thickness resolves the sample thickness; see ThicknessCM and
	// PelletMassDiameter.
	Thickness Thickness

	// Chi is the assumed finite true amplitude; zero or non-finite values
	// are rejected.
	Chi float64
}

// AmeyanagiResult is the exact suppression-ratio curve with its summary
// statistics and the derived geometric quantities.
type AmeyanagiResult struct {
	// Energies is the input energy grid (eV).
	Energies []float64

	// SuppressionRatio is the exact R(E, χ) = χ_measured / χ at each point.
	SuppressionRatio []float64

	// RMin, RMax, and RMean summarize the curve.
	RMin  float64
	RMax  float64
	RMean float64

	// MuF is the intensity-weighted fluorescence attenuation (cm⁻¹).
	MuF float64

	// ThicknessCM is the resolved sample thickness (cm).
	ThicknessCM float64

	// GeometryG is g = sin(incident)/sin(exit).
	GeometryG float64

	// Beta is thickness/sin(incident) (cm).
	Beta float64

	// EdgeEnergy is the absorption edge threshold (eV).
	EdgeEnergy float64

	// FluorescenceEnergyWeighted is the intensity-weighted mean emission
	// line energy (eV).
	FluorescenceEnergyWeighted float64
}

// Ameyanagi evaluates the exact self-absorption suppression ratio
//
//	R(E, χ) = (F(E, χ) − 1) / χ
//	F(E, χ) = [(1 − e^(−A·β)) / (1 − e^(−α·β))] · [α·(1+χ) / A]
//	A(E, χ) = α(E) + μ_absorber(E)·χ
//	α(E)    = μ_total(E) + g·μ_f
//	β       = thickness / sin(incident)
//
// over absolute linear-unit attenuation, with no series expansion and no
// inversion. The exponentials go through core.OneMinusExpNeg so small and
// large optical depths alike evaluate without cancellation or overflow. Any
// denominator with magnitude below 1e-300, and any non-finite R, aborts the
// call with core.ErrInsufficientData naming the grid index.
func Ameyanagi(tbl xraydb.Table, parser xraydb.FormulaParser, formula, absorber, edge string, energies []float64, settings AmeyanagiSettings, opts ...core.GeometryOption) (*AmeyanagiResult, error) {
	if len(energies) == 0 {
		return nil, fmt.Errorf("%w: energy grid must not be empty", core.ErrInsufficientData)
	}

	if settings.Chi == 0 || !core.IsFinite(settings.Chi) {
		return nil, fmt.Errorf("%w: chi must be finite and non-zero", core.ErrInsufficientData)
	}

	if !core.IsFinite(settings.Density) || settings.Density <= 0 {
		return nil, fmt.Errorf("%w: density must be finite and > 0: %g", core.ErrInsufficientData, settings.Density)
	}

	if settings.Thickness == nil {
		return nil, fmt.Errorf("%w: thickness must be provided", core.ErrInsufficientData)
	}

	geo := core.ApplyGeometryOptions(opts...)
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	thicknessCM, err := settings.Thickness.resolveCM(settings.Density)
	if err != nil {
		return nil, err
	}

	geometryG := geo.Ratio()
	beta := thicknessCM / geo.SinIncident()

	profile, err := sample.NewProfile(tbl, parser, formula, absorber, edge)
	if err != nil {
		return nil, err
	}

	fractions, err := sample.MassFractions(tbl, profile.Composition)
	if err != nil {
		return nil, err
	}

	wAbsorber, err := sample.FractionOf(fractions, profile.AbsorberSymbol)
	if err != nil {
		return nil, err
	}

	muTotal, err := sample.CompoundLinear(tbl, fractions, settings.Density, energies)
	if err != nil {
		return nil, err
	}

	// Raw absorber linear attenuation; the exact formula keeps the smooth
	// pre-edge part.
	muAbsMass, err := tbl.MassAttenuation(profile.AbsorberSymbol, energies, xraydb.PhotoelectricAbsorption)
	if err != nil {
		return nil, err
	}

	muA := make([]float64, len(muAbsMass))
	vecmath.ScaleBlock(muA, muAbsMass, settings.Density*wAbsorber)

	muF, fluorEnergy, err := sample.WeightedFluorescence(tbl, fractions, settings.Density, absorber, edge)
	if err != nil {
		return nil, err
	}

	chi := settings.Chi
	r := make([]float64, len(energies))

	for i := range energies {
		alpha := muTotal[i] + geometryG*muF
		a := alpha + muA[i]*chi

		numer := core.OneMinusExpNeg(a * beta)
		denom := core.OneMinusExpNeg(alpha * beta)

		if math.Abs(denom) < denomFloor || math.Abs(a) < denomFloor {
			return nil, fmt.Errorf("%w: unstable denominator at index %d", core.ErrInsufficientData, i)
		}

		ri := ((numer/denom)*(alpha*(1+chi)/a) - 1) / chi
		if !core.IsFinite(ri) {
			return nil, fmt.Errorf("%w: non-finite suppression ratio at index %d", core.ErrInsufficientData, i)
		}

		r[i] = ri
	}

	return &AmeyanagiResult{
		Energies:                   append([]float64(nil), energies...),
		SuppressionRatio:           r,
		RMin:                       floats.Min(r),
		RMax:                       floats.Max(r),
		RMean:                      floats.Sum(r) / float64(len(r)),
		MuF:                        muF,
		ThicknessCM:                thicknessCM,
		GeometryG:                  geometryG,
		Beta:                       beta,
		EdgeEnergy:                 profile.EdgeEnergy,
		FluorescenceEnergyWeighted: fluorEnergy,
	}, nil
}
