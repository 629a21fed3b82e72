package selfabs

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/sample"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// BoothSuppressionResult is the Booth reference suppression-ratio curve with
// its summary statistics.
type BoothSuppressionResult struct {
	// Energies is the input energy grid (eV).
	Energies []float64

	// SuppressionRatio is R(E, χ) = χ_measured / χ_true at each point.
	SuppressionRatio []float64

	// RMin, RMax, and RMean summarize the curve.
	RMin  float64
	RMax  float64
	RMean float64

	// IsThick reports which Booth branch produced the curve.
	IsThick bool

	// EdgeEnergy is the absorption edge threshold (eV).
	EdgeEnergy float64

	// FluorescenceEnergyWeighted is the intensity-weighted mean emission
	// line energy (eV).
	FluorescenceEnergyWeighted float64
}

// BoothSuppressionReference computes the Booth suppression ratio over
// absolute linear-unit attenuation: the compound attenuation in cm⁻¹, the
// absorber edge jump isolated with the pre-edge trendline baseline, and the
// fluorescence attenuation intensity-weighted over all emission lines. This
// is the reference curve to compare against the exact Ameyanagi evaluation.
func BoothSuppressionReference(tbl xraydb.Table, parser xraydb.FormulaParser, formula, absorber, edge string, energies []float64, thicknessUM, density, chiTrue float64, opts ...core.GeometryOption) (*BoothSuppressionResult, error) {
	geo := core.ApplyGeometryOptions(opts...)
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	if !core.IsFinite(density) || density <= 0 {
		return nil, fmt.Errorf("%w: density must be finite and > 0: %g", core.ErrInsufficientData, density)
	}

	if !core.IsFinite(thicknessUM) || thicknessUM <= 0 {
		return nil, fmt.Errorf("%w: thickness must be finite and > 0: %g µm", core.ErrInsufficientData, thicknessUM)
	}

	if !core.IsFinite(chiTrue) || chiTrue == 0 {
		return nil, fmt.Errorf("%w: chi must be finite and non-zero", core.ErrInsufficientData)
	}

	profile, err := sample.NewProfile(tbl, parser, formula, absorber, edge)
	if err != nil {
		return nil, err
	}

	fractions, err := sample.MassFractions(tbl, profile.Composition)
	if err != nil {
		return nil, err
	}

	muT, err := sample.CompoundLinear(tbl, fractions, density, energies)
	if err != nil {
		return nil, err
	}

	muA, err := sample.AbsorberEdgeLinearTrendline(tbl, profile, energies, density)
	if err != nil {
		return nil, err
	}

	muF, fluorEnergy, err := sample.WeightedFluorescence(tbl, fractions, density, absorber, edge)
	if err != nil {
		return nil, err
	}

	ratio := geo.Ratio()

	s := make([]float64, len(energies))
	alpha := make([]float64, len(energies))

	for i := range energies {
		alphaLinear := muT[i] + ratio*muF

		var si float64
		if alphaLinear > 0 {
			si = muA[i] / alphaLinear
		}

		// The thin correction rebuilds linear units as alpha × density.
		alpha[i] = alphaLinear / density
		s[i] = si
	}

	sinIncident := geo.SinIncident()

	base := &BoothResult{
		Energies:           append([]float64(nil), energies...),
		K:                  core.EnergiesToK(energies, profile.EdgeEnergy),
		IsThick:            thicknessUM/sinIncident >= ThickLimitUM,
		S:                  s,
		Alpha:              alpha,
		SinIncident:        sinIncident,
		EdgeEnergy:         profile.EdgeEnergy,
		FluorescenceEnergy: fluorEnergy,
	}

	r, err := base.SuppressionRatio(chiTrue, density, thicknessUM)
	if err != nil {
		return nil, err
	}

	return &BoothSuppressionResult{
		Energies:                   base.Energies,
		SuppressionRatio:           r,
		RMin:                       floats.Min(r),
		RMax:                       floats.Max(r),
		RMean:                      floats.Sum(r) / float64(len(r)),
		IsThick:                    base.IsThick,
		EdgeEnergy:                 base.EdgeEnergy,
		FluorescenceEnergyWeighted: base.FluorescenceEnergy,
	}, nil
}
