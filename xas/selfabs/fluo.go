package selfabs

import (
	"math"

	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/sample"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// fluoReferenceOffsetEV places the reference cross-section evaluation 50 eV
// above the edge, safely past the threshold region.
const fluoReferenceOffsetEV = 50.0

// FluoParams holds the precomputed Fluo correction parameters for one sample
// and energy grid.
type FluoParams struct {
	// Beta is μ_total(E_fluor) / μ_absorber(E⁺).
	Beta float64

	// GammaPrime is μ_background(E⁺) / μ_absorber(E⁺).
	GammaPrime float64

	// Ratio is the geometry ratio g = sin(incident) / sin(exit).
	Ratio float64

	// MuBackgroundNorm is μ_background(E) / μ_absorber(E⁺) at each grid
	// energy.
	MuBackgroundNorm []float64

	// EdgeEnergy is the absorption edge threshold (eV).
	EdgeEnergy float64

	// FluorescenceEnergy is the most intense emission line energy (eV).
	FluorescenceEnergy float64
}

// Fluo computes the Haskel/Ravel/Stern correction parameters for normalized
// μ(E) data. This is the only algorithm operating in μ(E) space, so it also
// applies to the near-edge region.
func Fluo(tbl xraydb.Table, parser xraydb.FormulaParser, formula, absorber, edge string, energies []float64, opts ...core.GeometryOption) (*FluoParams, error) {
	geo := core.ApplyGeometryOptions(opts...)
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	profile, err := sample.NewProfile(tbl, parser, formula, absorber, edge)
	if err != nil {
		return nil, err
	}

	ePlus := profile.EdgeEnergy + fluoReferenceOffsetEV

	muAbs, err := tbl.MassAttenuation(profile.AbsorberSymbol, []float64{ePlus}, xraydb.PhotoelectricAbsorption)
	if err != nil {
		return nil, err
	}

	muAPlus := profile.AbsorberCount * muAbs[0]

	muF, err := sample.WeightedTotalAt(tbl, profile.Composition, profile.FluorEnergy)
	if err != nil {
		return nil, err
	}

	muBPlus, err := sample.WeightedBackground(tbl, profile, []float64{ePlus})
	if err != nil {
		return nil, err
	}

	background, err := sample.WeightedBackground(tbl, profile, energies)
	if err != nil {
		return nil, err
	}

	norm := make([]float64, len(background))
	for i, b := range background {
		norm[i] = b / muAPlus
	}

	return &FluoParams{
		Beta:               muF / muAPlus,
		GammaPrime:         muBPlus[0] / muAPlus,
		Ratio:              geo.Ratio(),
		MuBackgroundNorm:   norm,
		EdgeEnergy:         profile.EdgeEnergy,
		FluorescenceEnergy: profile.FluorEnergy,
	}, nil
}

// CorrectMu applies the Fluo correction to normalized μ(E) data:
//
//	μ_corrected(E) = μ_norm(E) × (β·g + bg_norm(E)) / (β·g + γ′ + 1 − μ_norm(E))
//
// A point whose denominator magnitude falls below 1e-30 is passed through
// unchanged; the correction is undefined there, not wrong.
func (p *FluoParams) CorrectMu(muNorm []float64) []float64 {
	betaG := p.Beta * p.Ratio
	denomConst := betaG + p.GammaPrime + 1

	out := make([]float64, len(muNorm))

	for i, mu := range muNorm {
		bg := p.GammaPrime
		if i < len(p.MuBackgroundNorm) {
			bg = p.MuBackgroundNorm[i]
		}

		denom := denomConst - mu
		if math.Abs(denom) < 1e-30 {
			out[i] = mu
			continue
		}

		out[i] = mu * (betaG + bg) / denom
	}

	return out
}
