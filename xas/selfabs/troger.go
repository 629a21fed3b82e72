package selfabs

import (
	"math"

	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/sample"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// TrogerResult holds the Tröger thick-sample correction curves.
type TrogerResult struct {
	// Energies is the input energy grid (eV).
	Energies []float64

	// K is the wavenumber grid (Å⁻¹); 0 at and below the edge.
	K []float64

	// S is s(E) = μ̄_absorber(E) / α(E) at each point.
	S []float64

	// CorrectionFactor is 1/(1 − s(E)); multiply measured χ(k) by it.
	CorrectionFactor []float64

	// EdgeEnergy is the absorption edge threshold (eV).
	EdgeEnergy float64

	// FluorescenceEnergy is the most intense emission line energy (eV).
	FluorescenceEnergy float64
}

// Troger computes the thick-sample χ(k) correction
//
//	α(E) = μ_total(E) + g·μ_f
//	s(E) = μ̄_absorber(E) / α(E)
//	χ_corrected = χ_measured / (1 − s(E))
//
// with the absorber attenuation pre-edge subtracted. Points where |1 − s|
// drops below 1e-10 get a factor of exactly 1 instead of a division blow-up.
// There is no thin-sample branch; use Booth for thin samples.
func Troger(tbl xraydb.Table, parser xraydb.FormulaParser, formula, absorber, edge string, energies []float64, opts ...core.GeometryOption) (*TrogerResult, error) {
	geo := core.ApplyGeometryOptions(opts...)
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	profile, err := sample.NewProfile(tbl, parser, formula, absorber, edge)
	if err != nil {
		return nil, err
	}

	muT, err := sample.WeightedTotal(tbl, profile.Composition, energies)
	if err != nil {
		return nil, err
	}

	muA, err := sample.WeightedAbsorber(tbl, profile, energies, true)
	if err != nil {
		return nil, err
	}

	muF, err := sample.WeightedTotalAt(tbl, profile.Composition, profile.FluorEnergy)
	if err != nil {
		return nil, err
	}

	ratio := geo.Ratio()

	s := make([]float64, len(energies))
	factor := make([]float64, len(energies))

	for i := range energies {
		alpha := muT[i] + ratio*muF

		var si float64
		if alpha > 0 {
			si = muA[i] / alpha
		}

		cf := 1.0
		if math.Abs(1-si) > 1e-10 {
			cf = 1 / (1 - si)
		}

		s[i] = si
		factor[i] = cf
	}

	return &TrogerResult{
		Energies:           append([]float64(nil), energies...),
		K:                  core.EnergiesToK(energies, profile.EdgeEnergy),
		S:                  s,
		CorrectionFactor:   factor,
		EdgeEnergy:         profile.EdgeEnergy,
		FluorescenceEnergy: profile.FluorEnergy,
	}, nil
}
