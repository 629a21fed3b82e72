package selfabs

import (
	"math"

	"github.com/cwbudde/algo-xas/internal/leastsq"
	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/sample"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// AtomsResult holds the amplitude and variance corrections extracted from
// tabulated cross sections.
type AtomsResult struct {
	// Energies is the input energy grid (eV).
	Energies []float64

	// K is the wavenumber grid (Å⁻¹); 0 at and below the edge.
	K []float64

	// Correction is the self-absorption ratio σ(E) at each point.
	Correction []float64

	// Amplitude is the self-absorption amplitude factor e^intercept.
	Amplitude float64

	// SigmaSqSelf is the self-absorption σ² (Å²).
	SigmaSqSelf float64

	// SigmaSqNorm is the normalization (McMaster) σ² (Å²).
	SigmaSqNorm float64

	// SigmaSqI0 is the I₀ fill-gas σ² (Å²), assuming pure N₂.
	SigmaSqI0 float64

	// SigmaSqNet is the sum of the three σ² contributions (Å²).
	SigmaSqNet float64

	// EdgeEnergy is the absorption edge threshold (eV).
	EdgeEnergy float64

	// FluorescenceEnergy is the most intense emission line energy (eV).
	FluorescenceEnergy float64
}

// Atoms computes the Ravel amplitude + σ² correction. The self-absorption
// ratio
//
//	σ(E) = (μ_f + μ_total(E)) / (μ_f + μ_background(E))
//
// is fitted as ln(σ) against k, giving amplitude = e^intercept and
// σ²_self = −slope/2. Two further log-linear fits (the absorber's own
// post-edge attenuation, and an assumed pure-N₂ fill gas) contribute
// σ²_norm and σ²_i0. No geometry enters this algorithm.
func Atoms(tbl xraydb.Table, parser xraydb.FormulaParser, formula, absorber, edge string, energies []float64) (*AtomsResult, error) {
	profile, err := sample.NewProfile(tbl, parser, formula, absorber, edge)
	if err != nil {
		return nil, err
	}

	muF, err := sample.WeightedTotalAt(tbl, profile.Composition, profile.FluorEnergy)
	if err != nil {
		return nil, err
	}

	muBg, err := sample.WeightedBackground(tbl, profile, energies)
	if err != nil {
		return nil, err
	}

	// Full absorber attenuation; the Atoms ratio keeps the smooth pre-edge
	// part, so no subtraction here.
	muAbs, err := sample.WeightedAbsorber(tbl, profile, energies, false)
	if err != nil {
		return nil, err
	}

	k := core.EnergiesToK(energies, profile.EdgeEnergy)

	correction := make([]float64, len(energies))

	for i := range energies {
		denom := muF + muBg[i]

		sigma := 1.0
		if denom > 0 {
			sigma = (muF + muAbs[i] + muBg[i]) / denom
		}

		correction[i] = sigma
	}

	interceptSelf, slopeSelf := leastsq.LogLinear(k, correction)
	amplitude := math.Exp(interceptSelf)
	sigmaSqSelf := -slopeSelf / 2

	// McMaster normalization: absorber cross section above the edge only.
	absAbove := postEdgeOnly(muAbs, k)
	_, slopeNorm := leastsq.LogLinear(k, absAbove)
	sigmaSqNorm := -slopeNorm / 2

	// I₀ chamber fill gas, assumed 100% N₂.
	muN, err := tbl.MassAttenuation("N", energies, xraydb.PhotoelectricAbsorption)
	if err != nil {
		return nil, err
	}

	muN2 := make([]float64, len(muN))
	for i, m := range muN {
		muN2[i] = 2 * m
	}

	n2Above := postEdgeOnly(muN2, k)
	_, slopeI0 := leastsq.LogLinear(k, n2Above)
	sigmaSqI0 := -slopeI0 / 2

	return &AtomsResult{
		Energies:           append([]float64(nil), energies...),
		K:                  k,
		Correction:         correction,
		Amplitude:          amplitude,
		SigmaSqSelf:        sigmaSqSelf,
		SigmaSqNorm:        sigmaSqNorm,
		SigmaSqI0:          sigmaSqI0,
		SigmaSqNet:         sigmaSqSelf + sigmaSqNorm + sigmaSqI0,
		EdgeEnergy:         profile.EdgeEnergy,
		FluorescenceEnergy: profile.FluorEnergy,
	}, nil
}

// CorrectChi applies the extracted correction to measured χ(k):
//
//	χ_corrected(k) = amplitude × χ(k) × exp(σ²_net × k²)
func (r *AtomsResult) CorrectChi(chi []float64) []float64 {
	out := make([]float64, len(chi))

	for i, c := range chi {
		var ki float64
		if i < len(r.K) {
			ki = r.K[i]
		}

		out[i] = r.Amplitude * c * math.Exp(r.SigmaSqNet*ki*ki)
	}

	return out
}

// postEdgeOnly zeroes values at k = 0 so the log-linear fit sees only
// post-edge points.
func postEdgeOnly(values, k []float64) []float64 {
	out := make([]float64, len(values))

	for i, v := range values {
		if k[i] > 0 {
			out[i] = v
		}
	}

	return out
}
