package sample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-xas/internal/leastsq"
	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// Pre-edge window and subtraction offset, relative to the edge energy in eV.
// Hard-coded to match the reference algorithms; for elements whose edges sit
// closer together than 200 eV this window can overlap an adjacent edge.
const (
	preEdgeStartRelEV    = -200.0
	preEdgeEndRelEV      = -30.0
	preEdgeFallbackRelEV = -200.0
)

// WeightedTotal sums count × μ/ρ(E) over all elements of the composition at
// each grid energy, in cm²/g-equivalent units.
func WeightedTotal(tbl xraydb.Table, comp xraydb.Composition, energies []float64) ([]float64, error) {
	if err := requireGrid(energies); err != nil {
		return nil, err
	}

	total := make([]float64, len(energies))
	scaled := make([]float64, len(energies))

	for _, sym := range symbols(comp) {
		mu, err := tbl.MassAttenuation(sym, energies, xraydb.PhotoelectricAbsorption)
		if err != nil {
			return nil, err
		}

		vecmath.ScaleBlock(scaled, mu, comp[sym])
		vecmath.AddBlockInPlace(total, scaled)
	}

	return total, nil
}

// WeightedTotalAt is WeightedTotal at a single energy.
func WeightedTotalAt(tbl xraydb.Table, comp xraydb.Composition, energy float64) (float64, error) {
	var total float64

	for _, sym := range symbols(comp) {
		mu, err := tbl.MassAttenuation(sym, []float64{energy}, xraydb.PhotoelectricAbsorption)
		if err != nil {
			return 0, err
		}

		total += comp[sym] * mu[0]
	}

	return total, nil
}

// WeightedAbsorber returns the absorber's own attenuation scaled by its
// stoichiometric count. With subtractPreEdge set, the attenuation at
// (edge − 200 eV) is subtracted first and the difference clamped to ≥ 0,
// leaving only the edge-jump contribution.
func WeightedAbsorber(tbl xraydb.Table, p *Profile, energies []float64, subtractPreEdge bool) ([]float64, error) {
	if err := requireGrid(energies); err != nil {
		return nil, err
	}

	mu, err := tbl.MassAttenuation(p.AbsorberSymbol, energies, xraydb.PhotoelectricAbsorption)
	if err != nil {
		return nil, err
	}

	var preEdge float64

	if subtractPreEdge {
		below, err := tbl.MassAttenuation(p.AbsorberSymbol, []float64{p.EdgeEnergy - 200}, xraydb.PhotoelectricAbsorption)
		if err != nil {
			return nil, err
		}

		preEdge = below[0]
	}

	out := make([]float64, len(mu))
	for i, m := range mu {
		out[i] = p.AbsorberCount * math.Max(m-preEdge, 0)
	}

	return out, nil
}

// WeightedBackground sums count × μ/ρ(E) over all non-absorber elements.
func WeightedBackground(tbl xraydb.Table, p *Profile, energies []float64) ([]float64, error) {
	if err := requireGrid(energies); err != nil {
		return nil, err
	}

	total := make([]float64, len(energies))
	scaled := make([]float64, len(energies))

	for _, sym := range symbols(p.Composition) {
		z, err := tbl.ResolveElement(sym)
		if err != nil {
			return nil, err
		}

		if z == p.AbsorberZ {
			continue
		}

		mu, err := tbl.MassAttenuation(sym, energies, xraydb.PhotoelectricAbsorption)
		if err != nil {
			return nil, err
		}

		vecmath.ScaleBlock(scaled, mu, p.Composition[sym])
		vecmath.AddBlockInPlace(total, scaled)
	}

	return total, nil
}

// CompoundLinear returns the compound linear attenuation μ(E) in cm⁻¹:
// density × Σ(mass fraction × μ/ρ(E)).
func CompoundLinear(tbl xraydb.Table, fractions []ElementFraction, density float64, energies []float64) ([]float64, error) {
	if err := requireGrid(energies); err != nil {
		return nil, err
	}

	if err := requireDensity(density); err != nil {
		return nil, err
	}

	mass := make([]float64, len(energies))
	scaled := make([]float64, len(energies))

	for _, f := range fractions {
		mu, err := tbl.MassAttenuation(f.Symbol, energies, xraydb.PhotoelectricAbsorption)
		if err != nil {
			return nil, err
		}

		vecmath.ScaleBlock(scaled, mu, f.Fraction)
		vecmath.AddBlockInPlace(mass, scaled)
	}

	out := make([]float64, len(mass))
	vecmath.ScaleBlock(out, mass, density)

	return out, nil
}

// CompoundLinearAt is CompoundLinear at a single energy.
func CompoundLinearAt(tbl xraydb.Table, fractions []ElementFraction, density, energy float64) (float64, error) {
	if err := requireDensity(density); err != nil {
		return 0, err
	}

	var mass float64

	for _, f := range fractions {
		mu, err := tbl.MassAttenuation(f.Symbol, []float64{energy}, xraydb.PhotoelectricAbsorption)
		if err != nil {
			return 0, err
		}

		mass += f.Fraction * mu[0]
	}

	return density * mass, nil
}

// AbsorberEdgeLinearTrendline returns the absorber's edge-jump linear
// attenuation μ̄_a(E) = max(μ_raw(E) − baseline(E), 0) in cm⁻¹, where
// μ_raw(E) = density × w_absorber × μ/ρ_absorber(E) and the baseline is a
// line fitted to μ_raw over the pre-edge window [edge−200, edge−30] eV,
// evaluated at each grid energy and clamped to ≥ 0. When fewer than 2 valid
// pre-edge points exist or the fit is degenerate, a flat baseline at
// μ_raw(edge − 200 eV) is used instead.
func AbsorberEdgeLinearTrendline(tbl xraydb.Table, p *Profile, energies []float64, density float64) ([]float64, error) {
	if err := requireDensity(density); err != nil {
		return nil, err
	}

	if err := requireGrid(energies); err != nil {
		return nil, err
	}

	fractions, err := MassFractions(tbl, p.Composition)
	if err != nil {
		return nil, err
	}

	wAbsorber, err := FractionOf(fractions, p.AbsorberSymbol)
	if err != nil {
		return nil, err
	}

	muMass, err := tbl.MassAttenuation(p.AbsorberSymbol, energies, xraydb.PhotoelectricAbsorption)
	if err != nil {
		return nil, err
	}

	raw := make([]float64, len(muMass))
	vecmath.ScaleBlock(raw, muMass, density*wAbsorber)

	fitMin := p.EdgeEnergy + preEdgeStartRelEV
	fitMax := p.EdgeEnergy + preEdgeEndRelEV

	var fitX, fitY []float64

	for i, e := range energies {
		if e >= fitMin && e <= fitMax && core.IsFinite(e) && core.IsFinite(raw[i]) {
			fitX = append(fitX, e)
			fitY = append(fitY, raw[i])
		}
	}

	baseline := make([]float64, len(energies))

	if intercept, slope, ok := leastsq.Line(fitX, fitY); ok {
		for i, e := range energies {
			b := intercept + slope*e
			if core.IsFinite(b) && b > 0 {
				baseline[i] = b
			}
		}
	} else {
		ePre := p.EdgeEnergy + preEdgeFallbackRelEV

		muPre, err := tbl.MassAttenuation(p.AbsorberSymbol, []float64{ePre}, xraydb.PhotoelectricAbsorption)
		if err != nil {
			return nil, err
		}

		flat := math.Max(density*wAbsorber*muPre[0], 0)
		for i := range baseline {
			baseline[i] = flat
		}
	}

	out := make([]float64, len(raw))
	for i := range raw {
		out[i] = math.Max(raw[i]-baseline[i], 0)
	}

	return out, nil
}

// WeightedFluorescence returns the intensity-weighted compound linear
// attenuation (cm⁻¹) at the absorber's emission lines alongside the
// intensity-weighted mean line energy (eV). It fails with
// core.ErrNoEmissionLines when no line has positive intensity.
func WeightedFluorescence(tbl xraydb.Table, fractions []ElementFraction, density float64, element, edge string) (muF, energy float64, err error) {
	lines, err := tbl.Lines(element, edge)
	if err != nil {
		return 0, 0, err
	}

	var weightedMu, weightedEnergy, weightSum float64

	for _, line := range lines {
		if !core.IsFinite(line.Intensity) || line.Intensity <= 0 {
			continue
		}

		muLine, err := CompoundLinearAt(tbl, fractions, density, line.Energy)
		if err != nil {
			return 0, 0, err
		}

		weightedMu += line.Intensity * muLine
		weightedEnergy += line.Intensity * line.Energy
		weightSum += line.Intensity
	}

	if weightSum <= 0 {
		return 0, 0, fmt.Errorf("%w: %s %s has no positive-intensity lines", core.ErrNoEmissionLines, element, edge)
	}

	return weightedMu / weightSum, weightedEnergy / weightSum, nil
}

func requireGrid(energies []float64) error {
	if len(energies) == 0 {
		return fmt.Errorf("%w: energy grid must not be empty", core.ErrInsufficientData)
	}

	return nil
}

func requireDensity(density float64) error {
	if !core.IsFinite(density) || density <= 0 {
		return fmt.Errorf("%w: density must be finite and > 0: %g", core.ErrInsufficientData, density)
	}

	return nil
}
