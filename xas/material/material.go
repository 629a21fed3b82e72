// Package material provides a built-in table of common sample, window, and
// fill-gas materials (name, chemical formula, nominal density) and compound
// attenuation curves for arbitrary formulas over any cross-section kind.
package material

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/sample"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// Material is one named entry of the built-in table.
type Material struct {
	Name    string
	Formula string

	// Density is the nominal density in g/cm³.
	Density float64
}

// Find looks up a material by name, case-insensitively.
func Find(name string) (Material, bool) {
	key := strings.ToLower(name)
	for _, m := range materials {
		if m.Name == key {
			return m, true
		}
	}

	return Material{}, false
}

// All returns the built-in materials sorted by name.
func All() []Material {
	out := append([]Material(nil), materials...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Mu returns the linear attenuation coefficient (cm⁻¹) of a compound at each
// grid energy: density × Σ(mass fraction × μ/ρ(E)) over the parsed formula,
// for the requested cross-section kind.
func Mu(tbl xraydb.Table, parser xraydb.FormulaParser, formula string, density float64, energies []float64, kind xraydb.CrossSectionKind) ([]float64, error) {
	if len(energies) == 0 {
		return nil, fmt.Errorf("%w: energy grid must not be empty", core.ErrInsufficientData)
	}

	if !core.IsFinite(density) || density <= 0 {
		return nil, fmt.Errorf("%w: density must be finite and > 0: %g", core.ErrInsufficientData, density)
	}

	comp, err := parser.ParseFormula(formula)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", core.ErrInvalidFormula, formula, err)
	}

	fractions, err := sample.MassFractions(tbl, comp)
	if err != nil {
		return nil, err
	}

	mass := make([]float64, len(energies))
	scaled := make([]float64, len(energies))

	for _, f := range fractions {
		mu, err := tbl.MassAttenuation(f.Symbol, energies, kind)
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

// MuAt is Mu at a single energy.
func MuAt(tbl xraydb.Table, parser xraydb.FormulaParser, formula string, density, energy float64, kind xraydb.CrossSectionKind) (float64, error) {
	mu, err := Mu(tbl, parser, formula, density, []float64{energy}, kind)
	if err != nil {
		return 0, err
	}

	return mu[0], nil
}

// MuNamed is Mu for a built-in material. A density of 0 selects the
// material's nominal density.
func MuNamed(tbl xraydb.Table, parser xraydb.FormulaParser, name string, density float64, energies []float64, kind xraydb.CrossSectionKind) ([]float64, error) {
	m, ok := Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown material %q", core.ErrInsufficientData, name)
	}

	if density == 0 {
		density = m.Density
	}

	return Mu(tbl, parser, m.Formula, density, energies, kind)
}
