package sample

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// ElementFraction is one element's share of the total sample mass.
type ElementFraction struct {
	Symbol   string
	Fraction float64
}

// symbols returns the composition's element symbols in sorted order.
// Aggregation loops iterate this slice, not the map, for determinism.
func symbols(comp xraydb.Composition) []string {
	syms := make([]string, 0, len(comp))
	for sym := range comp {
		syms = append(syms, sym)
	}

	sort.Strings(syms)

	return syms
}

// validateComposition checks the parser invariant: all counts finite and
// positive.
func validateComposition(comp xraydb.Composition) error {
	if len(comp) == 0 {
		return fmt.Errorf("%w: empty composition", core.ErrInvalidFormula)
	}

	for _, sym := range symbols(comp) {
		count := comp[sym]
		if !core.IsFinite(count) || count <= 0 {
			return fmt.Errorf("%w: element %s has non-positive count %g", core.ErrInvalidFormula, sym, count)
		}
	}

	return nil
}

// MassFractions converts stoichiometric counts to mass fractions
// (count × molar mass) / Σ(count × molar mass), ordered by element symbol.
// The fractions sum to 1 within floating tolerance.
func MassFractions(tbl xraydb.Table, comp xraydb.Composition) ([]ElementFraction, error) {
	syms := symbols(comp)

	masses := make([]float64, len(syms))
	for i, sym := range syms {
		mm, err := tbl.MolarMass(sym)
		if err != nil {
			return nil, err
		}

		masses[i] = comp[sym] * mm
	}

	total := floats.Sum(masses)
	if total <= 0 || !core.IsFinite(total) {
		return nil, fmt.Errorf("%w: formula produced non-positive total mass", core.ErrInsufficientData)
	}

	fractions := make([]ElementFraction, len(syms))
	for i, sym := range syms {
		fractions[i] = ElementFraction{Symbol: sym, Fraction: masses[i] / total}
	}

	return fractions, nil
}

// FractionOf returns the mass fraction of one element, or an error when the
// element is absent.
func FractionOf(fractions []ElementFraction, symbol string) (float64, error) {
	for _, f := range fractions {
		if f.Symbol == symbol {
			return f.Fraction, nil
		}
	}

	return 0, fmt.Errorf("%w: absorber %s not found in mass fractions", core.ErrInsufficientData, symbol)
}
