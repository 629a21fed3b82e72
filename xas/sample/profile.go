package sample

import (
	"fmt"

	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// Profile is the resolved sample description for one (formula, absorber,
// edge) triple. It is built once per algorithm call and never mutated
// afterwards.
type Profile struct {
	// Composition maps element symbols to stoichiometric counts.
	Composition xraydb.Composition

	// AbsorberSymbol is the canonical symbol of the absorbing element.
	AbsorberSymbol string

	// AbsorberZ is the absorber's atomic number.
	AbsorberZ int

	// AbsorberCount is the absorber's stoichiometric count in the formula.
	AbsorberCount float64

	// EdgeEnergy is the absorption edge threshold in eV.
	EdgeEnergy float64

	// FluorEnergy is the energy (eV) of the most intense emission line at
	// the selected edge. Algorithms needing the intensity-weighted mean over
	// all lines use WeightedFluorescence instead.
	FluorEnergy float64
}

// NewProfile resolves a formula, absorber element, and edge label against the
// parser and table. It fails with core.ErrInvalidFormula when the formula
// does not parse or the absorber is absent from it, and with
// core.ErrNoEmissionLines when the absorber/edge pair has no
// positive-intensity emission line.
func NewProfile(tbl xraydb.Table, parser xraydb.FormulaParser, formula, absorber, edge string) (*Profile, error) {
	comp, err := parser.ParseFormula(formula)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", core.ErrInvalidFormula, formula, err)
	}

	if err := validateComposition(comp); err != nil {
		return nil, err
	}

	z, err := tbl.ResolveElement(absorber)
	if err != nil {
		return nil, err
	}

	symbol, err := tbl.Symbol(z)
	if err != nil {
		return nil, err
	}

	count, err := absorberCount(tbl, comp, z)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found in formula %q", core.ErrInvalidFormula, absorber, formula)
	}

	edgeInfo, err := tbl.Edge(absorber, edge)
	if err != nil {
		return nil, err
	}

	fluorEnergy, err := mostIntenseLineEnergy(tbl, absorber, edge)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Composition:    comp,
		AbsorberSymbol: symbol,
		AbsorberZ:      z,
		AbsorberCount:  count,
		EdgeEnergy:     edgeInfo.Energy,
		FluorEnergy:    fluorEnergy,
	}, nil
}

// absorberCount finds the stoichiometric count of the element with atomic
// number z, matching by resolution so that aliases of the same element agree.
func absorberCount(tbl xraydb.Table, comp xraydb.Composition, z int) (float64, error) {
	for _, sym := range symbols(comp) {
		elemZ, err := tbl.ResolveElement(sym)
		if err != nil {
			continue
		}

		if elemZ == z {
			return comp[sym], nil
		}
	}

	return 0, fmt.Errorf("%w: element Z=%d absent", core.ErrInvalidFormula, z)
}

// mostIntenseLineEnergy returns the energy of the strongest
// positive-intensity line at the edge's initial level.
func mostIntenseLineEnergy(tbl xraydb.Table, element, edge string) (float64, error) {
	lines, err := tbl.Lines(element, edge)
	if err != nil {
		return 0, err
	}

	valid := lines[:0:0]
	for _, l := range lines {
		if core.IsFinite(l.Intensity) && l.Intensity > 0 {
			valid = append(valid, l)
		}
	}

	best, ok := xraydb.MostIntenseLine(valid)
	if !ok {
		return 0, fmt.Errorf("%w: %s %s", core.ErrNoEmissionLines, element, edge)
	}

	return best.Energy, nil
}
