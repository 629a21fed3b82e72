package xraydb

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unrecognized kind names.
var ErrUnknownKind = errors.New("xraydb: unknown cross-section kind")

// CrossSectionKind selects which attenuation cross section a Table returns.
type CrossSectionKind int

const (
	// PhotoelectricAbsorption is the photoelectric cross section; every
	// correction algorithm in this module uses it.
	PhotoelectricAbsorption CrossSectionKind = iota

	// Total is the photoelectric plus coherent plus incoherent cross section.
	Total

	// Coherent is the elastic (Rayleigh) scattering cross section.
	Coherent

	// Incoherent is the inelastic (Compton) scattering cross section.
	Incoherent
)

// ParseKind resolves a cross-section kind from its common short names.
func ParseKind(name string) (CrossSectionKind, error) {
	switch strings.ToLower(name) {
	case "photo":
		return PhotoelectricAbsorption, nil
	case "total":
		return Total, nil
	case "coherent", "coh":
		return Coherent, nil
	case "incoherent", "incoh":
		return Incoherent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Edge describes one absorption edge of an element.
type Edge struct {
	// Energy is the edge threshold energy in eV.
	Energy float64

	// FluorescenceYield is the probability of radiative decay of the core
	// hole.
	FluorescenceYield float64

	// JumpRatio is the ratio of attenuation just above to just below the
	// edge.
	JumpRatio float64
}

// NamedEdge pairs an edge with its IUPAC label (K, L1, L2, ...).
type NamedEdge struct {
	Label string
	Edge
}

// Line describes one fluorescence emission line.
type Line struct {
	// Energy is the emitted photon energy in eV.
	Energy float64

	// Intensity is the relative branching intensity within the element's
	// emission spectrum.
	Intensity float64

	// InitialLevel and FinalLevel name the core levels of the transition.
	InitialLevel string
	FinalLevel   string
}

// NamedLine pairs a line with its Siegbahn label (Ka1, Kb3, ...).
type NamedLine struct {
	Label string
	Line
}

// Composition maps element symbols to stoichiometric counts. Counts may be
// fractional; a valid composition has only finite, positive counts.
type Composition map[string]float64

// Table is the cross-section provider every computation receives explicitly.
// Implementations must be safe for concurrent read use; all methods are
// in-memory lookups with no side effects.
type Table interface {
	// MassAttenuation returns the mass attenuation coefficient (cm²/g) of an
	// element at each energy (eV) for the given cross-section kind. It fails
	// for unknown elements or energies outside the tabulated range; on
	// success the result length equals len(energies).
	MassAttenuation(element string, energies []float64, kind CrossSectionKind) ([]float64, error)

	// Edge returns one absorption edge of an element by label.
	Edge(element, edge string) (Edge, error)

	// Edges returns all absorption edges of an element in table order.
	Edges(element string) ([]NamedEdge, error)

	// Lines returns the emission lines of an element whose initial level
	// matches the given edge label (all lines when the label is empty), in
	// table order.
	Lines(element, initialLevel string) ([]NamedLine, error)

	// MolarMass returns the molar mass of an element in g/mol.
	MolarMass(element string) (float64, error)

	// ResolveElement resolves an element name or symbol to its atomic
	// number.
	ResolveElement(nameOrSymbol string) (int, error)

	// Symbol returns the canonical symbol for an atomic number.
	Symbol(z int) (string, error)
}

// FormulaParser turns a chemical formula string into a composition. Parsers
// report failures compatible with core.ErrInvalidFormula semantics; the
// sample package wraps any parse error accordingly.
type FormulaParser interface {
	ParseFormula(formula string) (Composition, error)
}

// ParserFunc adapts a plain function to the FormulaParser interface.
type ParserFunc func(formula string) (Composition, error)

// ParseFormula calls f.
func (f ParserFunc) ParseFormula(formula string) (Composition, error) {
	return f(formula)
}
