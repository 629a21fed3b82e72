package testutil

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// Fixture lookup errors, matching the failure modes a real cross-section
// table exhibits.
var (
	ErrUnknownElement = errors.New("testutil: unknown element")
	ErrUnknownEdge    = errors.New("testutil: unknown edge")
	ErrEnergyRange    = errors.New("testutil: energy out of tabulated range")
	ErrBadFormula     = errors.New("testutil: malformed formula")
)

// The fixture models photoelectric mass attenuation as a power law
// coef × (E/E_ref)^−2.75 with a branch switch at the element's edge, which is
// the shape real Elam tables have between edges. Only Fe carries an edge
// inside the tabulated range, at exactly 7112 eV.
const (
	fixtureRefEV    = 7112.0
	fixtureExponent = -2.75
	fixtureMinEV    = 1000.0
	fixtureMaxEV    = 40000.0
)

type fixtureElement struct {
	z         int
	name      string
	molarMass float64
	coefPre   float64
	coefPost  float64
	edgeEV    float64
}

var fixtureElements = map[string]fixtureElement{
	"Fe": {26, "iron", 55.845, 53.0, 380.0, 7112.0},
	"Si": {14, "silicon", 28.0855, 33.2, 33.2, 0},
	"O":  {8, "oxygen", 15.999, 11.6, 11.6, 0},
	"N":  {7, "nitrogen", 14.007, 7.9, 7.9, 0},
}

// fixtureEdges lists absorption edges per element in descending-energy table
// order. Sub-range edges exist only for listing; attenuation branches only at
// the Fe K edge.
var fixtureEdges = map[string][]xraydb.NamedEdge{
	"Fe": {
		{Label: "K", Edge: xraydb.Edge{Energy: 7112.0, FluorescenceYield: 0.340, JumpRatio: 7.8}},
		{Label: "L1", Edge: xraydb.Edge{Energy: 844.6, FluorescenceYield: 0.001, JumpRatio: 1.1}},
		{Label: "L2", Edge: xraydb.Edge{Energy: 719.9, FluorescenceYield: 0.003, JumpRatio: 1.4}},
		{Label: "L3", Edge: xraydb.Edge{Energy: 706.8, FluorescenceYield: 0.006, JumpRatio: 3.1}},
	},
	"Si": {
		{Label: "K", Edge: xraydb.Edge{Energy: 1839.0, FluorescenceYield: 0.050, JumpRatio: 10.2}},
	},
	"O": {
		{Label: "K", Edge: xraydb.Edge{Energy: 543.1, FluorescenceYield: 0.008, JumpRatio: 16.0}},
	},
	"N": {
		{Label: "K", Edge: xraydb.Edge{Energy: 409.9, FluorescenceYield: 0.005, JumpRatio: 17.5}},
	},
}

// fixtureLines lists emission lines per element in table order. The Fe Kb5
// line carries zero intensity so filtering is exercised.
var fixtureLines = map[string][]xraydb.NamedLine{
	"Fe": {
		{Label: "Ka1", Line: xraydb.Line{Energy: 6404.0, Intensity: 0.580, InitialLevel: "K", FinalLevel: "L3"}},
		{Label: "Ka2", Line: xraydb.Line{Energy: 6391.0, Intensity: 0.294, InitialLevel: "K", FinalLevel: "L2"}},
		{Label: "Kb1", Line: xraydb.Line{Energy: 7058.0, Intensity: 0.082, InitialLevel: "K", FinalLevel: "M3"}},
		{Label: "Kb5", Line: xraydb.Line{Energy: 7110.0, Intensity: 0.0, InitialLevel: "K", FinalLevel: "M5"}},
	},
	"Si": {
		{Label: "Ka1", Line: xraydb.Line{Energy: 1740.0, Intensity: 0.950, InitialLevel: "K", FinalLevel: "L3"}},
	},
}

type fixtureTable struct{}

// NewTable returns the synthetic cross-section table. It is stateless and
// safe for concurrent use.
func NewTable() xraydb.Table {
	return fixtureTable{}
}

func (fixtureTable) MassAttenuation(element string, energies []float64, kind xraydb.CrossSectionKind) ([]float64, error) {
	el, ok := fixtureElements[element]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, element)
	}

	scale := 1.0
	switch kind {
	case xraydb.PhotoelectricAbsorption:
	case xraydb.Total:
		scale = 1.06
	case xraydb.Coherent:
		scale = 0.04
	case xraydb.Incoherent:
		scale = 0.02
	}

	out := make([]float64, len(energies))

	for i, e := range energies {
		if e < fixtureMinEV || e > fixtureMaxEV {
			return nil, fmt.Errorf("%w: %g eV", ErrEnergyRange, e)
		}

		coef := el.coefPre
		if el.edgeEV > 0 && e >= el.edgeEV {
			coef = el.coefPost
		}

		out[i] = scale * coef * math.Pow(e/fixtureRefEV, fixtureExponent)
	}

	return out, nil
}

func (fixtureTable) Edge(element, edge string) (xraydb.Edge, error) {
	for _, e := range fixtureEdges[element] {
		if e.Label == edge {
			return e.Edge, nil
		}
	}

	return xraydb.Edge{}, fmt.Errorf("%w: %s %s", ErrUnknownEdge, element, edge)
}

func (fixtureTable) Edges(element string) ([]xraydb.NamedEdge, error) {
	edges, ok := fixtureEdges[element]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, element)
	}

	return append([]xraydb.NamedEdge(nil), edges...), nil
}

func (fixtureTable) Lines(element, initialLevel string) ([]xraydb.NamedLine, error) {
	if _, ok := fixtureElements[element]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, element)
	}

	var out []xraydb.NamedLine

	for _, l := range fixtureLines[element] {
		if initialLevel == "" || l.InitialLevel == initialLevel {
			out = append(out, l)
		}
	}

	return out, nil
}

func (fixtureTable) MolarMass(element string) (float64, error) {
	el, ok := fixtureElements[element]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, element)
	}

	return el.molarMass, nil
}

func (fixtureTable) ResolveElement(nameOrSymbol string) (int, error) {
	if el, ok := fixtureElements[nameOrSymbol]; ok {
		return el.z, nil
	}

	for _, el := range fixtureElements {
		if el.name == nameOrSymbol {
			return el.z, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, nameOrSymbol)
}

func (fixtureTable) Symbol(z int) (string, error) {
	for sym, el := range fixtureElements {
		if el.z == z {
			return sym, nil
		}
	}

	return "", fmt.Errorf("%w: Z=%d", ErrUnknownElement, z)
}
