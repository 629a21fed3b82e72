package testutil

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// NewParser returns a minimal formula parser for the fixture: sequences of
// element symbols with optional fractional counts, such as "Fe2O3" or
// "Fe0.001Si0.999O2". It exists only so tests can inject a parser; the real
// parser is an external collaborator.
func NewParser() xraydb.FormulaParser {
	return xraydb.ParserFunc(parseFixtureFormula)
}

func parseFixtureFormula(formula string) (xraydb.Composition, error) {
	comp := xraydb.Composition{}

	i := 0
	for i < len(formula) {
		c := formula[i]
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("%w: unexpected character %q in %q", ErrBadFormula, c, formula)
		}

		start := i
		i++

		for i < len(formula) && formula[i] >= 'a' && formula[i] <= 'z' {
			i++
		}

		symbol := formula[start:i]

		numStart := i
		for i < len(formula) && (formula[i] == '.' || (formula[i] >= '0' && formula[i] <= '9')) {
			i++
		}

		count := 1.0

		if i > numStart {
			parsed, err := strconv.ParseFloat(formula[numStart:i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad count %q in %q", ErrBadFormula, formula[numStart:i], formula)
			}

			count = parsed
		}

		comp[symbol] += count
	}

	if len(comp) == 0 {
		return nil, fmt.Errorf("%w: empty formula", ErrBadFormula)
	}

	return comp, nil
}
