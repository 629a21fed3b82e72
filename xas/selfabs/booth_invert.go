package selfabs

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xas/xas/core"
)

// Solver bounds for the thin-branch inversion. Newton is a performance
// optimization only; bisection over an expanded bracket is the authoritative
// method whenever Newton stalls, diverges, or its derivative estimate
// vanishes.
const (
	invertLowerBound    = -0.999999
	invertStepUpper     = 10.0
	invertBracketCap    = 1e6
	invertResidualTol   = 1e-12
	invertNewtonSteps   = 20
	invertExpandSteps   = 40
	invertBisectSteps   = 80
	invertIntervalFloor = 1e-10
)

// invertThinAt finds the measured amplitude whose thin correction equals
// chiTrue at grid point i.
func (r *BoothResult) invertThinAt(i int, chiTrue, density, thicknessUM float64) (float64, error) {
	f := func(x float64) float64 {
		return r.correctThinAt(i, x, density, thicknessUM) - chiTrue
	}

	if x, ok := newtonInvert(f, chiTrue); ok {
		return x, nil
	}

	return bisectInvert(f, chiTrue, i)
}

// newtonInvert runs a local Newton-Raphson iteration with a central
// difference derivative, starting at the expected answer. It reports ok =
// false whenever the residual or derivative becomes non-finite or the
// derivative degenerates; the caller then falls back to bisection.
func newtonInvert(f func(float64) float64, start float64) (float64, bool) {
	x := start

	for range invertNewtonSteps {
		fx := f(x)
		if !core.IsFinite(fx) {
			return 0, false
		}

		if math.Abs(fx) < invertResidualTol {
			return x, true
		}

		h := 1e-6 * math.Max(math.Abs(x), 1)

		df := (f(x+h) - f(x-h)) / (2 * h)
		if !core.IsFinite(df) || math.Abs(df) < 1e-12 {
			return 0, false
		}

		next := core.Clamp(x-fx/df, invertLowerBound, invertStepUpper)
		if !core.IsFinite(next) {
			return 0, false
		}

		if math.Abs(next-x) < invertResidualTol {
			return next, true
		}

		x = next
	}

	return 0, false
}

// bisectInvert brackets the root against the physical lower bound, expanding
// the upper bound geometrically up to invertBracketCap, then bisects. Failing
// to bracket, or hitting a non-finite residual, is fatal for the whole call.
func bisectInvert(f func(float64) float64, chiTrue float64, index int) (float64, error) {
	lo := invertLowerBound
	hi := (math.Max(chiTrue, 0) + 1) * 2

	flo := f(lo)
	fhi := f(hi)

	bracketed := core.IsFinite(flo) && core.IsFinite(fhi) && flo*fhi <= 0

	for range invertExpandSteps {
		if bracketed {
			break
		}

		hi *= 2
		if hi > invertBracketCap {
			break
		}

		fhi = f(hi)
		bracketed = core.IsFinite(flo) && core.IsFinite(fhi) && flo*fhi <= 0
	}

	if !bracketed {
		return 0, fmt.Errorf("%w: failed to bracket thin inversion at index %d", core.ErrInsufficientData, index)
	}

	for range invertBisectSteps {
		mid := 0.5 * (lo + hi)

		fmid := f(mid)
		if !core.IsFinite(fmid) {
			return 0, fmt.Errorf("%w: non-finite thin inversion residual at index %d", core.ErrInsufficientData, index)
		}

		if math.Abs(fmid) < invertResidualTol || math.Abs(hi-lo) < invertIntervalFloor {
			return mid, nil
		}

		if flo*fmid <= 0 {
			hi = mid
		} else {
			lo = mid
			flo = fmid
		}
	}

	return 0.5 * (lo + hi), nil
}
