// Package leastsq provides the ordinary least-squares fits shared by the
// sample baseline and the amplitude/variance extraction: a plain linear fit
// and a log-linear fit of ln(y) against x.
//
// Both fits consume only valid points; invalid points are excluded from the
// accumulation, never removed from the caller's grid. The normal-equations
// denominator is treated as degenerate below 1e-30 in magnitude.
package leastsq

import "math"

// degenerateDenom is the magnitude floor for the normal-equations
// denominator n·Σx² − (Σx)².
const degenerateDenom = 1e-30

// Line fits y = intercept + slope·x over the finite points of x and y.
// It reports ok = false when fewer than 2 valid points remain, the
// denominator is degenerate, or either coefficient comes out non-finite.
func Line(x, y []float64) (intercept, slope float64, ok bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, 0, false
	}

	var sx, sy, sxx, sxy float64
	var n int

	for i, xi := range x {
		yi := y[i]
		if !finite(xi) || !finite(yi) {
			continue
		}

		sx += xi
		sy += yi
		sxx += xi * xi
		sxy += xi * yi
		n++
	}

	if n < 2 {
		return 0, 0, false
	}

	nf := float64(n)

	denom := nf*sxx - sx*sx
	if !finite(denom) || math.Abs(denom) < degenerateDenom {
		return 0, 0, false
	}

	slope = (nf*sxy - sx*sy) / denom
	intercept = (sy - slope*sx) / nf

	if !finite(slope) || !finite(intercept) {
		return 0, 0, false
	}

	return intercept, slope, true
}

// LogLinear fits ln(y) = intercept + slope·x over points with positive,
// finite x and y. With fewer than 2 valid points, or a degenerate
// denominator, it returns (0, 0): a flat or empty segment is a legitimate
// no-signal outcome for the variance extraction, not an error.
func LogLinear(x, y []float64) (intercept, slope float64) {
	var sx, sy, sxx, sxy float64
	var n int

	for i, xi := range x {
		if i >= len(y) {
			break
		}

		yi := y[i]
		if xi <= 0 || yi <= 0 || !finite(xi) || !finite(yi) {
			continue
		}

		ly := math.Log(yi)
		sx += xi
		sy += ly
		sxx += xi * xi
		sxy += xi * ly
		n++
	}

	if n < 2 {
		return 0, 0
	}

	nf := float64(n)

	denom := nf*sxx - sx*sx
	if math.Abs(denom) < degenerateDenom {
		return 0, 0
	}

	slope = (nf*sxy - sx*sy) / denom
	intercept = (sy - slope*sx) / nf

	return intercept, slope
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
