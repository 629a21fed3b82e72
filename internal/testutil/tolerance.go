// Package testutil provides shared test helpers: tolerance assertions over
// scalars and curves, and a synthetic cross-section fixture (table plus
// formula parser) with physically shaped Elam-like behavior for an Fe K edge
// system.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance).
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()

	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or any
// element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireAllPositive fails t if any element is non-finite or not strictly
// positive.
func RequireAllPositive(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			t.Fatalf("index %d: value %v is not finite and positive", i, v)
		}
	}
}

// RequireSameLength fails t unless all curves have the given length.
func RequireSameLength(t *testing.T, n int, curves ...[]float64) {
	t.Helper()

	for i, c := range curves {
		if len(c) != n {
			t.Fatalf("curve %d: length %d, want %d", i, len(c), n)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	var maxDiff float64

	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}

// EnergyGrid returns a uniform grid from start to stop (inclusive) with the
// given step in eV.
func EnergyGrid(start, stop, step float64) []float64 {
	var grid []float64
	for e := start; e <= stop+1e-9; e += step {
		grid = append(grid, e)
	}

	return grid
}
