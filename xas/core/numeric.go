package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// OneMinusExpNeg evaluates 1 − e^(−x) without catastrophic cancellation for
// small x and without overflow for large x. Returns 0 for x ≤ 0 and 1 for
// x > 700 (where e^(−x) underflows double precision anyway).
func OneMinusExpNeg(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x > 700:
		return 1
	default:
		return -math.Expm1(-x)
	}
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
