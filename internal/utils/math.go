// internal/utils/math.go
package utils

import "math"

// Lerp interpolates linearly between a and b.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ClampInt is Clamp for ints.
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FiniteOr returns v, or fallback when v is NaN or ±Inf.
func FiniteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// SnapStep rounds v to the nearest multiple of step counted from lo.
func SnapStep(v, lo, step float64) float64 {
	if step <= 0 {
		return v
	}
	return lo + math.Round((v-lo)/step)*step
}
