package vmath

import "math"

// --- Scalars ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Nearer reports whether a is strictly closer to v than b
func Nearer(v, a, b float64) bool {
	return math.Abs(v-a) < math.Abs(v-b)
}
