package core

import "math"

// Clamp limits v to [lo, hi]. Swapped bounds are reordered.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return min(max(v, lo), hi)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// GainToDB converts a linear gain to dB, never going below floorDB.
// Zero, negative and non-finite gains return floorDB.
func GainToDB(gain, floorDB float64) float64 {
	if !(gain > 0) || math.IsInf(gain, 0) {
		return floorDB
	}

	return max(20*math.Log10(gain), floorDB)
}
