//go:build !fastmath

package spectrum

import "math"

// magnitudeToDB converts a linear magnitude to decibels, clamping at floor.
func magnitudeToDB(mag, floor float64) float64 {
	if !(mag > 0) || math.IsInf(mag, 0) {
		return floor
	}

	db := 20 * math.Log10(mag)
	if db < floor {
		return floor
	}

	return db
}
