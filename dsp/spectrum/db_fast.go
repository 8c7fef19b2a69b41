//go:build fastmath

package spectrum

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// 20/ln(10), converts a natural log to decibels.
const dbPerNeper = 8.685889638065035

// magnitudeToDB converts a linear magnitude to decibels, clamping at floor.
func magnitudeToDB(mag, floor float64) float64 {
	if !(mag > 0) || math.IsInf(mag, 0) {
		return floor
	}

	db := dbPerNeper * approx.FastLog(mag)
	if !(db > floor) {
		return floor
	}

	return db
}
