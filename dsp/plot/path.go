package plot

import (
	"math"

	"github.com/cwbudde/algo-eqscope/dsp/core"
)

const (
	// MinFrequency is the left edge of the frequency axis in Hz.
	MinFrequency = 20.0
	// MaxFrequency is the right edge of the frequency axis in Hz.
	MaxFrequency = 20000.0
	// CeilingDB is the top of the analyzer level axis.
	CeilingDB = 6.0
	// ResponseMinDB and ResponseMaxDB bound the filter-response axis.
	ResponseMinDB = -24.0
	ResponseMaxDB = 24.0
)

// ColumnFrequency returns the frequency plotted at pixel column i of a plot
// that is width pixels wide.
func ColumnFrequency(i int, width float64) float64 {
	if !(width > 0) {
		return MinFrequency
	}

	return core.MapToLog10(float64(i)/width, MinFrequency, MaxFrequency)
}

// GeneratePath converts one analyzer frame into a polyline across bounds.
//
// frame holds decibel values per bin; size is the transform length that
// produced it and binWidth its bin spacing in Hz. Column i is plotted at
// x = bounds.X + i for the bin floor(freq/binWidth), clamped to the valid
// range. Levels map linearly from [floorDB, CeilingDB] onto [bottom, top]
// and are clamped to bounds. An empty frame plots along the floor.
func GeneratePath(frame []float64, bounds Rect, size int, binWidth, floorDB float64) Path {
	n := bounds.Columns()
	path := make(Path, n)

	bins := len(frame)
	if half := size / 2; half > 0 && half < bins {
		bins = half
	}

	for i := range path {
		db := floorDB
		if bins > 0 && binWidth > 0 {
			freq := ColumnFrequency(i, bounds.W)
			bin := int(math.Floor(freq / binWidth))
			db = frame[min(max(bin, 0), bins-1)]
		}

		path[i] = Point{
			X: bounds.X + float64(i),
			Y: levelToY(db, floorDB, CeilingDB, bounds),
		}
	}

	return path
}

// ResponsePath converts per-column decibel values into a polyline across
// bounds, mapping [minDB, maxDB] onto [bottom, top]. Columns beyond
// len(magsDB) are not plotted.
func ResponsePath(magsDB []float64, bounds Rect, minDB, maxDB float64) Path {
	n := min(bounds.Columns(), len(magsDB))
	path := make(Path, n)

	for i := range path {
		path[i] = Point{
			X: bounds.X + float64(i),
			Y: levelToY(magsDB[i], minDB, maxDB, bounds),
		}
	}

	return path
}

// levelToY maps a level onto the vertical extent of bounds. NaN and values
// below lo land on the bottom edge, values above hi on the top edge.
func levelToY(db, lo, hi float64, bounds Rect) float64 {
	if math.IsNaN(db) {
		return bounds.Bottom()
	}

	y := core.MapLinear(db, lo, hi, bounds.Bottom(), bounds.Top())

	return core.Clamp(y, bounds.Top(), bounds.Bottom())
}
