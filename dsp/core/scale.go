package core

import "math"

// MapToLog10 maps a normalised position in [0, 1] onto the logarithmic range
// [lo, hi]. Both bounds must be positive.
func MapToLog10(norm, lo, hi float64) float64 {
	return lo * math.Pow(hi/lo, norm)
}

// MapFromLog10 is the inverse of MapToLog10: it returns the normalised
// position of v on the logarithmic range [lo, hi].
func MapFromLog10(v, lo, hi float64) float64 {
	return math.Log(v/lo) / math.Log(hi/lo)
}

// MapLinear maps v from [srcLo, srcHi] onto [dstLo, dstHi] without clamping.
// A degenerate source range maps everything to dstLo.
func MapLinear(v, srcLo, srcHi, dstLo, dstHi float64) float64 {
	span := srcHi - srcLo
	if span == 0 {
		return dstLo
	}

	return dstLo + (v-srcLo)/span*(dstHi-dstLo)
}
