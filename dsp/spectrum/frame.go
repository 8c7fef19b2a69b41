package spectrum

import "gonum.org/v1/gonum/floats"

// Frame is one analysis result: Size/2 decibel magnitudes, one per bin,
// starting at DC. A Frame is never modified after it is returned.
type Frame struct {
	DB       []float64
	BinWidth float64
	Size     int
}

// Frequency returns the centre frequency of bin in Hz.
func (f Frame) Frequency(bin int) float64 {
	return float64(bin) * f.BinWidth
}

// PeakBin returns the index of the loudest bin, or -1 for an empty frame.
func (f Frame) PeakBin() int {
	if len(f.DB) == 0 {
		return -1
	}

	return floats.MaxIdx(f.DB)
}
