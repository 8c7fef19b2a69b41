// Package spectrum turns a stream of audio samples into decibel magnitude
// frames for display.
//
// An [Analyzer] keeps a sliding analysis window of the most recent Size
// samples. Each [Analyzer.ComputeFrame] applies a fixed window function,
// runs a forward FFT and converts the first Size/2 bins to decibels clamped
// at a floor. Frames can be queued through the analyzer's own frame ring
// ([Analyzer.Produce], [Analyzer.PopFrame]) for a later drain step.
//
// An Analyzer is owned by one goroutine and has no internal synchronisation.
package spectrum
