package spectrum

import "errors"

var (
	// ErrInvalidSize is returned when the transform size is not a power of
	// two of at least 16.
	ErrInvalidSize = errors.New("spectrum: size must be a power of two >= 16")
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be > 0")
	// ErrInvalidSmoothing is returned when smoothing is outside [0, 1).
	ErrInvalidSmoothing = errors.New("spectrum: smoothing must be in [0, 1)")
)
