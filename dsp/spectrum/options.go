package spectrum

import "github.com/cwbudde/algo-eqscope/dsp/window"

const (
	// DefaultSize is the default transform length (2^11).
	DefaultSize = 2048
	// DefaultSampleRate is used until the host reports its rate.
	DefaultSampleRate = 48000.0
	// DefaultFrameCapacity is the default depth of the frame ring.
	DefaultFrameCapacity = 8
)

type config struct {
	size          int
	window        window.Type
	sampleRate    float64
	frameCapacity int
	smoothing     float64
}

func defaultConfig() config {
	return config{
		size:          DefaultSize,
		window:        window.TypeBlackmanHarris4Term,
		sampleRate:    DefaultSampleRate,
		frameCapacity: DefaultFrameCapacity,
	}
}

// Option configures an Analyzer.
type Option func(*config)

// WithSize sets the transform length. It must be a power of two.
func WithSize(n int) Option {
	return func(c *config) { c.size = n }
}

// WithWindow sets the analysis window function.
func WithWindow(t window.Type) Option {
	return func(c *config) { c.window = t }
}

// WithSampleRate sets the sample rate used for bin widths.
func WithSampleRate(fs float64) Option {
	return func(c *config) { c.sampleRate = fs }
}

// WithFrameCapacity sets how many frames Produce can queue.
func WithFrameCapacity(n int) Option {
	return func(c *config) { c.frameCapacity = n }
}

// WithSmoothing enables exponential smoothing between consecutive frames.
// alpha is the weight of the previous frame; 0 disables smoothing.
func WithSmoothing(alpha float64) Option {
	return func(c *config) { c.smoothing = alpha }
}
