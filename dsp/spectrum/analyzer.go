package spectrum

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eqscope/dsp/buffer"
	"github.com/cwbudde/algo-eqscope/dsp/transport"
	"github.com/cwbudde/algo-eqscope/dsp/window"
)

// Analyzer computes windowed FFT magnitude frames from a sliding window of
// samples.
type Analyzer struct {
	size       int
	sampleRate float64
	windowType window.Type
	smoothing  float64

	samples  *buffer.Buffer
	coeffs   []float64
	windowed []float64
	norm     float64

	plan   *algofft.Plan[complex128]
	in     []complex128
	out    []complex128
	re, im []float64
	mag    []float64

	prev    []float64
	hasPrev bool
	pending bool

	frames *transport.Ring[Frame]
}

// New returns an Analyzer configured by opts. Defaults: 2048-point transform,
// 4-term Blackman-Harris window, 48 kHz, no smoothing.
func New(opts ...Option) (*Analyzer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.size < 16 || bits.OnesCount(uint(cfg.size)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, cfg.size)
	}

	if !validSampleRate(cfg.sampleRate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.sampleRate)
	}

	if !(cfg.smoothing >= 0 && cfg.smoothing < 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSmoothing, cfg.smoothing)
	}

	plan, err := algofft.NewPlan64(cfg.size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	frames, err := transport.NewRing[Frame](cfg.frameCapacity)
	if err != nil {
		return nil, fmt.Errorf("spectrum: frame ring: %w", err)
	}

	coeffs := window.Generate(cfg.window, cfg.size)

	// Scale so that a full-scale sinusoid centred on a bin reads 0 dB.
	cg, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectrum: window %s: %w", cfg.window, err)
	}

	bins := cfg.size / 2

	return &Analyzer{
		size:       cfg.size,
		sampleRate: cfg.sampleRate,
		windowType: cfg.window,
		smoothing:  cfg.smoothing,
		samples:    buffer.New(cfg.size),
		coeffs:     coeffs,
		windowed:   make([]float64, cfg.size),
		norm:       1 / (float64(bins) * cg),
		plan:       plan,
		in:         make([]complex128, cfg.size),
		out:        make([]complex128, cfg.size),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
		mag:        make([]float64, bins),
		prev:       make([]float64, bins),
		frames:     frames,
	}, nil
}

// Size returns the transform length.
func (a *Analyzer) Size() int { return a.size }

// Bins returns the number of magnitude values per frame (Size/2).
func (a *Analyzer) Bins() int { return a.size / 2 }

// Window returns the configured window function.
func (a *Analyzer) Window() window.Type { return a.windowType }

// SampleRate returns the sample rate used for bin widths.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// SetSampleRate updates the sample rate. Invalid rates are ignored.
func (a *Analyzer) SetSampleRate(fs float64) {
	if validSampleRate(fs) {
		a.sampleRate = fs
	}
}

// BinWidth returns SampleRate/Size in Hz.
func (a *Analyzer) BinWidth() float64 {
	return a.sampleRate / float64(a.size)
}

// Ingest slides samples into the analysis window, evicting the oldest.
func (a *Analyzer) Ingest(samples []float64) {
	if len(samples) == 0 {
		return
	}

	a.samples.Slide(samples)
	a.pending = true
}

// FrameReady reports whether samples arrived since the last frame.
func (a *Analyzer) FrameReady() bool { return a.pending }

// Filled reports whether a full transform length of samples has arrived
// since New or Reset. Frames computed earlier include leading silence.
func (a *Analyzer) Filled() bool { return a.samples.Filled() }

// Reset clears the analysis window, smoothing history and queued frames.
func (a *Analyzer) Reset() {
	a.samples.Zero()
	a.hasPrev = false
	a.pending = false

	for {
		if _, ok := a.frames.Pop(); !ok {
			break
		}
	}
}

// ComputeFrame analyses the current window. Bin magnitudes are normalised so
// a full-scale sinusoid reads about 0 dB; values below floorDB, including
// silence, are reported as floorDB.
func (a *Analyzer) ComputeFrame(floorDB float64) Frame {
	a.pending = false

	db := make([]float64, a.Bins())
	frame := Frame{DB: db, BinWidth: a.BinWidth(), Size: a.size}

	// Both steps only fail on a length mismatch, which New rules out.
	copy(a.windowed, a.samples.Samples())
	if err := window.Apply(a.windowed, a.coeffs); err != nil {
		return silence(frame, floorDB)
	}

	for i, x := range a.windowed {
		a.in[i] = complex(x, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return silence(frame, floorDB)
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	vecmath.Magnitude(a.mag, a.re, a.im)

	for k, m := range a.mag {
		db[k] = magnitudeToDB(m*a.norm, floorDB)
	}

	if a.smoothing > 0 {
		if a.hasPrev {
			s := a.smoothing
			for k := range db {
				db[k] = math.Max(floorDB, s*a.prev[k]+(1-s)*db[k])
			}
		}

		copy(a.prev, db)
		a.hasPrev = true
	}

	return frame
}

// Produce computes a frame and queues it. It returns false when the frame
// ring is full; the new frame is then dropped.
func (a *Analyzer) Produce(floorDB float64) bool {
	return a.frames.Push(a.ComputeFrame(floorDB))
}

// NumAvailableFrames returns the number of queued frames.
func (a *Analyzer) NumAvailableFrames() int { return a.frames.Len() }

// PopFrame removes and returns the oldest queued frame.
func (a *Analyzer) PopFrame() (Frame, bool) { return a.frames.Pop() }

// DroppedFrames returns how many frames Produce discarded.
func (a *Analyzer) DroppedFrames() uint64 { return a.frames.Dropped() }

func validSampleRate(fs float64) bool {
	return fs > 0 && !math.IsInf(fs, 0)
}

func silence(frame Frame, floorDB float64) Frame {
	for i := range frame.DB {
		frame.DB[i] = floorDB
	}

	return frame
}
