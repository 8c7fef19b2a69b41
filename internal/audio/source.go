// Package audio feeds synthetic stereo signals through an eq.Processor,
// either from an oto output callback or from a headless ticker.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync/atomic"

	"github.com/cwbudde/algo-eqscope/eq"
)

// Source fills a block of stereo samples. Fill is called from the producer
// goroutine only and must not allocate.
type Source interface {
	Fill(left, right []float64)
}

// Sine is a continuous sine tone on both channels.
type Sine struct {
	amp   float64
	step  float64
	phase float64
}

// NewSine returns a sine of freq Hz at sampleRate.
func NewSine(freq, amp, sampleRate float64) *Sine {
	return &Sine{amp: amp, step: 2 * math.Pi * freq / sampleRate}
}

func (s *Sine) Fill(left, right []float64) {
	for i := range left {
		v := s.amp * math.Sin(s.phase)
		left[i] = v
		if i < len(right) {
			right[i] = v
		}

		s.phase += s.step
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
	}
}

// Noise is uncorrelated white noise per channel.
type Noise struct {
	amp float64
	rng *rand.Rand
}

// NewNoise returns seeded white noise in [-amp, amp).
func NewNoise(amp float64, seed int64) *Noise {
	return &Noise{amp: amp, rng: rand.New(rand.NewSource(seed))}
}

func (n *Noise) Fill(left, right []float64) {
	for i := range left {
		left[i] = n.amp * (2*n.rng.Float64() - 1)
	}

	for i := range right {
		right[i] = n.amp * (2*n.rng.Float64() - 1)
	}
}

// Sweep is a repeating logarithmic sine sweep. The right channel runs half a
// period behind the left so the two analyzer paths differ.
type Sweep struct {
	amp        float64
	lo, hi     float64
	sampleRate float64
	length     int

	n      int
	phaseL float64
	phaseR float64
}

// NewSweep sweeps from lo to hi Hz over seconds, then starts over.
func NewSweep(lo, hi, seconds, amp, sampleRate float64) *Sweep {
	return &Sweep{
		amp:        amp,
		lo:         lo,
		hi:         hi,
		sampleRate: sampleRate,
		length:     max(int(seconds*sampleRate), 1),
	}
}

// Frequency returns the instantaneous frequency of the left channel.
func (s *Sweep) Frequency() float64 {
	return s.freqAt(s.n)
}

func (s *Sweep) freqAt(n int) float64 {
	t := float64(n%s.length) / float64(s.length)
	return s.lo * math.Pow(s.hi/s.lo, t)
}

func (s *Sweep) Fill(left, right []float64) {
	for i := range left {
		fl := s.freqAt(s.n)
		fr := s.freqAt(s.n + s.length/2)

		left[i] = s.amp * math.Sin(s.phaseL)
		if i < len(right) {
			right[i] = s.amp * math.Sin(s.phaseR)
		}

		s.phaseL = math.Mod(s.phaseL+2*math.Pi*fl/s.sampleRate, 2*math.Pi)
		s.phaseR = math.Mod(s.phaseR+2*math.Pi*fr/s.sampleRate, 2*math.Pi)
		s.n = (s.n + 1) % s.length
	}
}

// SourceNames lists the names ParseSource accepts.
func SourceNames() []string { return []string{"sine", "noise", "sweep"} }

// ParseSource builds a named source at sampleRate: a 1 kHz sine, white noise,
// or a 20 Hz - 20 kHz sweep over five seconds.
func ParseSource(name string, sampleRate float64) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return NewSine(1000, 0.5, sampleRate), nil
	case "noise":
		return NewNoise(0.25, 1), nil
	case "sweep":
		return NewSweep(20, 20000, 5, 0.5, sampleRate), nil
	default:
		return nil, fmt.Errorf("audio: unknown source %q (want one of %s)", name, strings.Join(SourceNames(), ", "))
	}
}

// Pump moves one block at a time from a Source through a Processor.
type Pump struct {
	proc        *eq.Processor
	src         Source
	left, right []float64
	blocks      atomic.Uint64
}

// NewPump returns a pump producing blocks of the processor's prepared size.
func NewPump(proc *eq.Processor, src Source) *Pump {
	n := proc.BlockSize()

	return &Pump{
		proc:  proc,
		src:   src,
		left:  make([]float64, n),
		right: make([]float64, n),
	}
}

// Step fills and processes one block and returns the filtered samples. The
// returned slices are reused by the next Step.
func (p *Pump) Step() (left, right []float64) {
	p.src.Fill(p.left, p.right)
	p.proc.ProcessBlock(p.left, p.right)
	p.blocks.Add(1)

	return p.left, p.right
}

// Blocks returns the number of blocks stepped.
func (p *Pump) Blocks() uint64 { return p.blocks.Load() }
