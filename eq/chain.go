package eq

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-eqscope/dsp/core"
	"github.com/cwbudde/algo-eqscope/dsp/filter/biquad"
	"github.com/cwbudde/algo-eqscope/dsp/filter/design"
	"github.com/cwbudde/algo-eqscope/dsp/plot"
)

// NumSections is the fixed length of the processing cascade:
// LowCut sections, the peak section, then HighCut sections.
const NumSections = 2*MaxCutSections + 1

const (
	// responseFloorDB bounds ResponseDB for magnitudes at or near zero.
	responseFloorDB = -100.0
	// maxDesignRatio keeps designed frequencies strictly below Nyquist.
	maxDesignRatio = 0.49
)

// ChainCoefficients is an immutable coefficient set derived from one
// Settings snapshot. Cut sections beyond the active count keep zero
// coefficients and are never evaluated.
type ChainCoefficients struct {
	Settings   Settings
	SampleRate float64

	LowCut        [MaxCutSections]biquad.Coefficients
	LowCutActive  int
	Peak          biquad.Coefficients
	HighCut       [MaxCutSections]biquad.Coefficients
	HighCutActive int
}

// Design derives coefficients for s at sampleRate. The filter type of each
// stage follows its position, not StageDescriptor.Kind. Stage frequencies
// above the designable range of a low sample rate are pulled just below
// Nyquist.
func Design(s Settings, sampleRate float64) *ChainCoefficients {
	c := &ChainCoefficients{Settings: s, SampleRate: sampleRate}

	c.Peak = design.Peak(designFreq(s.Peak.Freq, sampleRate), s.Peak.GainDB, s.Peak.Q, sampleRate)
	c.LowCutActive = copy(c.LowCut[:],
		design.ButterworthHP(designFreq(s.LowCut.Freq, sampleRate), s.LowCut.Slope.Order(), sampleRate))
	c.HighCutActive = copy(c.HighCut[:],
		design.ButterworthLP(designFreq(s.HighCut.Freq, sampleRate), s.HighCut.Slope.Order(), sampleRate))

	return c
}

func designFreq(freq, sampleRate float64) float64 {
	return min(freq, maxDesignRatio*sampleRate)
}

// MagnitudeResponse returns the linear gain of the cascade at freq. It is
// the product of the magnitudes of every active section of every stage that
// is not bypassed, so a fully bypassed chain returns exactly 1. freq must be
// below sampleRate/2.
func (c *ChainCoefficients) MagnitudeResponse(freq, sampleRate float64) float64 {
	mag := 1.0

	if !c.Settings.LowCut.Bypassed {
		for i := range c.LowCutActive {
			mag *= c.LowCut[i].Magnitude(freq, sampleRate)
		}
	}

	if !c.Settings.Peak.Bypassed {
		mag *= c.Peak.Magnitude(freq, sampleRate)
	}

	if !c.Settings.HighCut.Bypassed {
		for i := range c.HighCutActive {
			mag *= c.HighCut[i].Magnitude(freq, sampleRate)
		}
	}

	return mag
}

// Sections writes the processing cascade into dst. Bypassed stages and
// inactive cut sections become passthrough sections, so the cascade length
// never changes.
func (c *ChainCoefficients) Sections(dst *[NumSections]biquad.Coefficients) {
	pass := biquad.Passthrough()

	for i := range MaxCutSections {
		dst[i] = pass
		if !c.Settings.LowCut.Bypassed && i < c.LowCutActive {
			dst[i] = c.LowCut[i]
		}

		dst[MaxCutSections+1+i] = pass
		if !c.Settings.HighCut.Bypassed && i < c.HighCutActive {
			dst[MaxCutSections+1+i] = c.HighCut[i]
		}
	}

	dst[MaxCutSections] = pass
	if !c.Settings.Peak.Bypassed {
		dst[MaxCutSections] = c.Peak
	}
}

// Chain publishes ChainCoefficients snapshots. Rebuild replaces the whole
// snapshot with one atomic pointer swap, so readers on other goroutines see
// either the old or the new set, never a mix.
type Chain struct {
	current atomic.Pointer[ChainCoefficients]
}

// NewChain returns a Chain built from DefaultSettings at sampleRate.
func NewChain(sampleRate float64) *Chain {
	c := &Chain{}
	c.Rebuild(DefaultSettings(), sampleRate)

	return c
}

// Rebuild designs and publishes coefficients for s.
func (c *Chain) Rebuild(s Settings, sampleRate float64) *ChainCoefficients {
	next := Design(s, sampleRate)
	c.current.Store(next)

	return next
}

// Coefficients returns the current snapshot.
func (c *Chain) Coefficients() *ChainCoefficients {
	return c.current.Load()
}

// SampleRate returns the sample rate of the current snapshot.
func (c *Chain) SampleRate() float64 {
	return c.Coefficients().SampleRate
}

// MagnitudeResponse evaluates the current snapshot at freq.
func (c *Chain) MagnitudeResponse(freq, sampleRate float64) float64 {
	return c.Coefficients().MagnitudeResponse(freq, sampleRate)
}

// ResponseDB samples the current response once per pixel column across a
// plot width pixels wide, on the 20 Hz - 20 kHz log axis. Frequencies at
// or above Nyquist are evaluated just below it.
func (c *Chain) ResponseDB(width int, sampleRate float64) []float64 {
	if width <= 0 {
		return nil
	}

	snap := c.Coefficients()
	limit := math.Nextafter(sampleRate/2, 0)
	out := make([]float64, width)

	for i := range out {
		freq := min(plot.ColumnFrequency(i, float64(width)), limit)
		out[i] = core.GainToDB(snap.MagnitudeResponse(freq, sampleRate), responseFloorDB)
	}

	return out
}
