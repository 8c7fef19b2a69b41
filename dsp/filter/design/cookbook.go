package design

import (
	"math"

	"github.com/cwbudde/algo-eqscope/dsp/filter/biquad"
)

const butterworthQ2 = 1 / math.Sqrt2

// prewarp holds the terms shared by the cookbook formulas at one corner
// frequency.
type prewarp struct {
	cw, sw float64
}

func newPrewarp(freq, sampleRate float64) (prewarp, bool) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return prewarp{}, false
	}

	if !(freq > 0) || !(freq < sampleRate/2) {
		return prewarp{}, false
	}

	w0 := 2 * math.Pi * freq / sampleRate

	return prewarp{cw: math.Cos(w0), sw: math.Sin(w0)}, true
}

func (p prewarp) alpha(q float64) float64 {
	if !(q > 0) || math.IsInf(q, 0) {
		q = butterworthQ2
	}

	return p.sw / (2 * q)
}

func (p prewarp) lowpass(q float64) biquad.Coefficients {
	a := p.alpha(q)
	b := (1 - p.cw) / 2

	return normalize(b, 2*b, b, 1+a, -2*p.cw, 1-a)
}

func (p prewarp) highpass(q float64) biquad.Coefficients {
	a := p.alpha(q)
	b := (1 + p.cw) / 2

	return normalize(b, -2*b, b, 1+a, -2*p.cw, 1-a)
}

// Peak designs a peaking section: gain is gainDB at freq and falls back to
// unity away from it, over a bandwidth set by q.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	p, ok := newPrewarp(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	alpha := p.alpha(q)
	a := math.Pow(10, gainDB/40)

	return normalize(1+alpha*a, -2*p.cw, 1-alpha*a, 1+alpha/a, -2*p.cw, 1-alpha/a)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	return biquad.Coefficients{B0: b0 / a0, B1: b1 / a0, B2: b2 / a0, A1: a1 / a0, A2: a2 / a0}
}
