package design

import (
	"math"

	"github.com/cwbudde/algo-eqscope/dsp/filter/biquad"
)

// ButterworthLP designs a Butterworth lowpass of the given order as
// (order+1)/2 sections, lowest Q first. An odd order ends with a first-order
// section.
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, prewarp.lowpass, firstOrderLP)
}

// ButterworthHP is the highpass counterpart of ButterworthLP.
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, prewarp.highpass, firstOrderHP)
}

func butterworth(
	freq float64, order int, sampleRate float64,
	second func(prewarp, float64) biquad.Coefficients,
	first func(k float64) biquad.Coefficients,
) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	sections := make([]biquad.Coefficients, (order+1)/2)

	p, ok := newPrewarp(freq, sampleRate)
	if !ok {
		return sections
	}

	for i := range order / 2 {
		sections[i] = second(p, butterworthQ(order, order/2-1-i))
	}

	if order%2 != 0 {
		sections[len(sections)-1] = first(math.Tan(math.Pi * freq / sampleRate))
	}

	return sections
}

// butterworthQ is the Q of pole pair index (0 <= index < order/2).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / float64(2*order)

	return 1 / (2 * math.Sin(theta))
}

func firstOrderLP(k float64) biquad.Coefficients {
	n := 1 / (1 + k)

	return biquad.Coefficients{B0: k * n, B1: k * n, A1: (k - 1) * n}
}

func firstOrderHP(k float64) biquad.Coefficients {
	n := 1 / (1 + k)

	return biquad.Coefficients{B0: n, B1: -n, A1: (k - 1) * n}
}
