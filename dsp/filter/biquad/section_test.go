package biquad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smoother is a stable lowpass-like section with a short impulse response.
var smoother = Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

func TestPassthrough(t *testing.T) {
	p := Passthrough()
	assert.True(t, p.IsPassthrough())
	assert.False(t, smoother.IsPassthrough())
	assert.InDelta(t, 1, p.Magnitude(1234, 48000), 1e-15)

	s := NewSection(p)
	for _, x := range []float64{1, -0.5, 0.25, 3} {
		assert.Equal(t, x, s.ProcessSample(x))
	}
}

func TestSectionImpulse(t *testing.T) {
	s := NewSection(smoother)

	got := make([]float64, 5)
	for i := range got {
		x := 0.0
		if i == 0 {
			x = 1
		}

		got[i] = s.ProcessSample(x)
	}

	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044}
	assert.InDeltaSlice(t, want, got, 1e-12)
}

func TestSectionBlockMatchesSamples(t *testing.T) {
	in := []float64{1, 0.3, -0.7, 0.2, 0, 0, 0.9, -1}

	bySample := NewSection(smoother)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = bySample.ProcessSample(x)
	}

	byBlock := NewSection(smoother)
	got := append([]float64(nil), in...)
	byBlock.ProcessBlock(got[:3])
	byBlock.ProcessBlock(got[3:])

	assert.InDeltaSlice(t, want, got, 1e-15)
}

func TestSectionReset(t *testing.T) {
	s := NewSection(smoother)
	s.ProcessSample(1)
	s.Reset()

	assert.Equal(t, 0.25, s.ProcessSample(1))
}

func TestMagnitudeAtDCAndNyquist(t *testing.T) {
	const fs = 48000.0

	// H(1) = sum(b) / sum(1, a); H(-1) = 0 for b = [1 2 1]
	dc := (smoother.B0 + smoother.B1 + smoother.B2) / (1 + smoother.A1 + smoother.A2)
	assert.InDelta(t, dc, smoother.Magnitude(0, fs), 1e-12)
	assert.InDelta(t, 0, smoother.Magnitude(fs/2, fs), 1e-7)
	assert.InDelta(t, 20*math.Log10(dc), smoother.MagnitudeDB(0, fs), 1e-9)
}

func TestMagnitudeMatchesSteadyState(t *testing.T) {
	const (
		fs   = 48000.0
		freq = 3000.0
		n    = 4800
	)

	s := NewSection(smoother)
	energy := 0.0

	for i := range n {
		y := s.ProcessSample(math.Sin(2 * math.Pi * freq * float64(i) / fs))
		if i >= n/2 {
			energy += y * y
		}
	}

	// n/2 samples hold a whole number of periods
	amp := math.Sqrt(2 * energy / (n / 2))
	require.Greater(t, amp, 0.0)
	assert.InDelta(t, smoother.Magnitude(freq, fs), amp, 1e-6)
}
