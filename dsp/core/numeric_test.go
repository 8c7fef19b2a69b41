package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name         string
		v, lo, hi, w float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -1, 0, 1, 0},
		{"above", 2, 0, 1, 1},
		{"swapped bounds", 2, 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.w, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestGainToDB(t *testing.T) {
	const floor = -48.0

	tests := []struct {
		name string
		gain float64
		want float64
	}{
		{"unity", 1, 0},
		{"double", 2, 20 * math.Log10(2)},
		{"zero", 0, floor},
		{"negative", -1, floor},
		{"nan", math.NaN(), floor},
		{"inf", math.Inf(1), floor},
		{"under floor", 1e-6, floor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GainToDB(tt.gain, floor), 1e-12)
		})
	}
}
