package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	b := New(8)
	assert.Equal(t, 8, b.Len())
	assert.Equal(t, make([]float64, 8), b.Samples())
	assert.False(t, b.Filled())

	assert.Zero(t, New(-1).Len())
}

func TestSlide(t *testing.T) {
	tests := []struct {
		name   string
		pushes [][]float64
		want   []float64
	}{
		{"partial", [][]float64{{1, 2}}, []float64{0, 0, 1, 2}},
		{"two pushes", [][]float64{{1, 2, 3}, {4, 5}}, []float64{2, 3, 4, 5}},
		{"exact", [][]float64{{1, 2, 3, 4}}, []float64{1, 2, 3, 4}},
		{"longer than window", [][]float64{{1, 2, 3, 4, 5, 6}}, []float64{3, 4, 5, 6}},
		{"empty", [][]float64{{1}, {}}, []float64{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(4)
			for _, p := range tt.pushes {
				b.Slide(p)
			}

			assert.Equal(t, tt.want, b.Samples())
		})
	}
}

func TestFilled(t *testing.T) {
	b := New(4)
	b.Slide([]float64{1, 2, 3})
	assert.False(t, b.Filled())

	b.Slide([]float64{4})
	assert.True(t, b.Filled())

	b.Zero()
	assert.False(t, b.Filled())
	assert.Equal(t, []float64{0, 0, 0, 0}, b.Samples())
}

func TestSlideDoesNotAllocate(t *testing.T) {
	b := New(1024)
	src := make([]float64, 256)

	assert.Zero(t, testing.AllocsPerRun(100, func() { b.Slide(src) }))
}

func TestZeroLengthIgnoresSlide(t *testing.T) {
	b := New(0)
	b.Slide([]float64{1, 2})
	assert.Empty(t, b.Samples())
}
