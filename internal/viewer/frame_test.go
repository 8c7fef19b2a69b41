package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-eqscope/dsp/plot"
	"github.com/cwbudde/algo-eqscope/eq"
)

func TestFrame_RendersAndTracksDirty(t *testing.T) {
	f := &Frame{}

	img, dirty := f.Take()
	assert.Nil(t, img)
	assert.False(t, dirty)

	params := eq.NewParameters(eq.DefaultSettings())
	curve := eq.NewResponseCurve(params, eq.NewChain(48000), nil, nil, eq.WithRenderer(f))
	defer curve.Close()

	require.True(t, curve.OnTick())

	img, dirty = f.Take()
	require.NotNil(t, img)
	assert.True(t, dirty)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	_, dirty = f.Take()
	assert.False(t, dirty)

	first := img
	_, err := params.Set(eq.PeakGain, 9)
	require.NoError(t, err)
	require.True(t, curve.OnTick())

	img, dirty = f.Take()
	assert.True(t, dirty)
	assert.Same(t, first, img)

	curve.SetBounds(plot.Rect{W: 320, H: 200})
	require.True(t, curve.OnTick())

	img, _ = f.Take()
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 3, f.Count())
}
