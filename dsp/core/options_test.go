package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessorConfig(t *testing.T) {
	cfg := NewProcessorConfig(WithSampleRate(96000), WithBlockSize(2048), nil)

	assert.Equal(t, ProcessorConfig{SampleRate: 96000, BlockSize: 2048, Channels: 2}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestProcessorConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		opt  ProcessorOption
	}{
		{"zero rate", WithSampleRate(0)},
		{"nan rate", WithSampleRate(math.NaN())},
		{"inf rate", WithSampleRate(math.Inf(1))},
		{"zero block", WithBlockSize(0)},
		{"no channels", WithChannels(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, NewProcessorConfig(tt.opt).Validate(), ErrInvalidConfig)
		})
	}
}
