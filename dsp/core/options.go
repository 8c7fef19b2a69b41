package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by ProcessorConfig.Validate.
var ErrInvalidConfig = errors.New("core: invalid processor config")

// ProcessorConfig is the audio format a processor is prepared for.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
	Channels   int
}

// ProcessorOption sets one field of a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig is 48 kHz stereo in 512-sample blocks.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: 48000, BlockSize: 512, Channels: 2}
}

func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) { cfg.SampleRate = sampleRate }
}

func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) { cfg.BlockSize = blockSize }
}

func WithChannels(channels int) ProcessorOption {
	return func(cfg *ProcessorConfig) { cfg.Channels = channels }
}

// NewProcessorConfig applies opts over DefaultProcessorConfig. The result is
// not validated.
func NewProcessorConfig(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Validate reports the first field that cannot be processed.
func (c ProcessorConfig) Validate() error {
	switch {
	case !(c.SampleRate > 0) || !IsFinite(c.SampleRate):
		return fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, c.SampleRate)
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size %d", ErrInvalidConfig, c.BlockSize)
	case c.Channels <= 0:
		return fmt.Errorf("%w: %d channels", ErrInvalidConfig, c.Channels)
	}

	return nil
}
