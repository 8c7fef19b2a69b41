package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-eqscope/dsp/window"
	"github.com/cwbudde/algo-eqscope/eq"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 48000.0, cfg.Audio.SampleRate)
	assert.Equal(t, 512, cfg.Audio.BlockSize)
	assert.Equal(t, 2048, cfg.Analyzer.FFTSize)
	assert.Equal(t, eq.DefaultFloorDB, cfg.Analyzer.FloorDB)
	assert.Equal(t, eq.DefaultFifoCapacity, cfg.Transport.Capacity)
	assert.Equal(t, eq.DefaultSettings(), cfg.Chain.Settings())
	assert.Equal(t, "info", cfg.Log.Level)

	wt, err := cfg.WindowType()
	require.NoError(t, err)
	assert.Equal(t, window.TypeBlackmanHarris4Term, wt)

	assert.Equal(t, cfg, Default())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eqscope.yaml")
	doc := `
audio:
  sample_rate: 44100
  block_size: 256
analyzer:
  window: hann
  fft_size: 4096
chain:
  peak_gain: 6
  low_cut_slope: 48
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, 44100.0, cfg.Audio.SampleRate)
	assert.Equal(t, 256, cfg.Audio.BlockSize)
	assert.Equal(t, 4096, cfg.Analyzer.FFTSize)
	assert.Equal(t, 6.0, cfg.Chain.PeakGain)
	assert.Equal(t, eq.Slope48, cfg.Chain.Settings().LowCut.Slope)
	assert.Equal(t, 2, cfg.Audio.Channels)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EQSCOPE_AUDIO_SAMPLE_RATE", "96000")
	t.Setenv("EQSCOPE_LOG_LEVEL", "debug")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 96000.0, cfg.Audio.SampleRate)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, "sample rate"},
		{"block size", func(c *Config) { c.Audio.BlockSize = -1 }, "block size"},
		{"channels", func(c *Config) { c.Audio.Channels = 3 }, "channels"},
		{"fft size", func(c *Config) { c.Analyzer.FFTSize = 1000 }, "power of two"},
		{"floor", func(c *Config) { c.Analyzer.FloorDB = 3 }, "floor"},
		{"smoothing", func(c *Config) { c.Analyzer.Smoothing = 1 }, "smoothing"},
		{"frames", func(c *Config) { c.Analyzer.FrameCapacity = 0 }, "frame capacity"},
		{"transport", func(c *Config) { c.Transport.Capacity = 0 }, "transport"},
		{"ui size", func(c *Config) { c.UI.Width = 0 }, "ui size"},
		{"tick", func(c *Config) { c.UI.TickHz = 0 }, "tick rate"},
		{"window", func(c *Config) { c.Analyzer.Window = "kaiser-bessel" }, "analyzer window"},
		{"chain", func(c *Config) { c.Chain.PeakQ = 50 }, "chain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestYAML(t *testing.T) {
	out, err := Default().YAML()
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "sample_rate: 48000")
	assert.Contains(t, s, "window: blackman-harris")
	assert.Contains(t, s, "peak_freq: 750")
}
