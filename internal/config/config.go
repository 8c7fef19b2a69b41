// Package config loads eqscope settings from defaults, an optional YAML file
// and EQSCOPE_* environment variables.
package config

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-eqscope/dsp/window"
	"github.com/cwbudde/algo-eqscope/eq"
)

// EnvPrefix prefixes every environment override, e.g. EQSCOPE_AUDIO_SAMPLE_RATE.
const EnvPrefix = "EQSCOPE"

// Config is the complete application configuration.
type Config struct {
	Audio      AudioConfig      `mapstructure:"audio" yaml:"audio"`
	Analyzer   AnalyzerConfig   `mapstructure:"analyzer" yaml:"analyzer"`
	Transport  TransportConfig  `mapstructure:"transport" yaml:"transport"`
	UI         UIConfig         `mapstructure:"ui" yaml:"ui"`
	Chain      ChainConfig      `mapstructure:"chain" yaml:"chain"`
	Automation AutomationConfig `mapstructure:"automation" yaml:"automation"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
}

// AudioConfig describes the producer stream.
type AudioConfig struct {
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
	BlockSize  int     `mapstructure:"block_size" yaml:"block_size"`
	Channels   int     `mapstructure:"channels" yaml:"channels"`
}

// AnalyzerConfig configures both spectrum analyzers.
type AnalyzerConfig struct {
	FFTSize       int     `mapstructure:"fft_size" yaml:"fft_size"`
	Window        string  `mapstructure:"window" yaml:"window"`
	FloorDB       float64 `mapstructure:"floor_db" yaml:"floor_db"`
	Smoothing     float64 `mapstructure:"smoothing" yaml:"smoothing"`
	FrameCapacity int     `mapstructure:"frame_capacity" yaml:"frame_capacity"`
}

// TransportConfig sizes the per-channel block FIFOs.
type TransportConfig struct {
	Capacity int `mapstructure:"capacity" yaml:"capacity"`
}

// UIConfig sizes the display and sets its tick rate.
type UIConfig struct {
	Width  int     `mapstructure:"width" yaml:"width"`
	Height int     `mapstructure:"height" yaml:"height"`
	TickHz float64 `mapstructure:"tick_hz" yaml:"tick_hz"`
}

// ChainConfig holds the initial filter settings.
type ChainConfig struct {
	LowCutFreq    float64 `mapstructure:"low_cut_freq" yaml:"low_cut_freq"`
	LowCutSlope   int     `mapstructure:"low_cut_slope" yaml:"low_cut_slope"`
	LowCutBypass  bool    `mapstructure:"low_cut_bypass" yaml:"low_cut_bypass"`
	PeakFreq      float64 `mapstructure:"peak_freq" yaml:"peak_freq"`
	PeakGain      float64 `mapstructure:"peak_gain" yaml:"peak_gain"`
	PeakQ         float64 `mapstructure:"peak_q" yaml:"peak_q"`
	PeakBypass    bool    `mapstructure:"peak_bypass" yaml:"peak_bypass"`
	HighCutFreq   float64 `mapstructure:"high_cut_freq" yaml:"high_cut_freq"`
	HighCutSlope  int     `mapstructure:"high_cut_slope" yaml:"high_cut_slope"`
	HighCutBypass bool    `mapstructure:"high_cut_bypass" yaml:"high_cut_bypass"`
	Analyzer      bool    `mapstructure:"analyzer" yaml:"analyzer"`
}

// AutomationConfig points at an optional Lua script that drives parameters.
type AutomationConfig struct {
	Script string `mapstructure:"script" yaml:"script"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// SetDefaults registers every key with its default value. Keys must be
// registered for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	s := eq.DefaultSettings()

	v.SetDefault("audio.sample_rate", 48000.0)
	v.SetDefault("audio.block_size", 512)
	v.SetDefault("audio.channels", 2)

	v.SetDefault("analyzer.fft_size", 2048)
	v.SetDefault("analyzer.window", window.TypeBlackmanHarris4Term.String())
	v.SetDefault("analyzer.floor_db", eq.DefaultFloorDB)
	v.SetDefault("analyzer.smoothing", 0.0)
	v.SetDefault("analyzer.frame_capacity", 8)

	v.SetDefault("transport.capacity", eq.DefaultFifoCapacity)

	v.SetDefault("ui.width", 600)
	v.SetDefault("ui.height", 300)
	v.SetDefault("ui.tick_hz", eq.DefaultTickHz)

	v.SetDefault("chain.low_cut_freq", s.LowCut.Freq)
	v.SetDefault("chain.low_cut_slope", int(s.LowCut.Slope))
	v.SetDefault("chain.low_cut_bypass", s.LowCut.Bypassed)
	v.SetDefault("chain.peak_freq", s.Peak.Freq)
	v.SetDefault("chain.peak_gain", s.Peak.GainDB)
	v.SetDefault("chain.peak_q", s.Peak.Q)
	v.SetDefault("chain.peak_bypass", s.Peak.Bypassed)
	v.SetDefault("chain.high_cut_freq", s.HighCut.Freq)
	v.SetDefault("chain.high_cut_slope", int(s.HighCut.Slope))
	v.SetDefault("chain.high_cut_bypass", s.HighCut.Bypassed)
	v.SetDefault("chain.analyzer", s.AnalyzerEnabled)

	v.SetDefault("automation.script", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads path into v when path is not empty, decodes the result and
// validates it.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "cannot read config file %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "cannot decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// Default returns the configuration with nothing overridden.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		panic(err)
	}

	return cfg
}

// Validate checks every value a component would otherwise reject at
// construction time.
func (c *Config) Validate() error {
	switch {
	case !(c.Audio.SampleRate > 0):
		return errors.Errorf("audio sample rate must be positive, got %v", c.Audio.SampleRate)
	case c.Audio.BlockSize <= 0:
		return errors.Errorf("audio block size must be positive, got %d", c.Audio.BlockSize)
	case c.Audio.Channels < 1 || c.Audio.Channels > 2:
		return errors.Errorf("audio channels must be 1 or 2, got %d", c.Audio.Channels)
	case c.Analyzer.FFTSize < 2 || bits.OnesCount(uint(c.Analyzer.FFTSize)) != 1:
		return errors.Errorf("analyzer fft size must be a power of two, got %d", c.Analyzer.FFTSize)
	case c.Analyzer.FloorDB >= 0:
		return errors.Errorf("analyzer floor must be below 0 dB, got %v", c.Analyzer.FloorDB)
	case c.Analyzer.Smoothing < 0 || c.Analyzer.Smoothing >= 1:
		return errors.Errorf("analyzer smoothing must be in [0, 1), got %v", c.Analyzer.Smoothing)
	case c.Analyzer.FrameCapacity <= 0:
		return errors.Errorf("analyzer frame capacity must be positive, got %d", c.Analyzer.FrameCapacity)
	case c.Transport.Capacity <= 0:
		return errors.Errorf("transport capacity must be positive, got %d", c.Transport.Capacity)
	case c.UI.Width <= 0 || c.UI.Height <= 0:
		return errors.Errorf("ui size must be positive, got %dx%d", c.UI.Width, c.UI.Height)
	case !(c.UI.TickHz > 0):
		return errors.Errorf("ui tick rate must be positive, got %v", c.UI.TickHz)
	}

	if _, err := c.WindowType(); err != nil {
		return err
	}

	return errors.Wrap(c.Chain.Settings().Validate(), "chain")
}

// WindowType resolves Analyzer.Window.
func (c *Config) WindowType() (window.Type, error) {
	t, err := window.Parse(c.Analyzer.Window)
	if err != nil {
		return 0, errors.Wrap(err, "analyzer window")
	}

	return t, nil
}

// Settings converts the chain section into eq settings.
func (c ChainConfig) Settings() eq.Settings {
	return eq.Settings{
		LowCut: eq.StageDescriptor{
			Kind:     eq.StageHighPass,
			Freq:     c.LowCutFreq,
			Slope:    eq.Slope(c.LowCutSlope),
			Bypassed: c.LowCutBypass,
		},
		Peak: eq.StageDescriptor{
			Kind:     eq.StagePeak,
			Freq:     c.PeakFreq,
			GainDB:   c.PeakGain,
			Q:        c.PeakQ,
			Bypassed: c.PeakBypass,
		},
		HighCut: eq.StageDescriptor{
			Kind:     eq.StageLowPass,
			Freq:     c.HighCutFreq,
			Slope:    eq.Slope(c.HighCutSlope),
			Bypassed: c.HighCutBypass,
		},
		AnalyzerEnabled: c.Analyzer,
	}
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode configuration")
	}

	return out, nil
}
