// Package app wires configuration into a running eq pipeline.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-eqscope/dsp/plot"
	"github.com/cwbudde/algo-eqscope/dsp/spectrum"
	"github.com/cwbudde/algo-eqscope/eq"
	"github.com/cwbudde/algo-eqscope/internal/config"
)

// Pipeline is one producer/consumer set: parameters and chain, the
// real-time processor, a path producer per analysed channel and the
// response curve consuming them.
type Pipeline struct {
	Config    *config.Config
	Params    *eq.Parameters
	Chain     *eq.Chain
	Processor *eq.Processor
	Producers []*eq.PathProducer
	Curve     *eq.ResponseCurve
}

// Build assembles a prepared pipeline. With one configured channel only the
// left FIFO is analysed.
func Build(cfg *config.Config, renderer eq.Renderer, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	wt, err := cfg.WindowType()
	if err != nil {
		return nil, err
	}

	fs := cfg.Audio.SampleRate

	p := &Pipeline{
		Config: cfg,
		Params: eq.NewParameters(cfg.Chain.Settings()),
		Chain:  eq.NewChain(fs),
	}
	p.Chain.Rebuild(p.Params.Settings(), fs)

	p.Processor = eq.NewProcessor(p.Chain, cfg.Transport.Capacity)
	if err := p.Processor.Prepare(fs, cfg.Audio.BlockSize); err != nil {
		return nil, err
	}

	producers := [2]*eq.PathProducer{}
	for ch := range cfg.Audio.Channels {
		a, err := spectrum.New(
			spectrum.WithSize(cfg.Analyzer.FFTSize),
			spectrum.WithWindow(wt),
			spectrum.WithSampleRate(fs),
			spectrum.WithFrameCapacity(cfg.Analyzer.FrameCapacity),
			spectrum.WithSmoothing(cfg.Analyzer.Smoothing),
		)
		if err != nil {
			return nil, fmt.Errorf("app: analyzer %d: %w", ch, err)
		}

		producers[ch] = eq.NewPathProducer(p.Processor.Fifo(ch), a, cfg.Analyzer.FloorDB)
		p.Producers = append(p.Producers, producers[ch])
	}

	opts := []eq.CurveOption{eq.WithLogger(logger), eq.WithFloorDB(cfg.Analyzer.FloorDB)}
	if renderer != nil {
		opts = append(opts, eq.WithRenderer(renderer))
	}

	p.Curve = eq.NewResponseCurve(p.Params, p.Chain, producers[eq.ChannelLeft], producers[eq.ChannelRight], opts...)
	p.Curve.SetBounds(plot.Rect{W: float64(cfg.UI.Width), H: float64(cfg.UI.Height)})

	logger.Debug("pipeline ready",
		zap.Float64("sample_rate", fs),
		zap.Int("block_size", cfg.Audio.BlockSize),
		zap.Int("fft_size", cfg.Analyzer.FFTSize),
		zap.Stringer("window", wt),
		zap.Int("channels", len(p.Producers)),
	)

	return p, nil
}

// Close detaches the response curve from the parameters.
func (p *Pipeline) Close() {
	p.Curve.Close()
}

// Apply sets parameters from "name=value" assignments, as given on the
// command line.
func (p *Pipeline) Apply(assignments []string) error {
	for _, a := range assignments {
		if err := Assign(p.Params, a); err != nil {
			return err
		}
	}

	return nil
}
