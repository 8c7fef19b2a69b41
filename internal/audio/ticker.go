package audio

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Ticker drives a Pump in real time without an audio device: one block every
// blockSize/sampleRate seconds.
type Ticker struct {
	pump   *Pump
	period time.Duration
	logger *zap.Logger
}

// NewTicker returns a headless producer for pump.
func NewTicker(pump *Pump, sampleRate float64, logger *zap.Logger) *Ticker {
	if logger == nil {
		logger = zap.NewNop()
	}

	n := len(pump.left)
	period := time.Duration(float64(n) / sampleRate * float64(time.Second))

	return &Ticker{pump: pump, period: max(period, time.Millisecond), logger: logger.Named("ticker")}
}

// Period returns the time between blocks.
func (t *Ticker) Period() time.Duration { return t.period }

// Run steps the pump until ctx is cancelled.
func (t *Ticker) Run(ctx context.Context) error {
	tick := time.NewTicker(t.period)
	defer tick.Stop()

	t.logger.Info("headless producer started", zap.Duration("period", t.period))

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("headless producer stopped", zap.Uint64("blocks", t.pump.Blocks()))
			return nil
		case <-tick.C:
			t.pump.Step()
		}
	}
}
