//go:build !headless

package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"go.uber.org/zap"
)

// Oto plays pump output on the default audio device. The device callback is
// the producer: every buffer it pulls runs the Processor.
type Oto struct {
	ctx    *oto.Context
	player *oto.Player
	reader *pcmReader
	logger *zap.Logger
}

// NewOto opens the default device at sampleRate.
func NewOto(pump *Pump, sampleRate int, logger *zap.Logger) (*Oto, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   20 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	<-ready

	o := &Oto{ctx: ctx, reader: newPCMReader(pump), logger: logger.Named("oto")}
	o.player = ctx.NewPlayer(o.reader)

	return o, nil
}

// Run plays until ctx is cancelled.
func (o *Oto) Run(ctx context.Context) error {
	o.player.Play()
	o.logger.Info("playback started")

	<-ctx.Done()

	if err := o.player.Close(); err != nil {
		return fmt.Errorf("audio: close player: %w", err)
	}

	o.logger.Info("playback stopped", zap.Uint64("blocks", o.reader.pump.Blocks()))

	return nil
}
