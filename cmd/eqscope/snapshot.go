package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-eqscope/internal/app"
	"github.com/cwbudde/algo-eqscope/internal/audio"
	"github.com/cwbudde/algo-eqscope/internal/render"
)

func newSnapshotCmd(c *cli) *cobra.Command {
	var (
		out     string
		signal  string
		blocks  int
		assigns []string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Run a synthetic signal through the chain and save the display as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if blocks <= 0 {
				return fmt.Errorf("--blocks must be positive, got %d", blocks)
			}

			img := render.NewImage()

			p, err := app.Build(c.cfg, img, c.logger)
			if err != nil {
				return err
			}
			defer p.Close()

			if err := p.Apply(assigns); err != nil {
				return err
			}

			src, err := audio.ParseSource(signal, c.cfg.Audio.SampleRate)
			if err != nil {
				return err
			}

			pump := audio.NewPump(p.Processor, src)
			perTick := blocksPerTick(c.cfg.Audio.SampleRate, c.cfg.Audio.BlockSize, c.cfg.UI.TickHz)

			for i := range blocks {
				pump.Step()
				if (i+1)%perTick == 0 {
					p.Curve.OnTick()
				}
			}
			p.Curve.OnTick()

			if img.Frames() == 0 {
				return errors.New("no frame was rendered")
			}

			if err := img.Save(out); err != nil {
				return err
			}

			c.logger.Info("snapshot written",
				zap.String("path", out),
				zap.Int("frames", img.Frames()),
				zap.Uint64("dropped_left", p.Processor.Fifo(0).Dropped()),
			)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d blocks, %d frames)\n", out, blocks, img.Frames())

			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "eqscope.png", "output PNG file")
	f.StringVar(&signal, "signal", "sweep", "test signal: sine, noise or sweep")
	f.IntVar(&blocks, "blocks", 200, "number of audio blocks to process")
	f.StringArrayVar(&assigns, "set", nil, "set a parameter, e.g. --set peak_gain=6 (repeatable)")

	return cmd
}

// blocksPerTick is how many audio blocks pass between two display ticks in
// real time.
func blocksPerTick(sampleRate float64, blockSize int, tickHz float64) int {
	return max(int(sampleRate/float64(blockSize)/tickHz+0.5), 1)
}
