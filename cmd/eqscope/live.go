package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-eqscope/eq"
	"github.com/cwbudde/algo-eqscope/internal/app"
	"github.com/cwbudde/algo-eqscope/internal/audio"
	"github.com/cwbudde/algo-eqscope/internal/automation"
	"github.com/cwbudde/algo-eqscope/internal/viewer"
)

func newLiveCmd(c *cli) *cobra.Command {
	var (
		headless bool
		duration time.Duration
		source   string
		assigns  []string
	)

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Play a test signal through the chain and show the display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			if headless {
				return c.runHeadless(ctx, source, assigns)
			}

			return c.runWindow(ctx, source, assigns)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&headless, "headless", false, "no window or audio device: tick in the background and log frames")
	f.DurationVar(&duration, "duration", 0, "stop after this long (0 runs until interrupted)")
	f.StringVar(&source, "signal", "sweep", "test signal: sine, noise or sweep")
	f.StringArrayVar(&assigns, "set", nil, "set a parameter, e.g. --set peak_gain=6 (repeatable)")
	f.String("script", "", "Lua automation script")
	c.bind(f, "automation.script", "script")

	return cmd
}

// background runs fn on its own goroutine and collects its error.
type background struct {
	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
}

func (b *background) Go(fn func() error) {
	b.wg.Add(1)

	go func() {
		defer b.wg.Done()

		if err := fn(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			b.mu.Lock()
			b.errs = append(b.errs, err)
			b.mu.Unlock()
		}
	}()
}

func (b *background) Wait() error {
	b.wg.Wait()
	return errors.Join(b.errs...)
}

func (c *cli) startCommon(ctx context.Context, bg *background, p *app.Pipeline, source string, assigns []string) (*audio.Pump, error) {
	if err := p.Apply(assigns); err != nil {
		return nil, err
	}

	src, err := audio.ParseSource(source, c.cfg.Audio.SampleRate)
	if err != nil {
		return nil, err
	}

	if script := c.cfg.Automation.Script; script != "" {
		engine := automation.New(p.Params, c.logger)
		bg.Go(func() error { return engine.RunFile(ctx, script) })
	}

	return audio.NewPump(p.Processor, src), nil
}

func (c *cli) runHeadless(ctx context.Context, source string, assigns []string) error {
	p, err := app.Build(c.cfg, &sceneLogger{logger: c.logger.Named("scene"), every: 60}, c.logger)
	if err != nil {
		return err
	}
	defer p.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var bg background

	pump, err := c.startCommon(ctx, &bg, p, source, assigns)
	if err != nil {
		return err
	}

	ticker := audio.NewTicker(pump, c.cfg.Audio.SampleRate, c.logger)
	bg.Go(func() error { return ticker.Run(ctx) })
	bg.Go(func() error { return p.Curve.Run(ctx, c.cfg.UI.TickHz) })

	<-ctx.Done()

	return bg.Wait()
}

func (c *cli) runWindow(ctx context.Context, source string, assigns []string) error {
	frame := &viewer.Frame{}

	p, err := app.Build(c.cfg, frame, c.logger)
	if err != nil {
		return err
	}
	defer p.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var bg background

	pump, err := c.startCommon(ctx, &bg, p, source, assigns)
	if err != nil {
		return err
	}

	player, err := audio.NewOto(pump, int(c.cfg.Audio.SampleRate), c.logger)
	if err != nil {
		c.logger.Warn("no audio device, producing in the background", zap.Error(err))

		ticker := audio.NewTicker(pump, c.cfg.Audio.SampleRate, c.logger)
		bg.Go(func() error { return ticker.Run(ctx) })
	} else {
		bg.Go(func() error { return player.Run(ctx) })
	}

	err = viewer.Run(ctx, p.Curve, p.Params, frame, viewer.Options{
		Title:  "eqscope",
		Width:  c.cfg.UI.Width,
		Height: c.cfg.UI.Height,
		TickHz: c.cfg.UI.TickHz,
	}, c.logger)

	cancel()

	return errors.Join(err, bg.Wait())
}

// sceneLogger is the headless renderer: it logs a summary of every n-th
// scene.
type sceneLogger struct {
	logger *zap.Logger
	every  int
	count  int
}

func (s *sceneLogger) Render(sc eq.Scene) {
	s.count++
	if s.every > 1 && (s.count-1)%s.every != 0 {
		return
	}

	s.logger.Info("frame",
		zap.Int("n", s.count),
		zap.Int("items", len(sc.Items)),
		zap.Int("analyzer_left", sc.Count(eq.RoleAnalyzerLeft)),
		zap.Int("analyzer_right", sc.Count(eq.RoleAnalyzerRight)),
	)
}
