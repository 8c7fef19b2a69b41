//go:build !headless

package viewer

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-eqscope/dsp/plot"
	"github.com/cwbudde/algo-eqscope/eq"
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int
	Height int
	TickHz float64
}

type game struct {
	ctx    context.Context
	curve  *eq.ResponseCurve
	params *eq.Parameters
	frame  *Frame
	logger *zap.Logger

	tex    *ebiten.Image
	width  int
	height int
}

// Run opens the window and ticks curve at opts.TickHz until the window is
// closed or ctx is cancelled. frame must be the renderer curve was built
// with. Pressing A toggles the analyzer.
func Run(ctx context.Context, curve *eq.ResponseCurve, params *eq.Parameters, frame *Frame, opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(max(int(opts.TickHz+0.5), 1))

	g := &game{
		ctx:    ctx,
		curve:  curve,
		params: params,
		frame:  frame,
		logger: logger.Named("viewer"),
		width:  opts.Width,
		height: opts.Height,
	}

	curve.SetBounds(bounds(opts.Width, opts.Height))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	return nil
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		on := 1.0
		if g.curve.AnalysisEnabled() {
			on = 0
		}

		if _, err := g.params.Set(eq.AnalyzerEnable, on); err != nil {
			g.logger.Warn("toggle analyzer", zap.Error(err))
		}
	}

	g.curve.OnTick()

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	img, dirty := g.frame.Take()
	if img == nil {
		return
	}

	b := img.Bounds()
	if g.tex == nil || g.tex.Bounds().Dx() != b.Dx() || g.tex.Bounds().Dy() != b.Dy() {
		g.tex = ebiten.NewImage(b.Dx(), b.Dy())
		dirty = true
	}

	if dirty {
		g.tex.WritePixels(img.Pix)
	}

	screen.DrawImage(g.tex, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.curve.SetBounds(bounds(outsideWidth, outsideHeight))
	}

	return outsideWidth, outsideHeight
}

func bounds(w, h int) plot.Rect {
	return plot.Rect{W: float64(w), H: float64(h)}
}
