package eq

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-eqscope/dsp/plot"
)

// DefaultTickHz is the consumer tick rate.
const DefaultTickHz = 60.0

// DefaultBounds is used until SetBounds is called.
var DefaultBounds = plot.Rect{W: 600, H: 300}

// CurveOption configures a ResponseCurve.
type CurveOption func(*ResponseCurve)

// WithRenderer sets the renderer that receives each new Scene.
func WithRenderer(r Renderer) CurveOption {
	return func(c *ResponseCurve) { c.renderer = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) CurveOption {
	return func(c *ResponseCurve) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFloorDB sets the analyzer floor used for the level labels.
func WithFloorDB(db float64) CurveOption {
	return func(c *ResponseCurve) { c.floorDB = db }
}

// ResponseCurve is the consumer side of the display. Every tick it drains
// the analyzer paths, rebuilds the chain if a parameter changed since the
// last tick, and hands a fresh Scene to its Renderer when anything visible
// changed.
//
// OnTick must be called from one goroutine at a time. OnParameterChanged,
// SetBounds and SetAnalysisEnabled are safe from any goroutine.
type ResponseCurve struct {
	params    *Parameters
	chain     *Chain
	producers [numChannels]*PathProducer
	renderer  Renderer
	logger    *zap.Logger
	floorDB   float64

	gate     Gate
	analysis atomic.Bool
	stale    atomic.Bool
	bounds   atomic.Pointer[plot.Rect]
	rebuilds atomic.Uint64
}

// NewResponseCurve creates the component and subscribes it to params. Either
// producer may be nil. Call Close to unsubscribe.
func NewResponseCurve(params *Parameters, chain *Chain, left, right *PathProducer, opts ...CurveOption) *ResponseCurve {
	c := &ResponseCurve{
		params:    params,
		chain:     chain,
		producers: [numChannels]*PathProducer{left, right},
		logger:    zap.NewNop(),
		floorDB:   DefaultFloorDB,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.analysis.Store(params.Get(AnalyzerEnable) != 0)
	c.stale.Store(true)
	c.gate.MarkDirty()
	params.AddListener(c)

	return c
}

// Close unsubscribes from parameter changes.
func (c *ResponseCurve) Close() {
	c.params.RemoveListener(c)
}

// OnParameterChanged marks the chain for a rebuild on the next tick.
func (c *ResponseCurve) OnParameterChanged(id ParamID, value float64) {
	if id == AnalyzerEnable {
		c.SetAnalysisEnabled(value != 0)
	}

	c.gate.MarkDirty()
}

// SetAnalysisEnabled shows or hides the analyzer paths.
func (c *ResponseCurve) SetAnalysisEnabled(on bool) {
	if c.analysis.Swap(on) != on {
		c.stale.Store(true)
	}
}

// AnalysisEnabled reports whether analyzer paths are drawn.
func (c *ResponseCurve) AnalysisEnabled() bool { return c.analysis.Load() }

// SetBounds sets the component bounds.
func (c *ResponseCurve) SetBounds(r plot.Rect) {
	c.bounds.Store(&r)
	c.stale.Store(true)
}

// Bounds returns the component bounds.
func (c *ResponseCurve) Bounds() plot.Rect {
	if r := c.bounds.Load(); r != nil {
		return *r
	}

	return DefaultBounds
}

// Rebuilds returns how many times the chain was rebuilt by OnTick.
func (c *ResponseCurve) Rebuilds() uint64 { return c.rebuilds.Load() }

// OnTick runs one consumer cycle and reports whether a new Scene was
// rendered.
func (c *ResponseCurve) OnTick() bool {
	fs := c.chain.SampleRate()
	area := AnalysisArea(c.Bounds())

	changed := c.stale.Swap(false)

	if c.analysis.Load() {
		for _, p := range c.producers {
			if p != nil && p.Process(area, fs) {
				changed = true
			}
		}
	}

	if c.gate.ConsumeDirty() {
		c.chain.Rebuild(c.params.Settings(), fs)
		c.rebuilds.Add(1)
		c.logger.Debug("chain rebuilt", zap.Float64("sample_rate", fs))

		changed = true
	}

	if !changed {
		return false
	}

	if c.renderer != nil {
		c.renderer.Render(c.Scene())
	}

	return true
}

// Scene assembles the current display: grid and labels, analyzer paths
// when enabled, the border and the filter response on top.
func (c *ResponseCurve) Scene() Scene {
	bounds := c.Bounds()
	area := AnalysisArea(bounds)
	fs := c.chain.SampleRate()

	items := buildGrid(bounds, c.floorDB)

	if c.analysis.Load() {
		roles := [numChannels]Role{RoleAnalyzerLeft, RoleAnalyzerRight}
		for ch, p := range c.producers {
			if p == nil {
				continue
			}

			if path, ok := p.Path(); ok {
				items = append(items, Drawable{Role: roles[ch], Path: path})
			}
		}
	}

	items = append(items,
		Drawable{Role: RoleBorder, Path: borderPath(RenderArea(bounds))},
		Drawable{
			Role: RoleResponseCurve,
			Path: plot.ResponsePath(c.chain.ResponseDB(area.Columns(), fs), area, plot.ResponseMinDB, plot.ResponseMaxDB),
		},
	)

	return Scene{Bounds: bounds, Items: items}
}

// Run calls OnTick at hz until ctx is cancelled. It returns only after the
// last tick has finished, so the caller may release the component once Run
// returns.
func (c *ResponseCurve) Run(ctx context.Context, hz float64) error {
	if !(hz > 0) {
		return fmt.Errorf("eq: tick rate must be > 0, got %v", hz)
	}

	ticker := time.NewTicker(time.Duration(float64(time.Second) / hz))
	defer ticker.Stop()

	c.logger.Debug("response curve running", zap.Float64("hz", hz))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.OnTick()
		}
	}
}
