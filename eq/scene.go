package eq

import "github.com/cwbudde/algo-eqscope/dsp/plot"

// Role tags what a Drawable represents. Renderers pick their styling by
// switching on it.
type Role int

const (
	RoleGrid          Role = iota // frequency and gain grid lines
	RoleGridLabel                 // grid axis labels
	RoleResponseCurve             // chain magnitude response
	RoleAnalyzerLeft              // left channel spectrum
	RoleAnalyzerRight             // right channel spectrum
	RoleBorder                    // plot frame
)

func (r Role) String() string {
	switch r {
	case RoleGrid:
		return "grid"
	case RoleGridLabel:
		return "grid-label"
	case RoleResponseCurve:
		return "response-curve"
	case RoleAnalyzerLeft:
		return "analyzer-left"
	case RoleAnalyzerRight:
		return "analyzer-right"
	case RoleBorder:
		return "border"
	default:
		return "unknown"
	}
}

// Align is the horizontal text anchor of a label.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Drawable is one element of a Scene. Paths are polylines; labels carry
// their text in Label, anchored at Anchor.
type Drawable struct {
	Role     Role
	Path     plot.Path
	Label    string
	Anchor   plot.Point
	Align    Align
	Emphasis bool
}

// Scene is everything a renderer needs for one frame.
type Scene struct {
	Bounds plot.Rect
	Items  []Drawable
}

// Count returns how many items have role r.
func (s Scene) Count(r Role) int {
	n := 0

	for _, it := range s.Items {
		if it.Role == r {
			n++
		}
	}

	return n
}

// Renderer draws a Scene.
type Renderer interface {
	Render(Scene)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Scene)

// Render calls f(s).
func (f RendererFunc) Render(s Scene) { f(s) }

// RenderArea is the part of bounds framed by the border: 12 px reserved on
// top for frequency labels, 20 px on each side for level labels.
func RenderArea(bounds plot.Rect) plot.Rect {
	return plot.Rect{
		X: bounds.X + 20,
		Y: bounds.Y + 12,
		W: max(bounds.W-40, 0),
		H: max(bounds.H-14, 0),
	}
}

// AnalysisArea is the plotting area inside the border.
func AnalysisArea(bounds plot.Rect) plot.Rect {
	r := RenderArea(bounds)
	r.Y += 4
	r.H = max(r.H-8, 0)

	return r
}

func buildGrid(bounds plot.Rect, floorDB float64) []Drawable {
	area := AnalysisArea(bounds)
	freqs := plot.FrequencyMarks(area)
	gains := plot.GainMarks(area)
	levels := plot.AnalyzerMarks(area, floorDB)

	items := make([]Drawable, 0, 2*len(freqs)+3*len(gains))

	for _, m := range freqs {
		items = append(items, Drawable{
			Role: RoleGrid,
			Path: plot.Path{{X: m.Pos, Y: area.Top()}, {X: m.Pos, Y: area.Bottom()}},
		})
	}

	for _, m := range gains {
		items = append(items, Drawable{
			Role:     RoleGrid,
			Path:     plot.Path{{X: area.Left(), Y: m.Pos}, {X: area.Right(), Y: m.Pos}},
			Emphasis: m.Value == 0,
		})
	}

	for _, m := range freqs {
		items = append(items, Drawable{
			Role:   RoleGridLabel,
			Label:  m.Label,
			Anchor: plot.Point{X: m.Pos, Y: bounds.Y + 1},
		})
	}

	for i, m := range gains {
		items = append(items,
			Drawable{
				Role:     RoleGridLabel,
				Label:    m.Label,
				Anchor:   plot.Point{X: bounds.Right(), Y: m.Pos},
				Align:    AlignRight,
				Emphasis: m.Value == 0,
			},
			Drawable{
				Role:   RoleGridLabel,
				Label:  levels[i].Label,
				Anchor: plot.Point{X: bounds.X + 1, Y: m.Pos},
				Align:  AlignLeft,
			},
		)
	}

	return items
}

func borderPath(r plot.Rect) plot.Path {
	return plot.Path{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Top()},
	}
}
