package plot

// Point is a screen-space coordinate.
type Point struct {
	X, Y float64
}

// Path is an open polyline. Paths are replaced wholesale, never edited.
type Path []Point

// Rect is an axis-aligned screen rectangle with origin at its top-left.
type Rect struct {
	X, Y, W, H float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Columns returns the number of whole pixel columns, floor(W), or 0.
func (r Rect) Columns() int {
	if !(r.W > 0) {
		return 0
	}

	return int(r.W)
}

// Reduced returns r shrunk by dx on the left and right and by dy on the top
// and bottom. Sizes never go negative.
func (r Rect) Reduced(dx, dy float64) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
	if out.W < 0 {
		out.W = 0
	}

	if out.H < 0 {
		out.H = 0
	}

	return out
}
