// Package viewer shows a live eq.ResponseCurve in an ebiten window.
package viewer

import (
	"image"
	"math"

	"github.com/cwbudde/algo-eqscope/eq"
	"github.com/cwbudde/algo-eqscope/internal/render"
)

// Frame is an eq.Renderer that rasterizes into a reusable RGBA image. It is
// used from the ebiten game goroutine only.
type Frame struct {
	img   *image.RGBA
	dirty bool
	count int
}

// Render draws s, reallocating the image only when the bounds change size.
func (f *Frame) Render(s eq.Scene) {
	w := max(int(math.Ceil(s.Bounds.Right())), 1)
	h := max(int(math.Ceil(s.Bounds.Bottom())), 1)

	if f.img == nil || f.img.Rect.Dx() != w || f.img.Rect.Dy() != h {
		f.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	render.Draw(f.img, s)
	f.dirty = true
	f.count++
}

// Take returns the image and whether it changed since the last Take.
func (f *Frame) Take() (*image.RGBA, bool) {
	dirty := f.dirty
	f.dirty = false

	return f.img, dirty
}

// Count returns the number of scenes rendered.
func (f *Frame) Count() int { return f.count }
