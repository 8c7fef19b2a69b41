// Package render rasterizes eq scenes into RGBA images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/cwbudde/algo-eqscope/dsp/plot"
	"github.com/cwbudde/algo-eqscope/eq"
)

// Background fills the image before anything is drawn.
var Background = color.RGBA{A: 0xff}

// Style is how one role is drawn.
type Style struct {
	Color color.RGBA
	Width float64
}

// StyleOf returns the style for role. Emphasized items are drawn brighter.
func StyleOf(role eq.Role, emphasis bool) Style {
	switch role {
	case eq.RoleGrid:
		if emphasis {
			return Style{color.RGBA{0x00, 0xaa, 0x00, 0xff}, 1}
		}

		return Style{color.RGBA{0x69, 0x69, 0x69, 0xff}, 1}
	case eq.RoleGridLabel:
		if emphasis {
			return Style{color.RGBA{0x00, 0xdd, 0x00, 0xff}, 1}
		}

		return Style{color.RGBA{0xd3, 0xd3, 0xd3, 0xff}, 1}
	case eq.RoleResponseCurve:
		return Style{color.RGBA{0xff, 0xff, 0xff, 0xff}, 2}
	case eq.RoleAnalyzerLeft:
		return Style{color.RGBA{0x87, 0xce, 0xeb, 0xff}, 1}
	case eq.RoleAnalyzerRight:
		return Style{color.RGBA{0xff, 0xff, 0xe0, 0xff}, 1}
	case eq.RoleBorder:
		return Style{color.RGBA{0xff, 0xa5, 0x00, 0xff}, 1}
	default:
		return Style{color.RGBA{0xff, 0x00, 0xff, 0xff}, 1}
	}
}

// Draw renders s onto dst in item order, so later items cover earlier ones.
func Draw(dst draw.Image, s eq.Scene) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(Background), image.Point{}, draw.Src)

	ras := vector.NewRasterizer(b.Dx(), b.Dy())

	for _, it := range s.Items {
		st := StyleOf(it.Role, it.Emphasis)

		if it.Label != "" {
			drawLabel(dst, it, st.Color)
			continue
		}

		if len(it.Path) < 2 {
			continue
		}

		ras.Reset(b.Dx(), b.Dy())
		strokePath(ras, it.Path, st.Width, b.Min)
		ras.Draw(dst, b, image.NewUniform(st.Color), image.Point{})
	}
}

// strokePath adds one quad per segment to ras. Quads share orientation, so
// overlaps at joints saturate instead of cancelling.
func strokePath(ras *vector.Rasterizer, p plot.Path, width float64, origin image.Point) {
	half := width / 2
	ox, oy := float64(origin.X), float64(origin.Y)

	for i := 1; i < len(p); i++ {
		x0, y0 := p[i-1].X-ox, p[i-1].Y-oy
		x1, y1 := p[i].X-ox, p[i].Y-oy

		dx, dy := x1-x0, y1-y0
		l := math.Hypot(dx, dy)
		if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			continue
		}

		nx, ny := -dy/l*half, dx/l*half
		// Extend each segment by half the width so joints close.
		ex, ey := dx/l*half, dy/l*half

		ras.MoveTo(float32(x0+nx-ex), float32(y0+ny-ey))
		ras.LineTo(float32(x1+nx+ex), float32(y1+ny+ey))
		ras.LineTo(float32(x1-nx+ex), float32(y1-ny+ey))
		ras.LineTo(float32(x0-nx-ex), float32(y0-ny-ey))
		ras.ClosePath()
	}
}

func drawLabel(dst draw.Image, it eq.Drawable, c color.RGBA) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, it.Label).Ceil()

	x := int(math.Round(it.Anchor.X))
	switch it.Align {
	case eq.AlignCenter:
		x -= w / 2
	case eq.AlignRight:
		x -= w
	}

	// Frequency labels hang below their anchor; level labels are centred on
	// their grid line.
	y := int(math.Round(it.Anchor.Y))
	if it.Align == eq.AlignCenter {
		y += face.Metrics().Ascent.Ceil()
	} else {
		y += face.Metrics().Ascent.Ceil() / 2
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(it.Label)
}

// Image is an eq.Renderer that keeps the most recent scene as an RGBA image.
type Image struct {
	mu     sync.Mutex
	img    *image.RGBA
	frames int
}

// NewImage returns an empty Image renderer.
func NewImage() *Image { return &Image{} }

// Render rasterizes s into a fresh image covering s.Bounds.
func (r *Image) Render(s eq.Scene) {
	w := int(math.Ceil(s.Bounds.Right()))
	h := int(math.Ceil(s.Bounds.Bottom()))

	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	Draw(img, s)

	r.mu.Lock()
	r.img = img
	r.frames++
	r.mu.Unlock()
}

// Image returns the last rendered image, or nil.
func (r *Image) Image() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.img
}

// Frames returns the number of scenes rendered.
func (r *Image) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.frames
}

// Encode writes the last image as PNG.
func (r *Image) Encode(w io.Writer) error {
	img := r.Image()
	if img == nil {
		return errNoFrame
	}

	return png.Encode(w, img)
}

// Save writes the last image as a PNG file.
func (r *Image) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return r.Encode(f)
}
