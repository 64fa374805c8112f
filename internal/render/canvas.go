package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Canvas is the oversized working image glyphs are drawn onto.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

func (c *Canvas) Image() *image.RGBA { return c.img }

// Plot writes a pixel whose green channel is the coverage. Points outside
// the canvas are dropped.
func (c *Canvas) Plot(x, y int, coverage float64) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, color.RGBA{
		R: 0,
		G: uint8(math.Round(255 * math.Min(1, math.Max(0, coverage)))),
		B: 0,
		A: 255,
	})
}

// Crop copies r out of the canvas into a new image anchored at (0, 0).
func (c *Canvas) Crop(r image.Rectangle) *image.RGBA {
	r = r.Intersect(c.img.Rect)
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, c.img, r, draw.Src, nil)
	return dst
}

// glyphWriter places one glyph's pixels on the canvas and remembers the
// lowest row it reached.
type glyphWriter struct {
	canvas  *Canvas
	x, y    int
	padding int

	drawn  bool
	bottom int
}

func (w *glyphWriter) Visit(x, y int, coverage float64) {
	cx, cy := w.x+x, w.y+y
	if !w.drawn || cy+w.padding > w.bottom {
		w.bottom = cy + w.padding
	}
	w.drawn = true
	w.canvas.Plot(cx, cy, coverage)
}
