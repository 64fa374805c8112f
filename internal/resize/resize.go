package resize

import (
	"image"
	"math"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// DefaultWidth is the number of columns of the generated character grid.
const DefaultWidth = 36

type Resizer struct {
	width  uint
	interp resize.InterpolationFunction
}

// NewResizer returns a Resizer that shrinks images to at most width columns.
// A width of 0 disables downsampling.
func NewResizer(width uint) *Resizer {
	return &Resizer{
		width:  width,
		interp: resize.Bilinear,
	}
}

func (r *Resizer) Width() uint { return r.width }

// Resize converts img to grayscale and shrinks it to the resizer's width,
// keeping the aspect ratio. Images already narrow enough are never upscaled.
func (r *Resizer) Resize(img image.Image) *image.Gray {
	gray := Grayscale(img)
	if r.width == 0 {
		return gray
	}

	thumb := resize.Thumbnail(r.width, math.MaxUint32, gray, r.interp)
	if g, ok := thumb.(*image.Gray); ok {
		return g
	}
	return Grayscale(thumb)
}

// Grayscale returns a copy of img in the 8-bit luminance color model, with
// its origin moved to (0, 0).
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(gray, image.Point{}, img, b, draw.Src, nil)
	return gray
}
