package ascii

import (
	"errors"
	"image"
	"image/color"
	"strings"
)

// DefaultLetters runs from darkest to brightest.
const DefaultLetters = " ·>X"

var ErrInvalidAlphabet = errors.New("ascii: alphabet must contain at least one letter")

type Converter struct {
	letters []rune
	bucket  int
}

// NewConverter returns a Converter mapping luminance onto letters. The first
// letter stands for the darkest bucket and the last for the brightest.
func NewConverter(letters string) (*Converter, error) {
	rs := []rune(letters)
	if len(rs) == 0 {
		return nil, ErrInvalidAlphabet
	}

	// More than 256 letters would give zero-width buckets.
	bucket := max(1, 256/len(rs))

	return &Converter{
		letters: rs,
		bucket:  bucket,
	}, nil
}

func (c *Converter) Letters() []rune {
	return append([]rune(nil), c.letters...)
}

// Index returns the alphabet position for a luminance value. The division
// alone can reach len(letters) when 256 is not a multiple of the alphabet
// length, so the result is clamped to the last letter.
func (c *Converter) Index(lum uint8) int {
	return min(int(lum)/c.bucket, len(c.letters)-1)
}

func (c *Converter) Letter(lum uint8) rune {
	return c.letters[c.Index(lum)]
}

// ImageToASCII walks img in row-major order and returns one string per pixel
// row, with one letter per pixel column.
func (c *Converter) ImageToASCII(img image.Image) ([]string, error) {
	if img == nil {
		return nil, errors.New("ascii: nil image")
	}

	sz := img.Bounds()
	rows := make([]string, 0, sz.Dy())
	b := new(strings.Builder)
	for y := sz.Min.Y; y < sz.Max.Y; y++ {
		b.Reset()
		for x := sz.Min.X; x < sz.Max.X; x++ {
			lum := luminance(img, x, y)
			b.WriteRune(c.Letter(lum))
		}
		rows = append(rows, b.String())
	}
	return rows, nil
}

func luminance(img image.Image, x, y int) uint8 {
	if g, ok := img.(*image.Gray); ok {
		return g.GrayAt(x, y).Y
	}
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}
