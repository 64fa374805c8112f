// Package render draws a character grid as green text on a raster image.
package render

import (
	"fmt"
	"image"
	"math"
	"unicode/utf8"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type Renderer struct {
	font *truetype.Font
	cfg  Config

	scale      fixed.Int26_6
	ascent     fixed.Int26_6
	lineHeight int
	buf        truetype.GlyphBuf
}

// NewRenderer returns a Renderer drawing with f. Glyphs are Size pixels high
// and Size*HorizontalScale pixels wide per em.
func NewRenderer(f *truetype.Font, cfg Config) (*Renderer, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    cfg.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	defer face.Close()

	return &Renderer{
		font:       f,
		cfg:        cfg,
		scale:      fixed.Int26_6(0.5 + cfg.Size*64),
		ascent:     face.Metrics().Ascent,
		lineHeight: int(math.Floor(cfg.Size)),
	}, nil
}

func (r *Renderer) Config() Config { return r.cfg }

func (r *Renderer) LineHeight() int { return r.lineHeight }

// Ascent is the baseline offset of every laid out row.
func (r *Renderer) Ascent() fixed.Int26_6 { return r.ascent }

func (r *Renderer) stretch(x fixed.Int26_6) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(x) * r.cfg.HorizontalScale))
}

// Layout positions the glyphs of s left to right on a baseline at the
// font's ascent, applying kerning between neighbours.
func (r *Renderer) Layout(s string) ([]Glyph, error) {
	glyphs := make([]Glyph, 0, utf8.RuneCountInString(s))

	var (
		caret   fixed.Int26_6
		prev    truetype.Index
		hasPrev bool
	)
	for _, c := range s {
		idx := r.font.Index(c)
		if hasPrev {
			caret += r.stretch(r.font.Kern(r.scale, prev, idx))
		}
		if err := r.buf.Load(r.font, r.scale, idx, font.HintingNone); err != nil {
			return nil, fmt.Errorf("render: failed to load glyph %q: %w", c, err)
		}

		g := Glyph{
			Rune:    c,
			Index:   idx,
			Dot:     fixed.Point26_6{X: caret, Y: r.ascent},
			Advance: r.stretch(r.buf.AdvanceWidth),
			points:  make([]truetype.Point, len(r.buf.Points)),
			ends:    append([]int(nil), r.buf.Ends...),
			bounds:  r.buf.Bounds,
		}
		for i, p := range r.buf.Points {
			p.X = r.stretch(p.X)
			g.points[i] = p
		}
		g.bounds.Min.X = r.stretch(g.bounds.Min.X)
		g.bounds.Max.X = r.stretch(g.bounds.Max.X)

		glyphs = append(glyphs, g)
		caret += g.Advance
		prev, hasPrev = idx, true
	}
	return glyphs, nil
}

// Render draws grid onto an oversized canvas and returns it cropped to the
// drawn text. The crop is as wide as the widest row and reaches Padding
// pixels below the lowest inked pixel. A grid without ink keeps the height
// of its lines so the result is never empty.
func (r *Renderer) Render(grid []string) (*image.RGBA, error) {
	cols := 0
	for _, row := range grid {
		cols = max(cols, utf8.RuneCountInString(row))
	}
	if cols == 0 {
		return nil, ErrEmptyGrid
	}

	rows := make([][]Glyph, len(grid))
	validWidth := 0
	for i, s := range grid {
		glyphs, err := r.Layout(s)
		if err != nil {
			return nil, err
		}
		if n := len(glyphs); n > 0 {
			last := glyphs[n-1]
			validWidth = max(validWidth, (last.Dot.X + last.Advance).Ceil())
		}
		rows[i] = glyphs
	}

	// Nothing outside the crop survives, so the canvas only needs to cover
	// the widest row and the lowest line plus padding.
	width := min(cols*r.cfg.CanvasScale, max(validWidth, 1))
	height := min(len(grid)*r.cfg.CanvasScale, len(grid)*r.lineHeight+r.cfg.Padding+max(0, -r.cfg.Bias))
	height = max(height, 1)
	if width*height > r.cfg.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrCanvasTooLarge, width, height)
	}
	canvas := NewCanvas(width, height)

	validHeight := 0
	for row, glyphs := range rows {
		for i := range glyphs {
			g := &glyphs[i]
			bb, ok := g.Bounds()
			if !ok {
				continue
			}
			w := &glyphWriter{
				canvas:  canvas,
				x:       bb.Min.X,
				y:       (row+1)*r.lineHeight - bb.Dy() - r.cfg.Bias,
				padding: r.cfg.Padding,
			}
			g.Draw(w)
			if w.drawn {
				validHeight = max(validHeight, w.bottom)
			}
		}
	}
	if validHeight <= 0 {
		validHeight = len(grid) * r.lineHeight
	}

	cb := canvas.Bounds()
	crop := image.Rect(0, 0,
		min(max(validWidth, 1), cb.Dx()),
		min(max(validHeight, 1), cb.Dy()),
	)
	return canvas.Crop(crop), nil
}
