package render

import (
	"image"

	"github.com/golang/freetype/raster"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"
)

// Visitor receives the coverage of every inked pixel of a glyph, in
// glyph-local coordinates. coverage is in (0, 1].
type Visitor interface {
	Visit(x, y int, coverage float64)
}

type VisitorFunc func(x, y int, coverage float64)

func (f VisitorFunc) Visit(x, y int, coverage float64) { f(x, y, coverage) }

// Glyph is a laid out glyph. Dot is its pen position on the baseline.
type Glyph struct {
	Rune    rune
	Index   truetype.Index
	Dot     fixed.Point26_6
	Advance fixed.Int26_6

	// Outline in pixels, y up, relative to Dot.
	points []truetype.Point
	ends   []int
	bounds fixed.Rectangle26_6
}

// Bounds returns the pixel bounding box of the glyph's ink, y down. It
// reports false for glyphs without an outline, such as a space.
func (g *Glyph) Bounds() (image.Rectangle, bool) {
	if len(g.ends) == 0 {
		return image.Rectangle{}, false
	}
	r := image.Rect(
		(g.Dot.X + g.bounds.Min.X).Floor(),
		(g.Dot.Y - g.bounds.Max.Y).Floor(),
		(g.Dot.X + g.bounds.Max.X).Ceil(),
		(g.Dot.Y - g.bounds.Min.Y).Ceil(),
	)
	if r.Empty() {
		return image.Rectangle{}, false
	}
	return r, true
}

// Draw rasterizes the glyph and calls v for each covered pixel, with (0, 0)
// at the top-left corner of Bounds.
func (g *Glyph) Draw(v Visitor) {
	bb, ok := g.Bounds()
	if !ok {
		return
	}

	r := raster.NewRasterizer(bb.Dx(), bb.Dy())
	dx := g.Dot.X - fixed.I(bb.Min.X)
	dy := g.Dot.Y - fixed.I(bb.Min.Y)
	e0 := 0
	for _, e1 := range g.ends {
		drawContour(r, g.points[e0:e1], dx, dy)
		e0 = e1
	}
	r.Rasterize(coveragePainter{v})
}

type coveragePainter struct {
	v Visitor
}

func (p coveragePainter) Paint(ss []raster.Span, done bool) {
	for _, s := range ss {
		if s.Alpha == 0 {
			continue
		}
		coverage := float64(s.Alpha) / 0xffff
		for x := s.X0; x < s.X1; x++ {
			p.v.Visit(x, s.Y, coverage)
		}
	}
}

// drawContour adds one closed quadratic contour to r. Two consecutive
// off-curve points imply an on-curve point halfway between them.
//
// Adapted from (*face).drawContour in github.com/golang/freetype/truetype,
// which only accepts outlines scaled equally along both axes.
func drawContour(r *raster.Rasterizer, ps []truetype.Point, dx, dy fixed.Int26_6) {
	if len(ps) == 0 {
		return
	}

	at := func(p truetype.Point) fixed.Point26_6 {
		return fixed.Point26_6{X: dx + p.X, Y: dy - p.Y}
	}
	onCurve := func(p truetype.Point) bool { return p.Flags&0x01 != 0 }
	mid := func(a, b fixed.Point26_6) fixed.Point26_6 {
		return fixed.Point26_6{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}

	start := at(ps[0])
	others := ps[1:]
	if !onCurve(ps[0]) {
		last := ps[len(ps)-1]
		if onCurve(last) {
			start = at(last)
			others = ps[:len(ps)-1]
		} else {
			start = mid(start, at(last))
			others = ps
		}
	}

	r.Start(start)
	q0, on0 := start, true
	for _, p := range others {
		q, on := at(p), onCurve(p)
		switch {
		case on && on0:
			r.Add1(q)
		case on:
			r.Add2(q0, q)
		case !on0:
			r.Add2(q0, mid(q0, q))
		}
		q0, on0 = q, on
	}
	if on0 {
		r.Add1(start)
	} else {
		r.Add2(q0, start)
	}
}
