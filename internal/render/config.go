package render

import "math"

// Config holds the layout heuristics of the renderer. The defaults are tuned
// by eye rather than derived from font metrics.
type Config struct {
	// Size is the font size in pixels per em. Its floor is the line height.
	Size float64
	// HorizontalScale stretches glyphs along x so that a monospace cell
	// comes out roughly square.
	HorizontalScale float64
	// CanvasScale caps how many pixels the working canvas reserves per grid
	// cell in each direction before cropping.
	CanvasScale int
	// MaxPixels bounds the working canvas area.
	MaxPixels int
	// Padding is added below the lowest drawn pixel when cropping.
	Padding int
	// Bias lifts every glyph above the bottom of its line.
	Bias int
}

func DefaultConfig() Config {
	return Config{
		Size:            18,
		HorizontalScale: 2,
		CanvasScale:     99,
		MaxPixels:       1 << 27,
		Padding:         8,
		Bias:            2,
	}
}

func (c Config) validate() error {
	if math.IsNaN(c.Size) || math.IsInf(c.Size, 0) || c.Size <= 0 {
		return ErrInvalidFontSize
	}
	if math.IsNaN(c.HorizontalScale) || math.IsInf(c.HorizontalScale, 0) || c.HorizontalScale <= 0 {
		return ErrInvalidConfig
	}
	if c.CanvasScale < 1 || c.MaxPixels < 1 {
		return ErrInvalidConfig
	}
	return nil
}
