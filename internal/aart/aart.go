// Package aart turns an image into ASCII art and renders that art back into
// a JPEG image.
package aart

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/koki-develop/aart/internal/ascii"
	"github.com/koki-develop/aart/internal/fonts"
	"github.com/koki-develop/aart/internal/imageio"
	"github.com/koki-develop/aart/internal/render"
	"github.com/koki-develop/aart/internal/resize"
)

const (
	DefaultOutput = "out"
	// MaxWidth is the widest grid Generate accepts.
	MaxWidth = 512
)

var ErrInvalidWidth = fmt.Errorf("aart: width must be between 1 and %d", MaxWidth)

type Options struct {
	// Input is the path of the source image.
	Input string
	// Output is the base name of the generated file; ".jpg" is appended.
	Output string
	// Letters run from darkest to brightest.
	Letters string
	// Size is the font size used to draw the letters.
	Size float64
	// Width is the number of letters per row.
	Width uint
	// Quality is the JPEG quality; 0 selects the default.
	Quality int
}

func DefaultOptions() Options {
	return Options{
		Output:  DefaultOutput,
		Letters: ascii.DefaultLetters,
		Size:    render.DefaultConfig().Size,
		Width:   resize.DefaultWidth,
		Quality: imageio.DefaultQuality,
	}
}

type Result struct {
	// Path of the written JPEG.
	Path string
	// Grid is the character grid the image was rendered from.
	Grid []string
	// Bounds of the written image.
	Bounds image.Rectangle
}

// OutputPath returns the file name the output base name is written to.
func OutputPath(base string) string {
	if base == "" {
		base = DefaultOutput
	}
	return base + ".jpg"
}

// Generate runs the whole conversion. Letters and size are validated before
// the input is read, and the output file is only created once everything
// else has succeeded.
func Generate(opts Options) (*Result, error) {
	log := Logger()

	if opts.Width == 0 || opts.Width > MaxWidth {
		return nil, ErrInvalidWidth
	}

	conv, err := ascii.NewConverter(opts.Letters)
	if err != nil {
		return nil, err
	}

	f, err := fonts.Default()
	if err != nil {
		return nil, err
	}

	cfg := render.DefaultConfig()
	cfg.Size = opts.Size
	rdr, err := render.NewRenderer(f, cfg)
	if err != nil {
		return nil, err
	}

	src, format, err := imageio.Open(opts.Input)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded image",
		slog.String("path", opts.Input),
		slog.String("format", format),
		slog.Int("width", src.Bounds().Dx()),
		slog.Int("height", src.Bounds().Dy()))

	thumb := resize.NewResizer(opts.Width).Resize(src)
	log.Debug("resized image",
		slog.Int("width", thumb.Bounds().Dx()),
		slog.Int("height", thumb.Bounds().Dy()))

	grid, err := conv.ImageToASCII(thumb)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	log.Debug("converted image", slog.Int("rows", len(grid)))

	img, err := rdr.Render(grid)
	if err != nil {
		return nil, fmt.Errorf("failed to render text: %w", err)
	}
	log.Debug("rendered text",
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()))

	path := OutputPath(opts.Output)
	if err := imageio.SaveJPEG(path, img, opts.Quality); err != nil {
		return nil, err
	}
	log.Debug("wrote image", slog.String("path", path))

	return &Result{
		Path:   path,
		Grid:   grid,
		Bounds: img.Bounds(),
	}, nil
}
