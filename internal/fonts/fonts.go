// Package fonts provides the typeface used to draw the character grid.
package fonts

import (
	"errors"
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"
)

var errEmptyFontData = errors.New("empty font data")

// LoadError is returned when font data cannot be parsed.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load font %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Default parses the bundled Go Mono typeface.
func Default() (*truetype.Font, error) {
	return Parse("Go Mono", gomono.TTF)
}

// Parse parses TrueType data.
func Parse(name string, data []byte) (*truetype.Font, error) {
	if len(data) == 0 {
		return nil, &LoadError{Name: name, Err: errEmptyFontData}
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	return f, nil
}
