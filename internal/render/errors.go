package render

import "errors"

var (
	ErrInvalidFontSize = errors.New("render: font size must be a positive number")
	ErrInvalidConfig   = errors.New("render: invalid config")
	ErrNilFont         = errors.New("render: font is nil")
	ErrEmptyGrid       = errors.New("render: nothing to render")
	ErrCanvasTooLarge  = errors.New("render: canvas too large")
)
