package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: width and height must be positive")
	ErrInvalidFOV        = errors.New("renderer: field of view must be in (0, pi)")
	ErrInvalidSpanSize   = errors.New("renderer: span size must not be negative")
	ErrNilScene          = errors.New("renderer: scene is nil")
)
