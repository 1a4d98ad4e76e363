package maze

import "errors"

var (
	// ErrInvalidDimension indicates a width or height that is non-positive, even,
	// or too small to hold a one-cell border around an interior.
	ErrInvalidDimension = errors.New("maze: invalid dimension")
	// ErrUnknownTheme indicates a modifier naming a theme that does not exist.
	ErrUnknownTheme = errors.New("maze: unknown theme")
	// ErrNilRNG indicates Generate was called without a random source.
	ErrNilRNG = errors.New("maze: nil random source")
)
