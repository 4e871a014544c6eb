package board

import "errors"

var (
	// ErrOutOfBounds is returned for any coordinate outside [0,5)x[0,5).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidSquare is returned when a square name cannot be parsed.
	ErrInvalidSquare = errors.New("invalid square")
	// ErrInvalidMove is returned when a move string cannot be parsed.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInvalidLayout is returned when a layout string cannot be parsed.
	ErrInvalidLayout = errors.New("invalid layout")
)
