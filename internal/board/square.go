// Package board implements the 5x5 board, its pieces and per-piece move generation.
package board

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 5

// NumSquares is the number of cells on the board.
const NumSquares = Size * Size

// Square represents a cell on the board (0-24), encoded as row*5 + col.
// Row 0 is white's back rank, row 4 is black's back rank.
type Square uint8

// NoSquare is the sentinel for "no cell".
const NoSquare Square = NumSquares

// NewSquare creates a square from row and column (0-indexed).
// Coordinates outside [0,5) fail with ErrOutOfBounds.
func NewSquare(row, col int) (Square, error) {
	if !InBounds(row, col) {
		return NoSquare, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfBounds)
	}
	return Square(row*Size + col), nil
}

// MustSquare is like NewSquare but panics on out-of-range coordinates.
// Intended for constant positions in tests and tables.
func MustSquare(row, col int) Square {
	sq, err := NewSquare(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

// InBounds reports whether (row, col) lies in [0,5)x[0,5).
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Row returns the row of the square (0-4).
func (sq Square) Row() int {
	return int(sq) / Size
}

// Col returns the column of the square (0-4).
func (sq Square) Col() int {
	return int(sq) % Size
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic name of the square: file letter for the
// column, rank digit for row+1 (row 0, col 0 is "a1").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '1'+sq.Row())
}

// ParseSquare parses algebraic notation (e.g., "c3") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'z' || s[1] < '0' || s[1] > '9' {
		return NoSquare, fmt.Errorf("%q: %w", s, ErrInvalidSquare)
	}

	col := int(s[0]) - 'a'
	row := int(s[1]) - '1'

	if !InBounds(row, col) {
		return NoSquare, fmt.Errorf("%q: %w", s, ErrOutOfBounds)
	}

	return Square(row*Size + col), nil
}
