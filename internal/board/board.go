package board

import (
	"fmt"
	"strings"
)

// Board is a 5x5 grid of optional occupants.
type Board struct {
	cells [NumSquares]Piece
}

// backRank is the column order of the non-pawn pieces on each back rank.
var backRank = [Size]PieceType{Rook, Knight, Bishop, Queen, King}

// NewBoard creates a board with the starting layout: white's back rank on
// row 0, white pawns on row 1, black pawns on row 3, black's back rank on row 4.
func NewBoard() *Board {
	b := &Board{}
	for col, pt := range backRank {
		b.cells[col] = NewPiece(pt, White)
		b.cells[Size+col] = WhitePawn
		b.cells[3*Size+col] = BlackPawn
		b.cells[4*Size+col] = NewPiece(pt, Black)
	}
	return b
}

// EmptyBoard creates a board with no pieces.
func EmptyBoard() *Board {
	return &Board{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// PieceAt returns the occupant of sq, or NoPiece if the cell is empty.
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if !sq.IsValid() {
		return NoPiece, fmt.Errorf("square %d: %w", sq, ErrOutOfBounds)
	}
	return b.cells[sq], nil
}

// at is PieceAt for squares already known to be valid.
func (b *Board) at(sq Square) Piece {
	return b.cells[sq]
}

// SetPiece places p on sq, replacing any occupant. NoPiece clears the cell.
func (b *Board) SetPiece(sq Square, p Piece) error {
	if !sq.IsValid() {
		return fmt.Errorf("square %d: %w", sq, ErrOutOfBounds)
	}
	b.cells[sq] = p
	return nil
}

// ApplyMove moves whatever occupies from onto to and clears from.
// Nothing is validated beyond bounds: an occupant on to is discarded and
// returned, and moving from an empty cell leaves to empty.
func (b *Board) ApplyMove(from, to Square) (Piece, error) {
	if !from.IsValid() || !to.IsValid() {
		return NoPiece, fmt.Errorf("move %d->%d: %w", from, to, ErrOutOfBounds)
	}
	captured := b.cells[to]
	b.cells[to] = b.cells[from]
	b.cells[from] = NoPiece
	return captured, nil
}

// Squares returns the cells occupied by pieces of color c in row-major order.
func (b *Board) Squares(c Color) []Square {
	var squares []Square
	for sq := Square(0); sq < NoSquare; sq++ {
		if p := b.cells[sq]; p != NoPiece && p.Color() == c {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Count returns the number of pieces of color c.
func (b *Board) Count(c Color) int {
	return len(b.Squares(c))
}

// String returns a visual representation of the board, row 4 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for row := Size - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d  ", row+1)
		for col := 0; col < Size; col++ {
			sb.WriteString(b.cells[row*Size+col].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e\n")
	return sb.String()
}
