package board

import "fmt"

// offset is a (row, col) step.
type offset struct {
	dr, dc int
}

// Direction and jump tables. Enumeration order fixes the order of generated moves.
var (
	rookDirections   = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = append(append([]offset{}, rookDirections...), bishopDirections...)
	knightOffsets    = []offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets      = queenDirections
)

// CandidateMoves returns the destinations available to the piece on from.
// An empty cell yields no moves. Check is not considered.
func CandidateMoves(b *Board, from Square) ([]Square, error) {
	piece, err := b.PieceAt(from)
	if err != nil {
		return nil, fmt.Errorf("candidate moves: %w", err)
	}
	if piece == NoPiece {
		return nil, nil
	}
	return Moves(b, piece.Type(), piece.Color(), from), nil
}

// Moves generates the destinations for a piece of kind pt and color c
// standing on from. The cell itself is not consulted, so callers may ask
// "what if" questions about hypothetical pieces.
func Moves(b *Board, pt PieceType, c Color, from Square) []Square {
	if !from.IsValid() {
		return nil
	}
	switch pt {
	case Rook:
		return slidingMoves(b, from, c, rookDirections)
	case Bishop:
		return slidingMoves(b, from, c, bishopDirections)
	case Queen:
		return slidingMoves(b, from, c, queenDirections)
	case Knight:
		return stepMoves(b, from, c, knightOffsets)
	case King:
		return stepMoves(b, from, c, kingOffsets)
	case Pawn:
		return pawnMoves(b, from, c)
	default:
		return nil
	}
}

// GenerateMoves returns every move available to side c, grouped by origin
// in row-major order.
func GenerateMoves(b *Board, c Color) []Move {
	var moves []Move
	for _, from := range b.Squares(c) {
		for _, to := range Moves(b, b.at(from).Type(), c, from) {
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

// slidingMoves walks each direction until the edge or a piece. An enemy
// piece is included and ends the ray; a friendly piece ends it exclusively.
func slidingMoves(b *Board, from Square, us Color, dirs []offset) []Square {
	var moves []Square
	for _, d := range dirs {
		row, col := from.Row(), from.Col()
		for {
			row += d.dr
			col += d.dc
			if !InBounds(row, col) {
				break
			}
			to := Square(row*Size + col)
			target := b.at(to)
			if target != NoPiece && target.Color() == us {
				break
			}
			moves = append(moves, to)
			if target != NoPiece {
				break
			}
		}
	}
	return moves
}

// stepMoves applies each offset once, keeping in-bounds cells not held by us.
func stepMoves(b *Board, from Square, us Color, offsets []offset) []Square {
	var moves []Square
	for _, o := range offsets {
		row, col := from.Row()+o.dr, from.Col()+o.dc
		if !InBounds(row, col) {
			continue
		}
		to := Square(row*Size + col)
		if target := b.at(to); target != NoPiece && target.Color() == us {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// PawnDirection returns the row step of a pawn of color c.
// White pawns advance toward row 0, black pawns toward row 4.
func PawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// pawnMoves generates a single push onto an empty cell, then the left and
// right diagonal captures onto enemy pieces.
func pawnMoves(b *Board, from Square, us Color) []Square {
	var moves []Square
	row := from.Row() + PawnDirection(us)
	col := from.Col()
	if row < 0 || row >= Size {
		return nil
	}

	if b.at(Square(row*Size+col)) == NoPiece {
		moves = append(moves, Square(row*Size+col))
	}

	them := us.Other()
	for _, dc := range [2]int{-1, 1} {
		if !InBounds(row, col+dc) {
			continue
		}
		to := Square(row*Size + col + dc)
		if target := b.at(to); target != NoPiece && target.Color() == them {
			moves = append(moves, to)
		}
	}
	return moves
}
