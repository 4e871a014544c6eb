package board

import (
	"fmt"
	"strings"
)

// ToSAN converts a move to short algebraic notation on b, e.g. "Nc3",
// "bxc4" or "Rab2". There are no check, castling or promotion suffixes.
func (m Move) ToSAN(b *Board) string {
	if m == NoMove {
		return "-"
	}

	from := m.From()
	to := m.To()
	piece := b.at(from)
	if piece == NoPiece {
		return m.String()
	}

	var sb strings.Builder
	pt := piece.Type()

	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(disambiguation(b, m, piece))
	}

	if target := b.at(to); target != NoPiece {
		if pt == Pawn {
			// Pawn captures include the file of origin
			sb.WriteByte('a' + byte(from.Col()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())
	return sb.String()
}

// disambiguation returns the origin file, rank or both when another piece
// of the same kind and color can also reach the destination.
func disambiguation(b *Board, m Move, piece Piece) string {
	from := m.From()
	to := m.To()

	var rivals []Square
	for _, sq := range b.Squares(piece.Color()) {
		if sq == from || b.at(sq) != piece {
			continue
		}
		for _, t := range Moves(b, piece.Type(), piece.Color(), sq) {
			if t == to {
				rivals = append(rivals, sq)
				break
			}
		}
	}

	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.Col() == from.Col() {
			sameFile = true
		}
		if sq.Row() == from.Row() {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return string(rune('a' + from.Col()))
	case !sameRank:
		return string(rune('1' + from.Row()))
	default:
		return from.String()
	}
}

// ParseSAN finds the move of side on b written as s in short algebraic
// notation. A trailing "+" or "#" is ignored.
func ParseSAN(s string, b *Board, side Color) (Move, error) {
	s = strings.TrimRight(strings.TrimSpace(s), "+#")
	if s == "" {
		return NoMove, fmt.Errorf("empty SAN: %w", ErrInvalidMove)
	}

	for _, m := range GenerateMoves(b, side) {
		if m.ToSAN(b) == s {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%q matches no %s move: %w", s, side, ErrInvalidMove)
}
