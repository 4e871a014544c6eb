package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartLayout is the layout string for the starting position.
const StartLayout = "RNBQK/PPPPP/5/ppppp/rnbqk w"

// ParseLayout parses a layout string and returns the board and side to move.
//
// The placement field lists rows 0 to 4 separated by '/'. Digits 1-5 are runs
// of empty cells, letters are pieces (uppercase white). An optional second
// field gives the side to move ("w" or "b"); it defaults to white.
func ParseLayout(layout string) (*Board, Color, error) {
	parts := strings.Fields(layout)
	if len(parts) == 0 || len(parts) > 2 {
		return nil, NoColor, fmt.Errorf("need 1 or 2 fields, got %d: %w", len(parts), ErrInvalidLayout)
	}

	b := EmptyBoard()
	if err := parsePlacement(b, parts[0]); err != nil {
		return nil, NoColor, err
	}

	side := White
	if len(parts) == 2 {
		switch parts[1] {
		case "w":
			side = White
		case "b":
			side = Black
		default:
			return nil, NoColor, fmt.Errorf("side to move %q: %w", parts[1], ErrInvalidLayout)
		}
	}

	return b, side, nil
}

// parsePlacement fills b from the placement field of a layout string.
func parsePlacement(b *Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != Size {
		return fmt.Errorf("need %d rows, got %d: %w", Size, len(rows), ErrInvalidLayout)
	}

	for row, rowStr := range rows {
		col := 0
		for i := 0; i < len(rowStr); i++ {
			c := rowStr[i]
			if col >= Size {
				return fmt.Errorf("too many cells in row %d: %w", row, ErrInvalidLayout)
			}

			if c >= '1' && c <= '5' {
				col += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("piece character %q: %w", c, ErrInvalidLayout)
			}
			b.cells[row*Size+col] = piece
			col++
		}

		if col != Size {
			return fmt.Errorf("row %d has %d cells: %w", row, col, ErrInvalidLayout)
		}
	}

	return nil
}

// Layout returns the placement field describing the board.
func (b *Board) Layout() string {
	var sb strings.Builder

	for row := 0; row < Size; row++ {
		empty := 0
		for col := 0; col < Size; col++ {
			piece := b.cells[row*Size+col]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < Size-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
