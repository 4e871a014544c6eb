package board

import "fmt"

// Move encodes a move in 16 bits:
// bits 0-4:  from square (0-24)
// bits 5-9:  to square (0-24)
// bit 15:    set on every real move so that NoMove stays distinct from a1a1
type Move uint16

const moveFlag Move = 1 << 15

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<5 | moveFlag
}

// From returns the origin square.
func (m Move) From() Square {
	if m == NoMove {
		return NoSquare
	}
	return Square(m & 0x1F)
}

// To returns the destination square.
func (m Move) To() Square {
	if m == NoMove {
		return NoSquare
	}
	return Square((m >> 5) & 0x1F)
}

// String returns the coordinate format of the move (e.g., "b2b1").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From().String() + m.To().String()
}

// ParseMove parses a coordinate format move string.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	return NewMove(from, to), nil
}
