package board

import "testing"

// perft counts the leaf nodes of the candidate-move tree at the given depth,
// alternating sides from side.
func perft(b *Board, side Color, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := GenerateMoves(b, side)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		next := b.Copy()
		if _, err := next.ApplyMove(m.From(), m.To()); err != nil {
			panic(err)
		}
		nodes += perft(next, side.Other(), depth-1)
	}
	return nodes
}

// TestPerftStartingPosition checks the move tree from the starting layout.
// Only the knights can move at first: each has a3 / c3 style jumps.
func TestPerftStartingPosition(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 2},
		{2, 4},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, White, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

func TestGenerateMovesOrder(t *testing.T) {
	b := NewBoard()
	moves := GenerateMoves(b, White)
	want := []string{"b1c3", "b1a3"}
	if len(moves) != len(want) {
		t.Fatalf("GenerateMoves = %v, want %v", moves, want)
	}
	for i, m := range moves {
		if m.String() != want[i] {
			t.Errorf("move %d = %s, want %s", i, m, want[i])
		}
	}

	black := GenerateMoves(b, Black)
	if len(black) != 2 || black[0].String() != "b5c3" || black[1].String() != "b5a3" {
		t.Errorf("black moves = %v, want [b5c3 b5a3]", black)
	}
}
