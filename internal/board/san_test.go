package board

import (
	"errors"
	"testing"
)

func TestToSAN(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		move   Move
		want   string
	}{
		{"knight from start", StartLayout, NewMove(sq(0, 1), sq(2, 2)), "Nc3"},
		{"black knight", StartLayout, NewMove(sq(4, 1), sq(2, 0)), "Na3"},
		{"pawn push", "5/p1p2/1P3/5/5", NewMove(sq(2, 1), sq(1, 1)), "b2"},
		{"pawn capture left", "5/p1p2/1P3/5/5", NewMove(sq(2, 1), sq(1, 0)), "bxa2"},
		{"pawn capture right", "5/p1p2/1P3/5/5", NewMove(sq(2, 1), sq(1, 2)), "bxc2"},
		{"piece capture", "5/5/2N2/5/3q1", NewMove(sq(2, 2), sq(4, 3)), "Nxd5"},
		{"rooks on a rank", "R3R/5/5/5/5", NewMove(sq(0, 0), sq(0, 2)), "Rac1"},
		{"rooks on a file", "R4/5/5/5/R4", NewMove(sq(0, 0), sq(2, 0)), "R1a3"},
		{"blocked rival needs nothing", "R1P1R/5/5/5/5", NewMove(sq(0, 0), sq(0, 1)), "Rb1"},
		{"three knights", "N3N/5/N4/5/5", NewMove(sq(0, 0), sq(1, 2)), "Na1c2"},
		{"empty origin falls back", "5/5/5/5/5", NewMove(sq(0, 0), sq(1, 1)), "a1b2"},
		{"no move", StartLayout, NoMove, "-"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustLayout(t, tc.layout)
			if got := tc.move.ToSAN(b); got != tc.want {
				t.Errorf("ToSAN(%v) = %q, want %q", tc.move, got, tc.want)
			}
		})
	}
}

func TestParseSAN(t *testing.T) {
	b := NewBoard()

	m, err := ParseSAN("Nc3", b, White)
	if err != nil {
		t.Fatalf("ParseSAN(Nc3): %v", err)
	}
	if want := NewMove(sq(0, 1), sq(2, 2)); m != want {
		t.Errorf("ParseSAN(Nc3) = %v, want %v", m, want)
	}

	if m, err := ParseSAN("Na3+", b, Black); err != nil || m != NewMove(sq(4, 1), sq(2, 0)) {
		t.Errorf("ParseSAN(Na3+, black) = %v, %v", m, err)
	}

	for _, s := range []string{"", "Qd4", "e3"} {
		if _, err := ParseSAN(s, b, White); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseSAN(%q) error = %v, want ErrInvalidMove", s, err)
		}
	}
}
