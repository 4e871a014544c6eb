package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()
	if got, want := b.Layout(), "RNBQK/PPPPP/5/ppppp/rnbqk"; got != want {
		t.Errorf("NewBoard().Layout() = %q, want %q", got, want)
	}

	parsed, side, err := ParseLayout(StartLayout)
	if err != nil {
		t.Fatalf("ParseLayout(StartLayout): %v", err)
	}
	if side != White {
		t.Errorf("StartLayout side = %v, want white", side)
	}
	if *parsed != *b {
		t.Errorf("ParseLayout(StartLayout) differs from NewBoard():%s%s", parsed, b)
	}

	if got := b.Count(White); got != 10 {
		t.Errorf("white pieces = %d, want 10", got)
	}
	if got := b.Count(Black); got != 10 {
		t.Errorf("black pieces = %d, want 10", got)
	}
}

func TestPieceAt(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		sq   Square
		want Piece
	}{
		{sq(0, 0), WhiteRook},
		{sq(0, 1), WhiteKnight},
		{sq(0, 2), WhiteBishop},
		{sq(0, 3), WhiteQueen},
		{sq(0, 4), WhiteKing},
		{sq(1, 3), WhitePawn},
		{sq(2, 2), NoPiece},
		{sq(3, 0), BlackPawn},
		{sq(4, 0), BlackRook},
		{sq(4, 4), BlackKing},
	}
	for _, tc := range tests {
		got, err := b.PieceAt(tc.sq)
		if err != nil {
			t.Fatalf("PieceAt(%v): %v", tc.sq, err)
		}
		if got != tc.want {
			t.Errorf("PieceAt(%v) = %v, want %v", tc.sq, got.Name(), tc.want.Name())
		}
	}

	if _, err := b.PieceAt(NoSquare); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("PieceAt(NoSquare) error = %v, want ErrOutOfBounds", err)
	}
}

func TestApplyMove(t *testing.T) {
	b := NewBoard()

	captured, err := b.ApplyMove(sq(0, 1), sq(3, 2))
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if captured != BlackPawn {
		t.Errorf("captured = %v, want black_pawn", captured.Name())
	}
	if p, _ := b.PieceAt(sq(0, 1)); p != NoPiece {
		t.Errorf("origin still holds %v", p.Name())
	}
	if p, _ := b.PieceAt(sq(3, 2)); p != WhiteKnight {
		t.Errorf("destination holds %v, want white_knight", p.Name())
	}

	// Moving "nothing" from the now empty origin empties the destination.
	captured, err = b.ApplyMove(sq(0, 1), sq(3, 2))
	if err != nil {
		t.Fatalf("ApplyMove from empty: %v", err)
	}
	if captured != WhiteKnight {
		t.Errorf("captured = %v, want white_knight", captured.Name())
	}
	if p, _ := b.PieceAt(sq(3, 2)); p != NoPiece {
		t.Errorf("destination holds %v after empty move, want empty", p.Name())
	}

	if _, err := b.ApplyMove(sq(0, 0), NoSquare); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ApplyMove to NoSquare error = %v, want ErrOutOfBounds", err)
	}
}

func TestSquares(t *testing.T) {
	b := mustLayout(t, "p3P/5/2p2/5/P3p")
	if diff := cmp.Diff([]Square{sq(0, 0), sq(2, 2), sq(4, 4)}, b.Squares(Black)); diff != "" {
		t.Errorf("Squares(Black) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Square{sq(0, 4), sq(4, 0)}, b.Squares(White)); diff != "" {
		t.Errorf("Squares(White) mismatch (-want +got):\n%s", diff)
	}
	if got := EmptyBoard().Squares(White); got != nil {
		t.Errorf("EmptyBoard().Squares = %v, want nil", got)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Copy()
	if _, err := c.ApplyMove(sq(0, 1), sq(2, 2)); err != nil {
		t.Fatal(err)
	}
	if b.Layout() == c.Layout() {
		t.Error("mutating the copy changed the original")
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []string{
		"",
		"RNBQK/PPPPP/5/ppppp",
		"RNBQK/PPPPP/5/ppppp/rnbqk x",
		"RNBQK/PPPPP/6/ppppp/rnbqk",
		"RNBQKR/PPPPP/5/ppppp/rnbqk",
		"RNBQ/PPPPP/5/ppppp/rnbqk",
		"RNBQX/PPPPP/5/ppppp/rnbqk",
		"RNBQK/PPPPP/5/ppppp/rnbqk w extra",
	}
	for _, layout := range tests {
		if _, _, err := ParseLayout(layout); !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("ParseLayout(%q) error = %v, want ErrInvalidLayout", layout, err)
		}
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	for _, layout := range []string{"5/5/2N2/5/5", "R1b1K/PpP1p/1nQq1/pP1Bp/r1k1N", "5/5/5/5/5"} {
		b := mustLayout(t, layout)
		if got := b.Layout(); got != layout {
			t.Errorf("Layout() = %q, want %q", got, layout)
		}
	}
}

func TestSquareNames(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"a1", 0, 0},
		{"e1", 0, 4},
		{"a5", 4, 0},
		{"c3", 2, 2},
		{"b4", 3, 1},
	}
	for _, tc := range tests {
		s, err := ParseSquare(tc.name)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", tc.name, err)
		}
		if s.Row() != tc.row || s.Col() != tc.col {
			t.Errorf("ParseSquare(%q) = (%d,%d), want (%d,%d)", tc.name, s.Row(), s.Col(), tc.row, tc.col)
		}
		if s.String() != tc.name {
			t.Errorf("String() = %q, want %q", s.String(), tc.name)
		}
	}

	if _, err := ParseSquare("f1"); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ParseSquare(f1) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := ParseSquare("a6"); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ParseSquare(a6) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := ParseSquare("11"); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("ParseSquare(11) error = %v, want ErrInvalidSquare", err)
	}
	if _, err := NewSquare(5, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("NewSquare(5,0) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := NewSquare(0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("NewSquare(0,-1) error = %v, want ErrOutOfBounds", err)
	}
}

func TestMoveEncoding(t *testing.T) {
	m, err := ParseMove("b2b1")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.From() != sq(1, 1) || m.To() != sq(0, 1) {
		t.Errorf("ParseMove(b2b1) = %v -> %v", m.From(), m.To())
	}
	if m.String() != "b2b1" {
		t.Errorf("String() = %q", m.String())
	}
	if NewMove(sq(0, 0), sq(0, 0)) == NoMove {
		t.Error("a1a1 collides with NoMove")
	}
	if NoMove.From() != NoSquare || NoMove.String() != "0000" {
		t.Error("NoMove should report NoSquare / 0000")
	}
	if _, err := ParseMove("b2"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("ParseMove(b2) error = %v, want ErrInvalidMove", err)
	}
}

func TestPieceEncoding(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(pt, c)
			if p == NoPiece {
				t.Fatalf("NewPiece(%v, %v) = NoPiece", pt, c)
			}
			if p.Type() != pt || p.Color() != c {
				t.Errorf("NewPiece(%v, %v) decodes as (%v, %v)", pt, c, p.Type(), p.Color())
			}
			if PieceFromChar(p.String()[0]) != p {
				t.Errorf("PieceFromChar(%q) != %v", p.String(), p.Name())
			}
		}
	}
	if NoPiece.Color() != NoColor || NoPiece.Type() != NoPieceType {
		t.Error("NoPiece should have no color or type")
	}
	if WhitePawn.Name() != "white_pawn" || BlackQueen.Name() != "black_queen" {
		t.Errorf("Name() = %q, %q", WhitePawn.Name(), BlackQueen.Name())
	}
}
