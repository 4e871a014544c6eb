package game

import (
	"slices"

	"github.com/hailam/minichess/internal/board"
)

// ClickKind says what a board click did.
type ClickKind int

const (
	// ClickIgnored means nothing changed.
	ClickIgnored ClickKind = iota
	// ClickSelected means a white piece was selected or reselected.
	ClickSelected
	// ClickCleared means an existing selection was dropped.
	ClickCleared
	// ClickMoved means the selected piece moved and black replied.
	ClickMoved
)

// Click is the result of Selection.Click. Turn is set only for ClickMoved.
type Click struct {
	Kind ClickKind
	Turn Turn
}

// Selection is the click-to-move state of a pointer-driven front end.
// The first click picks a white piece and fetches its candidate moves; a
// click on one of those cells plays the move.
type Selection struct {
	game    *Game
	from    board.Square
	targets []board.Square
}

// NewSelection returns an empty selection bound to g.
func NewSelection(g *Game) *Selection {
	return &Selection{game: g, from: board.NoSquare}
}

// Selected returns the selected cell, if any.
func (s *Selection) Selected() (board.Square, bool) {
	return s.from, s.from != board.NoSquare
}

// Targets returns the candidate moves of the selected piece.
func (s *Selection) Targets() []board.Square { return s.targets }

// Clear drops the selection.
func (s *Selection) Clear() {
	s.from = board.NoSquare
	s.targets = nil
}

// Click handles a click on sq. Clicks are ignored unless white is to move.
func (s *Selection) Click(sq board.Square) (Click, error) {
	if !sq.IsValid() || s.game.SideToMove() != board.White {
		return Click{Kind: ClickIgnored}, nil
	}

	if s.from != board.NoSquare && slices.Contains(s.targets, sq) {
		from := s.from
		s.Clear()
		turn, err := s.game.SubmitPlayerMove(from, sq)
		if err != nil {
			return Click{Kind: ClickCleared}, err
		}
		return Click{Kind: ClickMoved, Turn: turn}, nil
	}

	piece, err := s.game.PieceAt(sq)
	if err != nil {
		return Click{Kind: ClickIgnored}, err
	}
	if piece != board.NoPiece && piece.Color() == board.White {
		targets, err := s.game.RequestMoves(sq)
		if err != nil {
			return Click{Kind: ClickIgnored}, err
		}
		s.from = sq
		s.targets = targets
		return Click{Kind: ClickSelected}, nil
	}

	if s.from == board.NoSquare {
		return Click{Kind: ClickIgnored}, nil
	}
	s.Clear()
	return Click{Kind: ClickCleared}, nil
}
