// Package engine picks moves for the computer side.
package engine

import (
	"math/rand/v2"
	"time"

	"github.com/hailam/minichess/internal/board"
)

// Source supplies uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Outcome describes what the engine managed to do on its turn.
type Outcome int

const (
	// Moved means a move was chosen.
	Moved Outcome = iota
	// NoMoves means the chosen piece had no candidate moves; the turn is passed.
	NoMoves
	// NoPieces means the side has nothing left on the board.
	NoPieces
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case NoMoves:
		return "no-moves"
	case NoPieces:
		return "no-pieces"
	default:
		return "unknown"
	}
}

// Choice is the result of a single engine decision.
type Choice struct {
	Outcome Outcome
	Piece   board.Square // Square of the selected piece, NoSquare if none
	Move    board.Move   // NoMove unless Outcome == Moved
}

// Engine is a random mover: it picks one of its pieces uniformly, then one of
// that piece's candidate moves uniformly. A stuck piece is not re-rolled.
type Engine struct {
	rng Source
}

// New creates an engine drawing from src.
func New(src Source) *Engine {
	return &Engine{rng: src}
}

// NewSeeded creates an engine with a PCG generator seeded from seed.
// A zero seed is replaced by the current time.
func NewSeeded(seed uint64) *Engine {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Choose selects a move for side on b. The board is not modified.
func (e *Engine) Choose(b *board.Board, side board.Color) Choice {
	pieces := b.Squares(side)
	if len(pieces) == 0 {
		return Choice{Outcome: NoPieces, Piece: board.NoSquare, Move: board.NoMove}
	}

	from := pieces[e.rng.IntN(len(pieces))]
	targets, err := board.CandidateMoves(b, from)
	if err != nil || len(targets) == 0 {
		return Choice{Outcome: NoMoves, Piece: from, Move: board.NoMove}
	}

	to := targets[e.rng.IntN(len(targets))]
	return Choice{Outcome: Moved, Piece: from, Move: board.NewMove(from, to)}
}
