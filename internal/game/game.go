// Package game tracks a single session: the board, whose turn it is, and the
// automatic black reply after every player move.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hailam/minichess/internal/board"
	"github.com/hailam/minichess/internal/engine"
)

// ErrEmptySquare is returned when a player move starts on an empty cell.
var ErrEmptySquare = errors.New("no piece on origin square")

// State is the controller state.
type State int

const (
	// AwaitingWhite waits for the player's move.
	AwaitingWhite State = iota
	// AwaitingBlack is the transient state while black replies. It only
	// persists when the session is stalled.
	AwaitingBlack
)

// String returns the state name.
func (s State) String() string {
	if s == AwaitingBlack {
		return "awaiting-black-auto-move"
	}
	return "awaiting-white-input"
}

// Ply is one applied half-move.
type Ply struct {
	Side     board.Color
	Move     board.Move
	SAN      string
	Piece    board.Piece
	Captured board.Piece
}

// Reply is the result of black's automatic turn.
type Reply struct {
	Outcome engine.Outcome
	Ply     Ply // Zero unless Outcome == engine.Moved
}

// Turn is the result of SubmitPlayerMove: the player's ply and black's reply.
type Turn struct {
	Player Ply
	Reply  Reply
}

// Game is a single session. It is not safe for concurrent use; the
// presentation layer drives it from one event loop.
type Game struct {
	id         string
	board      *board.Board
	sideToMove board.Color
	stalled    bool
	history    []Ply

	opponent *engine.Engine
	base     *zap.Logger // without the session field
	log      *zap.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithEngine sets the opponent. The default is a time-seeded engine.
func WithEngine(e *engine.Engine) Option {
	return func(g *Game) { g.opponent = e }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithBoard starts the session from b with side to move.
func WithBoard(b *board.Board, side board.Color) Option {
	return func(g *Game) {
		g.board = b
		g.sideToMove = side
	}
}

// New creates a session on the starting layout with white to move.
func New(opts ...Option) *Game {
	g := &Game{
		board:      board.NewBoard(),
		sideToMove: board.White,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.opponent == nil {
		g.opponent = engine.NewSeeded(0)
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	g.base = g.log
	g.newSession()
	g.log.Info("new game", zap.String("layout", g.board.Layout()), zap.Stringer("to_move", g.sideToMove))
	return g
}

// Reset starts a fresh game on the starting layout under a new session id.
func (g *Game) Reset() {
	g.board = board.NewBoard()
	g.sideToMove = board.White
	g.stalled = false
	g.history = nil
	g.newSession()
	g.log.Info("reset")
}

func (g *Game) newSession() {
	g.id = uuid.NewString()
	g.log = g.base.With(zap.String("session", g.id))
}

// ID returns the session id.
func (g *Game) ID() string { return g.id }

// Board returns a copy of the current board for rendering.
func (g *Game) Board() *board.Board { return g.board.Copy() }

// SideToMove returns whose turn it is.
func (g *Game) SideToMove() board.Color { return g.sideToMove }

// Stalled reports whether black had no pieces on its last turn, which leaves
// black to move indefinitely.
func (g *Game) Stalled() bool { return g.stalled }

// State returns the controller state derived from the side to move.
func (g *Game) State() State {
	if g.sideToMove == board.Black {
		return AwaitingBlack
	}
	return AwaitingWhite
}

// History returns the plies applied so far, oldest first.
func (g *Game) History() []Ply {
	out := make([]Ply, len(g.history))
	copy(out, g.history)
	return out
}

// PieceAt returns the occupant of sq.
func (g *Game) PieceAt(sq board.Square) (board.Piece, error) {
	return g.board.PieceAt(sq)
}

// RequestMoves returns the candidate destinations of the piece on sq.
// It never mutates the session.
func (g *Game) RequestMoves(sq board.Square) ([]board.Square, error) {
	return board.CandidateMoves(g.board, sq)
}

// SubmitPlayerMove applies from->to without checking it against
// RequestMoves or the side to move, hands the turn to black and runs
// AutoMoveBlack before returning. Callers are expected to offer only
// destinations obtained from RequestMoves.
func (g *Game) SubmitPlayerMove(from, to board.Square) (Turn, error) {
	piece, err := g.board.PieceAt(from)
	if err != nil {
		return Turn{}, fmt.Errorf("submit move: %w", err)
	}
	if !to.IsValid() {
		return Turn{}, fmt.Errorf("submit move to %d: %w", to, board.ErrOutOfBounds)
	}
	if piece == board.NoPiece {
		return Turn{}, fmt.Errorf("submit move %v: %w", from, ErrEmptySquare)
	}

	player := g.apply(piece.Color(), from, to)
	g.sideToMove = board.Black
	reply := g.AutoMoveBlack()
	return Turn{Player: player, Reply: reply}, nil
}

// AutoMoveBlack lets the engine move one black piece. With no black pieces
// on the board the side to move stays black and the session is marked
// stalled; otherwise the turn returns to white, whether or not a move was
// found.
func (g *Game) AutoMoveBlack() Reply {
	choice := g.opponent.Choose(g.board, board.Black)

	switch choice.Outcome {
	case engine.NoPieces:
		g.stalled = true
		g.log.Warn("black has no pieces, session stalled")
		return Reply{Outcome: engine.NoPieces}
	case engine.NoMoves:
		g.log.Debug("black passes", zap.Stringer("piece", choice.Piece))
		g.sideToMove = board.White
		return Reply{Outcome: engine.NoMoves}
	}

	ply := g.apply(board.Black, choice.Move.From(), choice.Move.To())
	g.stalled = false
	g.sideToMove = board.White
	return Reply{Outcome: engine.Moved, Ply: ply}
}

// apply moves a piece on the board and records the ply. Squares must be valid.
func (g *Game) apply(side board.Color, from, to board.Square) Ply {
	move := board.NewMove(from, to)
	san := move.ToSAN(g.board)
	piece, _ := g.board.PieceAt(from)
	captured, _ := g.board.ApplyMove(from, to)

	ply := Ply{
		Side:     side,
		Move:     move,
		SAN:      san,
		Piece:    piece,
		Captured: captured,
	}
	g.history = append(g.history, ply)

	g.log.Debug("ply",
		zap.Int("ply", len(g.history)),
		zap.Stringer("side", side),
		zap.Stringer("move", ply.Move),
		zap.String("san", san),
		zap.String("piece", piece.Name()),
		zap.String("captured", captured.Name()),
	)
	return ply
}
