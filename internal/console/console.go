// Package console implements a line-oriented text front end for a game
// session. It reads one command per line and writes one or more response
// lines.
//
//	new                      start a new game
//	position startpos        same as new
//	position <layout> [w|b]  load a custom layout
//	moves <square>|all       list candidate moves
//	move <from><to>|<san>    play a white move; black replies
//	d                        print the board
//	history                  print the plies played so far
//	quit                     stop reading
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/hailam/minichess/internal/board"
	"github.com/hailam/minichess/internal/engine"
	"github.com/hailam/minichess/internal/game"
)

var errUnknownCommand = errors.New("unknown command")

// Console drives a game session from text commands.
type Console struct {
	game   *game.Game
	engine *engine.Engine
	out    io.Writer
	log    *zap.Logger
}

// New creates a console writing responses to out. The opponent engine is
// kept across new games.
func New(eng *engine.Engine, out io.Writer, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Console{
		engine: eng,
		out:    out,
		log:    log,
	}
	c.game = c.newGame()
	return c
}

// Game returns the current session.
func (c *Console) Game() *game.Game { return c.game }

// Run processes commands from r until "quit" or end of input.
func (c *Console) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if !c.Execute(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// Execute handles a single command line. It returns false after "quit".
func (c *Console) Execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}

	parts := strings.Fields(line)
	cmd := parts[0]
	args := parts[1:]

	var err error
	switch cmd {
	case "quit":
		return false
	case "new":
		c.game = c.newGame()
		c.println("ok")
	case "position":
		err = c.handlePosition(args)
	case "moves":
		err = c.handleMoves(args)
	case "move":
		err = c.handleMove(args)
	case "d":
		c.handleDisplay()
	case "history":
		c.handleHistory()
	default:
		err = fmt.Errorf("%w %q", errUnknownCommand, cmd)
	}

	if err != nil {
		c.log.Debug("command failed", zap.String("line", line), zap.Error(err))
		c.println("error: " + err.Error())
	}
	return true
}

func (c *Console) newGame(opts ...game.Option) *game.Game {
	opts = append([]game.Option{game.WithEngine(c.engine), game.WithLogger(c.log)}, opts...)
	return game.New(opts...)
}

// handlePosition loads a layout.
// Formats:
//   - position startpos
//   - position RNBQK/PPPPP/5/ppppp/rnbqk w
func (c *Console) handlePosition(args []string) error {
	if len(args) == 0 {
		return errors.New("position: missing layout")
	}

	layout := strings.Join(args, " ")
	if args[0] == "startpos" {
		if len(args) > 1 {
			return fmt.Errorf("position: unexpected %q after startpos", args[1])
		}
		layout = board.StartLayout
	}

	b, side, err := board.ParseLayout(layout)
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	c.game = c.newGame(game.WithBoard(b, side))
	c.println("ok")
	return nil
}

// handleMoves prints candidate moves for one square, or every move of the
// side to move with "all".
func (c *Console) handleMoves(args []string) error {
	if len(args) != 1 {
		return errors.New("moves: need a square or \"all\"")
	}

	if args[0] == "all" {
		moves := board.GenerateMoves(c.game.Board(), c.game.SideToMove())
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.String()
		}
		c.println("moves all: " + joinOrNone(names))
		return nil
	}

	from, err := board.ParseSquare(args[0])
	if err != nil {
		return fmt.Errorf("moves: %w", err)
	}
	targets, err := c.game.RequestMoves(from)
	if err != nil {
		return fmt.Errorf("moves: %w", err)
	}
	names := make([]string, len(targets))
	for i, sq := range targets {
		names[i] = sq.String()
	}
	c.println(fmt.Sprintf("moves %s: %s", from, joinOrNone(names)))
	return nil
}

// handleMove plays a white move, given as coordinates or SAN, and reports
// black's answer.
func (c *Console) handleMove(args []string) error {
	if len(args) != 1 {
		return errors.New("move: need one move such as b1c3 or Nc3")
	}

	m, err := board.ParseMove(args[0])
	if errors.Is(err, board.ErrInvalidMove) || errors.Is(err, board.ErrInvalidSquare) {
		m, err = board.ParseSAN(args[0], c.game.Board(), board.White)
	}
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}

	turn, err := c.game.SubmitPlayerMove(m.From(), m.To())
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}

	switch turn.Reply.Outcome {
	case engine.Moved:
		c.println("reply " + turn.Reply.Ply.Move.String())
	case engine.NoMoves:
		c.println("reply none")
	case engine.NoPieces:
		c.println("stalled")
	}
	return nil
}

func (c *Console) handleDisplay() {
	fmt.Fprint(c.out, c.game.Board().String())
	status := c.game.SideToMove().String() + " to move"
	if c.game.Stalled() {
		status += " (stalled)"
	}
	c.println(status)
}

func (c *Console) handleHistory() {
	history := c.game.History()
	if len(history) == 0 {
		c.println("history: none")
		return
	}
	for i, ply := range history {
		c.println(fmt.Sprintf("%d. %s %s %s", i+1, ply.Side, ply.SAN, ply.Move))
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, " ")
}
