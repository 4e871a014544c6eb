package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/hailam/minichess/internal/board"
	"github.com/hailam/minichess/internal/config"
	"github.com/hailam/minichess/internal/engine"
	"github.com/hailam/minichess/internal/game"
)

// UI Constants
const (
	ScreenWidth  = 500
	ScreenHeight = 500
	BoardSize    = 500
	CellSize     = BoardSize / board.Size
)

// UIScale is the global HiDPI scale factor, set by Game.Layout and used by
// the input handler to map cursor positions back to logical pixels.
var UIScale float64 = 1.0

// Game implements ebiten.Game on top of a game session.
type Game struct {
	session   *game.Game
	selection *game.Selection

	lastMove  board.Move
	showMoves bool

	// Components
	renderer *Renderer
	input    *InputHandler
	feedback *FeedbackManager

	log *zap.Logger

	// HiDPI scaling
	scale float64
}

// NewGame creates the window state for session.
func NewGame(session *game.Game, cfg *config.Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		session:   session,
		selection: game.NewSelection(session),
		lastMove:  board.NoMove,
		showMoves: cfg.ShowMoves,
		renderer:  NewRenderer(BoardSize, CellSize),
		input:     NewInputHandler(),
		feedback:  NewFeedbackManager(cfg.Sound, cfg.Volume),
		log:       log,
		scale:     1.0,
	}
	return g
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	g.handleKeys()
	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// handleKeys processes keyboard shortcuts.
func (g *Game) handleKeys() {
	if IsKeyJustPressed(ebiten.KeyN) {
		g.NewGameAction()
	}
	if IsKeyJustPressed(ebiten.KeyM) {
		g.feedback.ToggleMute()
	}
	if IsKeyJustPressed(ebiten.KeyH) {
		g.showMoves = !g.showMoves
	}
	if IsKeyJustPressed(ebiten.KeyEscape) {
		g.selection.Clear()
	}
}

// handleBoardInput forwards clicks on the board to the selection.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}

	mx, my := g.input.MousePosition()
	sq, ok := g.renderer.CellAt(mx, my)
	if !ok {
		return
	}

	if g.session.Stalled() {
		g.feedback.OnStalled()
		return
	}

	click, err := g.selection.Click(sq)
	if err != nil {
		g.log.Error("click failed", zap.Stringer("square", sq), zap.Error(err))
		return
	}
	if click.Kind == game.ClickMoved {
		g.onTurn(click.Turn)
	}
}

// onTurn updates feedback after the player's move and black's reply.
func (g *Game) onTurn(turn game.Turn) {
	g.lastMove = turn.Player.Move
	g.feedback.OnMoveMade(turn.Player.Captured != board.NoPiece)

	switch turn.Reply.Outcome {
	case engine.Moved:
		g.lastMove = turn.Reply.Ply.Move
		g.feedback.OnReply(turn.Reply.Ply)
	case engine.NoMoves:
		g.feedback.OnPass()
	case engine.NoPieces:
		g.feedback.OnStalled()
	}
}

// updateCursor shows a pointer over white pieces and move targets.
func (g *Game) updateCursor() {
	mx, my := g.input.MousePosition()
	sq, ok := g.renderer.CellAt(mx, my)
	if !ok || g.session.SideToMove() != board.White {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		return
	}

	p, _ := g.session.PieceAt(sq)
	hovered := p != board.NoPiece && p.Color() == board.White
	for _, t := range g.selection.Targets() {
		if t == sq {
			hovered = true
		}
	}

	if hovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the board, highlights, pieces and feedback.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	selected, _ := g.selection.Selected()
	var targets []board.Square
	if g.showMoves {
		targets = g.selection.Targets()
	}
	g.renderer.DrawHighlights(screen, selected, targets, g.lastMove)

	g.renderer.DrawPieces(screen, g.session.Board(), g.feedback.Animations())
	g.feedback.Draw(screen, g.renderer)
}

// Layout returns the logical screen size scaled for HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// NewGameAction starts a new session.
func (g *Game) NewGameAction() {
	g.session.Reset()
	g.selection.Clear()
	g.lastMove = board.NoMove
	g.feedback.OnNewGame()
	g.log.Info("new game from keyboard", zap.String("session", g.session.ID()))
}

// Session returns the underlying game session.
func (g *Game) Session() *game.Game {
	return g.session
}
