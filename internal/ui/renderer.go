package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/minichess/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	TargetOutline  color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
	LabelColor     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		TargetOutline:  color.RGBA{40, 200, 60, 255},   // Green
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		Background:     color.RGBA{40, 44, 52, 255},
		LabelColor:     color.RGBA{60, 50, 40, 200},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites   *SpriteManager
	theme     *Theme
	boardSize int
	cellSize  int
	scale     float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, cellSize int) *Renderer {
	return &Renderer{
		sprites:   NewSpriteManager(cellSize),
		theme:     DefaultTheme(),
		boardSize: boardSize,
		cellSize:  cellSize,
		scale:     1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the cells and their coordinate labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			x, y := col*r.cellSize, row*r.cellSize
			vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.cellSize), r.s(r.cellSize), c, false)
		}
	}

	r.drawCoordinates(screen)
}

// drawCoordinates labels every cell with its algebraic name in the top-left corner.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(11 * r.scale)
	if face == nil {
		return
	}
	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		x, y := r.CellOrigin(sq)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(x+4)), float64(r.s(y+2)))
		op.ColorScale.ScaleWithColor(r.theme.LabelColor)
		text.Draw(screen, sq.String(), face, op)
	}
}

// DrawHighlights draws the last move tint, the selected cell and a green
// outline around every candidate destination.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets []board.Square, lastMove board.Move) {
	if lastMove != board.NoMove {
		r.highlightSquare(screen, lastMove.From(), r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To(), r.theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, sq := range targets {
		r.outlineSquare(screen, sq, r.theme.TargetOutline)
	}
}

// highlightSquare draws a colored overlay on a cell.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.CellOrigin(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.cellSize), r.s(r.cellSize), c, false)
}

// outlineSquare strokes the border of a cell.
func (r *Renderer) outlineSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.CellOrigin(sq)
	width := r.s(4)
	inset := width / 2
	size := r.s(r.cellSize) - width
	vector.StrokeRect(screen, r.s(x)+inset, r.s(y)+inset, size, size, width, c, true)
}

// DrawPieces draws every occupant of b, applying shake offsets from anims.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, anims *AnimationManager) {
	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		piece, err := b.PieceAt(sq)
		if err != nil || piece == board.NoPiece {
			continue
		}

		x, y := r.CellOrigin(sq)
		if anims != nil {
			offsetX, offsetY := anims.GetShakeOffset(sq)
			x += int(offsetX)
			y += int(offsetY)
		}

		r.sprites.DrawPieceAt(screen, piece, int(r.s(x)), int(r.s(y)), r.scale)
	}
}

// CellOrigin returns the top-left pixel of sq. Row r is drawn at y = r*cellSize.
func (r *Renderer) CellOrigin(sq board.Square) (int, int) {
	return sq.Col() * r.cellSize, sq.Row() * r.cellSize
}

// CellAt maps a logical pixel to the cell under it.
func (r *Renderer) CellAt(x, y int) (board.Square, bool) {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare, false
	}
	sq, err := board.NewSquare(y/r.cellSize, x/r.cellSize)
	if err != nil {
		return board.NoSquare, false
	}
	return sq, true
}

// CellSize returns the size of one cell in pixels.
func (r *Renderer) CellSize() int {
	return r.cellSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

