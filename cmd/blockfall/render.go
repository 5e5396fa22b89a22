package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	borderColor     = color.RGBA{130, 130, 130, 255}
	outlineColor    = color.RGBA{0, 0, 0, 255}
	ghostColor      = color.RGBA{255, 255, 255, 40}
)

var shapeColors = [tetris.ShapeCount + 1]color.RGBA{
	tetris.ShapeNone: {130, 130, 130, 255},
	tetris.ShapeI:    {102, 191, 255, 255},
	tetris.ShapeO:    {255, 203, 0, 255},
	tetris.ShapeT:    {135, 60, 190, 255},
	tetris.ShapeS:    {0, 158, 47, 255},
	tetris.ShapeZ:    {255, 109, 194, 255},
	tetris.ShapeJ:    {0, 121, 241, 255},
	tetris.ShapeL:    {255, 161, 0, 255},
}

// layout maps well coordinates (y up) to screen pixels (y down).
type layout struct {
	originX int
	originY int
	cols    int
	rows    int
	scale   int
}

func newLayout(cfg tetris.Config, scale int) layout {
	return layout{
		originX: scale,
		originY: scale,
		cols:    cfg.Width,
		rows:    cfg.Spawn.Y + 2,
		scale:   scale,
	}
}

func (l layout) screenSize() (int, int) {
	return l.originX + (l.cols+7)*l.scale, l.originY + (l.rows+1)*l.scale
}

func (l layout) cellRect(x, y int) (float32, float32, float32) {
	sx := l.originX + x*l.scale
	sy := l.originY + (l.rows-1-y)*l.scale
	return float32(sx), float32(sy), float32(l.scale)
}

func (l layout) drawCell(screen *ebiten.Image, x, y int, c color.Color) {
	if y < 0 || y >= l.rows {
		return
	}
	sx, sy, size := l.cellRect(x, y)
	vector.DrawFilledRect(screen, sx, sy, size, size, c, false)
	vector.StrokeRect(screen, sx, sy, size, size, 1, outlineColor, false)
}

func (l layout) drawWell(screen *ebiten.Image, session *tetris.Session) {
	w := float32(l.cols * l.scale)
	h := float32(l.rows * l.scale)
	vector.StrokeRect(screen, float32(l.originX)-2, float32(l.originY)-2, w+4, h+4, 2, borderColor, false)

	board := session.Board()
	for _, lc := range board.Locked() {
		l.drawCell(screen, lc.X, lc.Y, shapeColors[lc.Shape])
	}

	shape, cells := session.Current()
	if shape == tetris.ShapeNone {
		return
	}

	for _, c := range ghostCells(board, cells) {
		sx, sy, size := l.cellRect(c.X, c.Y)
		if c.Y < l.rows {
			vector.DrawFilledRect(screen, sx, sy, size, size, ghostColor, false)
		}
	}
	for _, c := range cells {
		l.drawCell(screen, c.X, c.Y, shapeColors[shape])
	}
}

// ghostCells returns where cells would come to rest if dropped straight down.
func ghostCells(board *tetris.Board, cells []tetris.Cell) []tetris.Cell {
	ghost := make([]tetris.Cell, len(cells))
	copy(ghost, cells)

	shifted := make([]tetris.Cell, len(cells))
	for {
		for i, c := range ghost {
			shifted[i] = c.Add(0, -1)
		}
		if !board.CanPlace(shifted...) {
			return ghost
		}
		copy(ghost, shifted)
	}
}

func (l layout) drawPanel(screen *ebiten.Image, session *tetris.Session) {
	textX := l.originX + (l.cols+1)*l.scale
	textY := l.originY

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d\n\nLINES\n%d\n\nNEXT", session.Score(), session.Lines()), textX, textY)

	if next := session.Next(); next != tetris.ShapeNone {
		previewY := textY + 7*16
		for _, off := range next.Offsets(0) {
			sx := float32(textX + (off.X+1)*l.scale/2)
			sy := float32(previewY + (1-off.Y)*l.scale/2)
			size := float32(l.scale / 2)
			vector.DrawFilledRect(screen, sx, sy, size, size, shapeColors[next], false)
			vector.StrokeRect(screen, sx, sy, size, size, 1, outlineColor, false)
		}
	}

	help := "LEFT/RIGHT move\nUP/Z rotate\nDOWN drop\nR restart\nQ quit"
	ebitenutil.DebugPrintAt(screen, help, textX, textY+11*16)

	if session.IsGameOver() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nPress R to restart", l.originX+l.scale, l.originY+l.rows*l.scale/2)
	}
}
