package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var shapeStyles = [tetris.ShapeCount + 1]tcell.Style{
	tetris.ShapeNone: tcell.StyleDefault.Background(tcell.ColorGray),
	tetris.ShapeI:    tcell.StyleDefault.Background(tcell.ColorAqua),
	tetris.ShapeO:    tcell.StyleDefault.Background(tcell.ColorYellow),
	tetris.ShapeT:    tcell.StyleDefault.Background(tcell.ColorPurple),
	tetris.ShapeS:    tcell.StyleDefault.Background(tcell.ColorGreen),
	tetris.ShapeZ:    tcell.StyleDefault.Background(tcell.ColorRed),
	tetris.ShapeJ:    tcell.StyleDefault.Background(tcell.ColorBlue),
	tetris.ShapeL:    tcell.StyleDefault.Background(tcell.ColorOrange),
}

var (
	wallStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// view draws a session with two terminal columns per well cell.
type view struct {
	screen  tcell.Screen
	session *tetris.Session
	rows    int
}

func newView(screen tcell.Screen, session *tetris.Session) *view {
	return &view{
		screen:  screen,
		session: session,
		rows:    session.Config().Spawn.Y + 2,
	}
}

func (v *view) draw() {
	v.screen.Clear()

	board := v.session.Board()
	cols := board.Width()

	for row := 0; row <= v.rows; row++ {
		v.screen.SetContent(0, row, '|', nil, wallStyle)
		v.screen.SetContent(1+cols*2, row, '|', nil, wallStyle)
	}
	for x := 0; x < cols*2+2; x++ {
		v.screen.SetContent(x, v.rows, '-', nil, wallStyle)
	}

	for _, lc := range board.Locked() {
		v.drawCell(lc.X, lc.Y, shapeStyles[lc.Shape])
	}
	shape, cells := v.session.Current()
	for _, c := range cells {
		v.drawCell(c.X, c.Y, shapeStyles[shape])
	}

	panelX := cols*2 + 4
	v.print(panelX, 0, textStyle, fmt.Sprintf("SCORE %d", v.session.Score()))
	v.print(panelX, 1, textStyle, fmt.Sprintf("LINES %d", v.session.Lines()))
	v.print(panelX, 3, textStyle, fmt.Sprintf("NEXT  %s", v.session.Next()))
	v.print(panelX, 5, textStyle, "arrows/hjkl move")
	v.print(panelX, 6, textStyle, "r restart, q quit")

	if v.session.IsGameOver() {
		v.print(panelX, 8, overStyle, "GAME OVER")
	}

	v.screen.Show()
}

func (v *view) drawCell(x, y int, style tcell.Style) {
	if y < 0 || y >= v.rows {
		return
	}
	row := v.rows - 1 - y
	v.screen.SetContent(1+x*2, row, ' ', nil, style)
	v.screen.SetContent(2+x*2, row, ' ', nil, style)
}

func (v *view) print(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
