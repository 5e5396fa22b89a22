package tetris_test

import (
	"strings"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

// parseBoard builds a board from a drawing whose last line is row 0.
// '#' marks a locked cell; any other byte is empty.
func parseBoard(t *testing.T, drawing string) *tetris.Board {
	t.Helper()

	lines := strings.Split(strings.TrimRight(drawing, "\n"), "\n")
	require.NotEmpty(t, lines)

	board := tetris.NewBoard(len(lines[0]))
	for i, line := range lines {
		require.Len(t, line, board.Width(), "line %d of drawing", i)
		y := len(lines) - 1 - i
		for x := range len(line) {
			if line[x] == '#' {
				require.NoError(t, board.Lock(tetris.Cell{X: x, Y: y}))
			}
		}
	}
	return board
}

// fillRow returns every cell of row y on a board of the given width.
func fillRow(width, y int) []tetris.Cell {
	cells := make([]tetris.Cell, width)
	for x := range width {
		cells[x] = tetris.Cell{X: x, Y: y}
	}
	return cells
}

// allShapes lists the seven playable shapes.
func allShapes() []tetris.Shape {
	return []tetris.Shape{
		tetris.ShapeI, tetris.ShapeO, tetris.ShapeT, tetris.ShapeS,
		tetris.ShapeZ, tetris.ShapeJ, tetris.ShapeL,
	}
}

// minMaxX returns the horizontal extent of a set of cells.
func minMaxX(cells []tetris.Cell) (int, int) {
	lo, hi := cells[0].X, cells[0].X
	for _, c := range cells[1:] {
		lo = min(lo, c.X)
		hi = max(hi, c.X)
	}
	return lo, hi
}
