package tetris_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardWallsAndFloor(t *testing.T) {
	board := tetris.NewBoard(10)

	assert.True(t, board.IsOccupied(-1, 5), "left wall")
	assert.True(t, board.IsOccupied(10, 5), "right wall")
	assert.True(t, board.IsOccupied(3, -1), "floor")
	assert.False(t, board.IsOccupied(0, 0))
	assert.False(t, board.IsOccupied(9, 0))
	assert.False(t, board.IsOccupied(4, 1000), "no ceiling")
}

func TestBoardLockAndQuery(t *testing.T) {
	board := tetris.NewBoard(10)

	require.NoError(t, board.LockShape(tetris.ShapeT, tetris.Cell{X: 2, Y: 0}, tetris.Cell{X: 3, Y: 0}))
	require.NoError(t, board.Lock(tetris.Cell{X: 3, Y: 1}))

	assert.True(t, board.IsOccupied(2, 0))
	assert.True(t, board.IsOccupied(3, 1))
	assert.False(t, board.IsOccupied(2, 1))
	assert.Equal(t, 3, board.Len())
	assert.Equal(t, 2, board.Height())

	shape, ok := board.ShapeAt(2, 0)
	assert.True(t, ok)
	assert.Equal(t, tetris.ShapeT, shape)

	shape, ok = board.ShapeAt(3, 1)
	assert.True(t, ok)
	assert.Equal(t, tetris.ShapeNone, shape)

	_, ok = board.ShapeAt(5, 5)
	assert.False(t, ok)

	assert.Equal(t, []tetris.Cell{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}}, board.Cells())
	assert.Equal(t, []int{2, 1}, board.RowCounts())
}

func TestBoardCanPlace(t *testing.T) {
	board := parseBoard(t, ""+
		"..........\n"+
		"....#.....\n")

	assert.True(t, board.CanPlace(tetris.Cell{X: 0, Y: 0}, tetris.Cell{X: 9, Y: 1}))
	assert.False(t, board.CanPlace(tetris.Cell{X: 0, Y: 0}, tetris.Cell{X: 4, Y: 0}), "overlaps a locked cell")
	assert.False(t, board.CanPlace(tetris.Cell{X: -1, Y: 3}), "left wall")
	assert.False(t, board.CanPlace(tetris.Cell{X: 10, Y: 3}), "right wall")
	assert.False(t, board.CanPlace(tetris.Cell{X: 2, Y: -1}), "floor")
	assert.True(t, board.CanPlace(), "empty set")
}

func TestBoardLockFaults(t *testing.T) {
	tests := []struct {
		name  string
		cells []tetris.Cell
		err   error
	}{
		{"occupied", []tetris.Cell{{X: 0, Y: 1}, {X: 4, Y: 0}}, tetris.ErrCellOccupied},
		{"duplicate", []tetris.Cell{{X: 1, Y: 1}, {X: 1, Y: 1}}, tetris.ErrCellOccupied},
		{"left wall", []tetris.Cell{{X: 0, Y: 1}, {X: -1, Y: 1}}, tetris.ErrOutOfBounds},
		{"right wall", []tetris.Cell{{X: 10, Y: 1}}, tetris.ErrOutOfBounds},
		{"floor", []tetris.Cell{{X: 2, Y: -1}}, tetris.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := tetris.NewBoard(10)
			require.NoError(t, board.Lock(tetris.Cell{X: 4, Y: 0}))

			err := board.Lock(tt.cells...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)

			// Nothing from the rejected lock may have been written.
			assert.Equal(t, []tetris.Cell{{X: 4, Y: 0}}, board.Cells())
		})
	}
}

func TestClearFullRowsScoring(t *testing.T) {
	for k := 0; k <= 4; k++ {
		t.Run(fmt.Sprintf("rows=%d", k), func(t *testing.T) {
			board := tetris.NewBoard(10)
			for y := range k {
				require.NoError(t, board.Lock(fillRow(10, y)...))
			}
			// A partial row on top of the stack survives.
			require.NoError(t, board.Lock(tetris.Cell{X: 0, Y: k}))

			cleared, delta := board.ClearFullRows()
			assert.Equal(t, k, cleared)
			assert.Equal(t, 100*k*(k+1)/2, delta)
			assert.Equal(t, []tetris.Cell{{X: 0, Y: 0}}, board.Cells())
		})
	}
}

func TestClearFullRowsKeepsShapes(t *testing.T) {
	board := tetris.NewBoard(4)
	require.NoError(t, board.Lock(fillRow(4, 0)...))
	require.NoError(t, board.LockShape(tetris.ShapeZ, tetris.Cell{X: 2, Y: 1}))

	cleared, _ := board.ClearFullRows()
	require.Equal(t, 1, cleared)

	shape, ok := board.ShapeAt(2, 0)
	assert.True(t, ok)
	assert.Equal(t, tetris.ShapeZ, shape)
}

// compactReference deletes the full rows of a drawing-free board model and
// collapses the stack in a single batch.
func compactReference(rows [][]bool, width int) []tetris.Cell {
	var cells []tetris.Cell
	next := 0
	for _, row := range rows {
		count := 0
		for _, occupied := range row {
			if occupied {
				count++
			}
		}
		if count >= width {
			continue
		}
		for x, occupied := range row {
			if occupied {
				cells = append(cells, tetris.Cell{X: x, Y: next})
			}
		}
		next++
	}
	return cells
}

func TestClearFullRowsMatchesBatchCompaction(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const width = 6

	for trial := range 200 {
		height := 1 + rng.IntN(12)
		rows := make([][]bool, height)
		board := tetris.NewBoard(width)
		full := 0

		for y := range height {
			rows[y] = make([]bool, width)
			if rng.IntN(3) == 0 {
				for x := range width {
					rows[y][x] = true
				}
				full++
			} else {
				for x := range width {
					rows[y][x] = rng.IntN(2) == 0
				}
				// Keep at least one gap so the row stays partial.
				rows[y][rng.IntN(width)] = false
			}

			for x, occupied := range rows[y] {
				if occupied {
					require.NoError(t, board.Lock(tetris.Cell{X: x, Y: y}))
				}
			}
		}

		cleared, delta := board.ClearFullRows()
		expected := compactReference(rows, width)
		if expected == nil {
			expected = []tetris.Cell{}
		}

		require.Equal(t, full, cleared, "trial %d", trial)
		require.Equal(t, 100*full*(full+1)/2, delta, "trial %d", trial)
		require.Equal(t, expected, board.Cells(), "trial %d", trial)
	}
}

func TestCheckGameOver(t *testing.T) {
	board := tetris.NewBoard(10)
	assert.False(t, board.CheckGameOver(20))

	require.NoError(t, board.Lock(tetris.Cell{X: 4, Y: 19}, tetris.Cell{X: 4, Y: 21}))
	assert.False(t, board.CheckGameOver(20), "cells above and below the spawn row do not count")

	require.NoError(t, board.Lock(tetris.Cell{X: 9, Y: 20}))
	assert.True(t, board.CheckGameOver(20))
}

func TestBoardClear(t *testing.T) {
	board := parseBoard(t, ""+
		"#...\n"+
		"##.#\n")
	require.Equal(t, 4, board.Len())

	board.Clear()
	assert.Equal(t, 0, board.Len())
	assert.Equal(t, 0, board.Height())
	assert.Empty(t, board.Cells())
	assert.Equal(t, "", board.String())
}

func TestBoardString(t *testing.T) {
	drawing := "" +
		"..#.\n" +
		"#..#\n" +
		"####\n"
	board := parseBoard(t, drawing)
	assert.Equal(t, drawing, board.String())
}
