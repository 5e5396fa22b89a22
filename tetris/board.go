package tetris

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/kamstrup/intmap"
)

// RowScore is the base score for a cleared row. The k-th row cleared by a
// single resolution pass is worth RowScore*k.
const RowScore = 100

// Board is the authoritative store of locked cells. Columns outside
// [0, width) are walls and rows below 0 are floor; there is no ceiling.
type Board struct {
	width int
	cells *intmap.Map[cellKey, Shape]
}

// NewBoard creates an empty board with the given number of columns.
func NewBoard(width int) *Board {
	return &Board{
		width: width,
		cells: intmap.New[cellKey, Shape](width * 24),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Len returns the number of locked cells.
func (b *Board) Len() int {
	return b.cells.Len()
}

// Height returns one past the highest occupied row, or 0 for an empty board.
func (b *Board) Height() int {
	height := 0
	b.cells.ForEach(func(k cellKey, _ Shape) bool {
		if k.Y()+1 > height {
			height = k.Y() + 1
		}
		return true
	})
	return height
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0
}

// IsOccupied reports whether (x, y) holds a locked cell, a wall or the floor.
func (b *Board) IsOccupied(x, y int) bool {
	if !b.inBounds(x, y) {
		return true
	}
	_, ok := b.cells.Get(keyOf(x, y))
	return ok
}

// ShapeAt returns the shape that locked the cell at (x, y).
func (b *Board) ShapeAt(x, y int) (Shape, bool) {
	if !b.inBounds(x, y) {
		return ShapeNone, false
	}
	return b.cells.Get(keyOf(x, y))
}

// CanPlace reports whether every cell is inside the well and unoccupied.
func (b *Board) CanPlace(cells ...Cell) bool {
	for _, c := range cells {
		if b.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock marks each cell occupied without a shape tag.
func (b *Board) Lock(cells ...Cell) error {
	return b.LockShape(ShapeNone, cells...)
}

// LockShape marks each cell occupied and tags it with shape. All cells are
// validated before any is written, so a failed lock leaves the board as it
// was.
func (b *Board) LockShape(shape Shape, cells ...Cell) error {
	for i, c := range cells {
		if !b.inBounds(c.X, c.Y) {
			return fmt.Errorf("lock (%d,%d): %w", c.X, c.Y, ErrOutOfBounds)
		}
		if _, ok := b.cells.Get(keyOf(c.X, c.Y)); ok {
			return fmt.Errorf("lock (%d,%d): %w", c.X, c.Y, ErrCellOccupied)
		}
		if slices.Contains(cells[:i], c) {
			return fmt.Errorf("lock (%d,%d) twice: %w", c.X, c.Y, ErrCellOccupied)
		}
	}

	for _, c := range cells {
		b.cells.Put(keyOf(c.X, c.Y), shape)
	}
	return nil
}

// RowCounts returns the number of locked cells in each row from 0 up to
// Height()-1.
func (b *Board) RowCounts() []int {
	counts := make([]int, b.Height())
	b.cells.ForEach(func(k cellKey, _ Shape) bool {
		counts[k.Y()]++
		return true
	})
	return counts
}

// fullRows returns the rows whose count reaches the board width, highest
// row first.
func (b *Board) fullRows() []int {
	counts := intmap.New[int, int](32)
	b.cells.ForEach(func(k cellKey, _ Shape) bool {
		n, _ := counts.Get(k.Y())
		counts.Put(k.Y(), n+1)
		return true
	})

	var rows []int
	counts.ForEach(func(y, n int) bool {
		if n >= b.width {
			rows = append(rows, y)
		}
		return true
	})

	sort.Sort(sort.Reverse(sort.IntSlice(rows)))
	return rows
}

// ClearFullRows removes every full row and drops the cells above each one
// by the number of cleared rows beneath them. Rows are scored highest
// first: the k-th cleared row adds RowScore*k.
func (b *Board) ClearFullRows() (cleared int, scoreDelta int) {
	rows := b.fullRows()
	if len(rows) == 0 {
		return 0, 0
	}

	for k := range rows {
		scoreDelta += RowScore * (k + 1)
	}

	// Ascending copy so SearchInts counts cleared rows strictly below y.
	ascending := slices.Clone(rows)
	slices.Sort(ascending)

	compacted := intmap.New[cellKey, Shape](b.cells.Len())
	b.cells.ForEach(func(k cellKey, shape Shape) bool {
		y := k.Y()
		below := sort.SearchInts(ascending, y)
		if below < len(ascending) && ascending[below] == y {
			return true
		}
		compacted.Put(keyOf(k.X(), y-below), shape)
		return true
	})
	b.cells = compacted

	return len(rows), scoreDelta
}

// CheckGameOver reports whether any locked cell sits on the spawn row.
func (b *Board) CheckGameOver(spawnRowY int) bool {
	for x := range b.width {
		if _, ok := b.cells.Get(keyOf(x, spawnRowY)); ok {
			return true
		}
	}
	return false
}

// Clear removes every locked cell.
func (b *Board) Clear() {
	b.cells.Clear()
}

// Cells returns the locked cells ordered by row, then column.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.cells.Len())
	b.cells.ForEach(func(k cellKey, _ Shape) bool {
		cells = append(cells, k.Cell())
		return true
	})
	sortCells(cells)
	return cells
}

func sortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}

// String draws the board top row first, '#' for locked cells and '.' for
// empty ones.
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.Height() - 1; y >= 0; y-- {
		for x := range b.width {
			if b.IsOccupied(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// LockedCell is a locked cell together with the shape that placed it.
type LockedCell struct {
	Cell
	Shape Shape
}

// Locked returns every locked cell with its shape tag, ordered like Cells.
func (b *Board) Locked() []LockedCell {
	locked := make([]LockedCell, 0, b.cells.Len())
	b.cells.ForEach(func(k cellKey, shape Shape) bool {
		locked = append(locked, LockedCell{Cell: k.Cell(), Shape: shape})
		return true
	})
	slices.SortFunc(locked, func(a, b LockedCell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return locked
}
