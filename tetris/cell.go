package tetris

// Cell is a board coordinate. X grows to the right, Y grows upward and
// row 0 is the floor row.
type Cell struct {
	X, Y int
}

// cellKey encodes both the column (upper 32 bits) and the row (lower 32 bits)
type cellKey uint64

func keyOf(x, y int) cellKey {
	return cellKey(uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y))))
}

// X extracts the column from the key
func (k cellKey) X() int {
	return int(int32(uint32(k >> 32)))
}

// Y extracts the row from the key
func (k cellKey) Y() int {
	return int(int32(uint32(k & 0xFFFFFFFF)))
}

func (k cellKey) Cell() Cell {
	return Cell{X: k.X(), Y: k.Y()}
}

// Add returns the cell translated by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
