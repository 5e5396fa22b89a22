package tetris

import (
	"fmt"
	"testing"
)

func TestCellKeyEncoding(t *testing.T) {
	tests := []Cell{
		{0, 0},
		{9, 0},
		{0, 21},
		{-1, 0},
		{0, -1},
		{-2147483648, 2147483647},
		{2147483647, -2147483648},
	}

	for _, c := range tests {
		t.Run(fmt.Sprintf("x=%d,y=%d", c.X, c.Y), func(t *testing.T) {
			k := keyOf(c.X, c.Y)
			if k.X() != c.X || k.Y() != c.Y {
				t.Errorf("key %#x decoded to (%d,%d), want (%d,%d)", uint64(k), k.X(), k.Y(), c.X, c.Y)
			}
			if k.Cell() != c {
				t.Errorf("Cell() = %+v, want %+v", k.Cell(), c)
			}
		})
	}
}

func TestCellKeyDistinct(t *testing.T) {
	seen := make(map[cellKey]Cell)
	for x := -2; x < 12; x++ {
		for y := -2; y < 24; y++ {
			k := keyOf(x, y)
			if prev, ok := seen[k]; ok {
				t.Fatalf("(%d,%d) and (%d,%d) share key %#x", x, y, prev.X, prev.Y, uint64(k))
			}
			seen[k] = Cell{x, y}
		}
	}
}

func TestOrientationTable(t *testing.T) {
	for i := range ShapeCount {
		shape := shapeAt(i)
		want := 4
		if shape == ShapeO {
			want = 1
		}
		if got := shape.Orientations(); got != want {
			t.Errorf("%s has %d orientations, want %d", shape, got, want)
		}

		// Four clockwise turns return to the starting offsets.
		offsets := baseOffsets[shape]
		for range 4 {
			offsets = rotateClockwise(offsets)
		}
		if offsets != baseOffsets[shape] {
			t.Errorf("%s does not return to orientation 0 after a full turn", shape)
		}
	}

	if ShapeNone.Orientations() != 0 {
		t.Errorf("ShapeNone should have no orientations")
	}
}
