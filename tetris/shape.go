package tetris

// Shape identifies one of the seven tetromino variants.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of playable shapes, ShapeI through ShapeL.
const ShapeCount = 7

var shapeNames = [...]string{"none", "I", "O", "T", "S", "Z", "J", "L"}

func (s Shape) String() string {
	if int(s) >= len(shapeNames) {
		return "invalid"
	}
	return shapeNames[s]
}

// Valid reports whether s is one of the seven playable shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeL
}

// shapeAt maps an index in [0, ShapeCount) to its shape.
func shapeAt(i int) Shape {
	return ShapeI + Shape(i)
}

// Offsets relative to the pivot in orientation 0, Y up.
var baseOffsets = [...][4]Cell{
	ShapeI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	ShapeO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	ShapeT: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	ShapeS: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	ShapeZ: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
	ShapeJ: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeL: {{1, 1}, {-1, 0}, {0, 0}, {1, 0}},
}

var orientations = buildOrientations()

func buildOrientations() [ShapeCount + 1][][4]Cell {
	var table [ShapeCount + 1][][4]Cell
	for i := range ShapeCount {
		shape := shapeAt(i)
		count := 4
		if shape == ShapeO {
			// The O block has no cell-centred pivot, so it does not rotate.
			count = 1
		}

		current := baseOffsets[shape]
		table[shape] = make([][4]Cell, 0, count)
		for range count {
			table[shape] = append(table[shape], current)
			current = rotateClockwise(current)
		}
	}
	return table
}

// rotateClockwise turns offsets 90 degrees clockwise about the pivot.
func rotateClockwise(offsets [4]Cell) [4]Cell {
	var rotated [4]Cell
	for i, c := range offsets {
		rotated[i] = Cell{X: c.Y, Y: -c.X}
	}
	return rotated
}

// Orientations returns the number of distinct orientations of the shape.
func (s Shape) Orientations() int {
	if !s.Valid() {
		return 0
	}
	return len(orientations[s])
}

// Offsets returns the pivot-relative cells of the shape in the given
// orientation. The orientation wraps.
func (s Shape) Offsets(orientation int) [4]Cell {
	if !s.Valid() {
		return [4]Cell{}
	}
	table := orientations[s]
	orientation %= len(table)
	if orientation < 0 {
		orientation += len(table)
	}
	return table[orientation]
}
