package tetris

// Collider answers whether a set of cells can be occupied. *Board
// implements it.
type Collider interface {
	CanPlace(cells ...Cell) bool
}

// ActivePiece is the piece under player control. It validates every move
// against a Collider and never mutates it.
type ActivePiece struct {
	shape       Shape
	orientation int
	pivot       Cell
}

// NewActivePiece creates a piece in orientation 0 with its pivot at pivot.
func NewActivePiece(shape Shape, pivot Cell) *ActivePiece {
	return &ActivePiece{
		shape: shape,
		pivot: pivot,
	}
}

func (p *ActivePiece) Shape() Shape {
	return p.shape
}

func (p *ActivePiece) Orientation() int {
	return p.orientation
}

func (p *ActivePiece) Pivot() Cell {
	return p.pivot
}

// AbsoluteCells returns the board cells covered by the piece.
func (p *ActivePiece) AbsoluteCells() []Cell {
	return p.cellsAt(p.pivot, p.orientation)
}

func (p *ActivePiece) cellsAt(pivot Cell, orientation int) []Cell {
	offsets := p.shape.Offsets(orientation)
	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = pivot.Add(o.X, o.Y)
	}
	return cells
}

// TryTranslate moves the piece by (dx, dy) if the collider accepts the
// resulting cells. On rejection the piece is left untouched.
func (p *ActivePiece) TryTranslate(dx, dy int, c Collider) bool {
	pivot := p.pivot.Add(dx, dy)
	if !c.CanPlace(p.cellsAt(pivot, p.orientation)...) {
		return false
	}
	p.pivot = pivot
	return true
}

// TryRotate advances to the next orientation in place. There is no kick
// search: any overlap rejects the rotation.
func (p *ActivePiece) TryRotate(c Collider) bool {
	count := p.shape.Orientations()
	if count == 0 {
		return false
	}
	next := (p.orientation + 1) % count
	if !c.CanPlace(p.cellsAt(p.pivot, next)...) {
		return false
	}
	p.orientation = next
	return true
}

// IsRestingOnSupport reports whether a one-row drop would be rejected.
func (p *ActivePiece) IsRestingOnSupport(c Collider) bool {
	return !c.CanPlace(p.cellsAt(p.pivot.Add(0, -1), p.orientation)...)
}
