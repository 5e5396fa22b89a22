package tetris

// Snapshot is a copy of everything a frontend needs to draw one frame.
type Snapshot struct {
	State      State
	Score      int
	Lines      int
	Board      []LockedCell
	Piece      Shape
	PieceCells []Cell
	Next       Shape
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	shape, cells := s.Current()
	return Snapshot{
		State:      s.state,
		Score:      s.score,
		Lines:      s.lines,
		Board:      s.board.Locked(),
		Piece:      shape,
		PieceCells: cells,
		Next:       s.next,
	}
}
