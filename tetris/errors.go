package tetris

import "errors"

var (
	// ErrCellOccupied is returned when a lock targets a cell that is already
	// locked, or names the same cell twice.
	ErrCellOccupied = errors.New("tetris: cell already occupied")

	// ErrOutOfBounds is returned when a lock targets a wall or floor cell.
	ErrOutOfBounds = errors.New("tetris: cell out of bounds")

	// ErrLockFault marks a lock event whose cells failed validation. The
	// board is unchanged when it is returned, but the piece that produced it
	// was not validated correctly and the session should be considered
	// inconsistent.
	ErrLockFault = errors.New("tetris: lock fault")

	// ErrInvalidConfig is wrapped by every Config validation error.
	ErrInvalidConfig = errors.New("tetris: invalid config")
)
