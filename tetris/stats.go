package tetris

// SessionStats provides counters accumulated across every game a Session
// has played. Restarting does not reset them.
type SessionStats struct {
	Games int
	Ticks int64
	Locks int
	Lines int
	// Clears buckets lock events by the number of rows they cleared.
	Clears [5]int
	// Spawned counts spawned pieces per shape, indexed by shape - ShapeI.
	Spawned [ShapeCount]int
}

func (st *SessionStats) recordLock(cleared int) {
	st.Locks++
	st.Lines += cleared
	st.Clears[min(cleared, len(st.Clears)-1)]++
}

// SpawnedOf returns how many pieces of the given shape have spawned.
func (st SessionStats) SpawnedOf(shape Shape) int {
	if !shape.Valid() {
		return 0
	}
	return st.Spawned[shape-ShapeI]
}
