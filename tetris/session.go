package tetris

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// State is the lifecycle state of a Session.
type State uint8

const (
	StateIdle State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Locked     bool
	Cleared    int
	ScoreDelta int
	GameOver   bool
}

// Session sequences one game: it holds the board, the current and next
// piece, and applies intents and gravity each frame. A Session is not safe
// for concurrent use.
type Session struct {
	cfg   Config
	seed  uint64
	rng   *rand.Rand
	board *Board

	current *ActivePiece
	next    Shape

	state     State
	score     int
	lines     int
	fallTimer float64

	stats SessionStats
}

// NewSession validates cfg and returns an idle session.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := rand.Uint64()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	// The config keeps its own copy so callers cannot change the seed later.
	cfg.Seed = &seed

	return &Session{
		cfg:   cfg,
		seed:  seed,
		rng:   rand.New(rand.NewPCG(seed, seed)),
		board: NewBoard(cfg.Width),
	}, nil
}

// Start resets score and board, draws the first two pieces and enters
// StatePlaying. It may be called from any state.
func (s *Session) Start() {
	s.board.Clear()
	s.score = 0
	s.lines = 0
	s.fallTimer = 0
	s.current = nil
	s.state = StatePlaying
	s.stats.Games++

	s.next = s.draw()
	s.spawn()
}

// Restart is Start under the name frontends bind to their restart key.
func (s *Session) Restart() {
	s.Start()
}

// draw picks the next shape uniformly from the session generator.
func (s *Session) draw() Shape {
	return shapeAt(s.rng.IntN(ShapeCount))
}

// spawn promotes the next shape to the current piece. A spawn that
// overlaps the stack ends the game.
func (s *Session) spawn() bool {
	shape := s.next
	s.next = s.draw()
	s.stats.Spawned[shape-ShapeI]++

	piece := NewActivePiece(shape, s.cfg.Spawn)
	if !s.board.CanPlace(piece.AbsoluteCells()...) {
		s.current = nil
		s.state = StateGameOver
		return false
	}
	s.current = piece
	return true
}

// Tick advances the session by dt seconds after applying the frame's
// intents. Outside StatePlaying it does nothing. The returned error is
// non-nil only for a lock fault, which wraps ErrLockFault.
func (s *Session) Tick(dt float64, in Intents) (TickResult, error) {
	if s.state != StatePlaying {
		return TickResult{}, nil
	}
	s.stats.Ticks++

	if in.Rotate {
		s.current.TryRotate(s.board)
	}
	if in.MoveLeft {
		s.current.TryTranslate(-1, 0, s.board)
	}
	if in.MoveRight {
		s.current.TryTranslate(1, 0, s.board)
	}

	// A successful soft drop is this tick's only vertical step.
	if in.SoftDrop && s.current.TryTranslate(0, -1, s.board) {
		s.fallTimer = 0
		return TickResult{}, nil
	}

	if dt > 0 && !math.IsInf(dt, 1) {
		s.fallTimer += dt
	}
	if s.fallTimer < s.cfg.FallInterval {
		return TickResult{}, nil
	}
	s.fallTimer = 0

	if s.current.TryTranslate(0, -1, s.board) {
		return TickResult{}, nil
	}
	return s.lock()
}

func (s *Session) lock() (TickResult, error) {
	piece := s.current
	if err := s.board.LockShape(piece.Shape(), piece.AbsoluteCells()...); err != nil {
		return TickResult{}, fmt.Errorf("%w: %s piece at (%d,%d): %w",
			ErrLockFault, piece.Shape(), piece.Pivot().X, piece.Pivot().Y, err)
	}
	s.current = nil

	result := TickResult{Locked: true}
	result.Cleared, result.ScoreDelta = s.board.ClearFullRows()
	s.score += result.ScoreDelta
	s.lines += result.Cleared
	s.stats.recordLock(result.Cleared)

	if s.board.CheckGameOver(s.cfg.Spawn.Y) {
		s.state = StateGameOver
		result.GameOver = true
		return result, nil
	}

	result.GameOver = !s.spawn()
	return result, nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) IsGameOver() bool {
	return s.state == StateGameOver
}

func (s *Session) Score() int {
	return s.score
}

// Lines returns the number of rows cleared since the last Start.
func (s *Session) Lines() int {
	return s.lines
}

// Board returns the session board. Callers must treat it as read-only.
func (s *Session) Board() *Board {
	return s.board
}

// Current returns the shape and cells of the active piece, or ShapeNone
// when no piece is in play.
func (s *Session) Current() (Shape, []Cell) {
	if s.current == nil {
		return ShapeNone, nil
	}
	return s.current.Shape(), s.current.AbsoluteCells()
}

// Next returns the preselected shape that spawns after the current piece
// locks. It is ShapeNone before the first Start.
func (s *Session) Next() Shape {
	return s.next
}

// Seed returns the seed driving the piece sequence.
func (s *Session) Seed() uint64 {
	return s.seed
}

func (s *Session) Config() Config {
	return s.cfg
}

// Stats returns counters accumulated over the lifetime of the session.
func (s *Session) Stats() SessionStats {
	return s.stats
}
