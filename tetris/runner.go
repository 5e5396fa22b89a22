package tetris

import (
	"context"
	"time"
)

// RunnerStats provides timing statistics about executed frames.
type RunnerStats struct {
	Frames       int64
	Restarts     int
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AvgDuration  time.Duration
	LastDuration time.Duration
	TotalTime    time.Duration
}

// Runner drives a Session one frame at a time. Intents queued between
// frames are delivered together at the next frame boundary.
type Runner struct {
	session *Session
	buffer  IntentBuffer

	frames        int64
	restarts      int
	minDuration   time.Duration
	maxDuration   time.Duration
	lastDuration  time.Duration
	totalDuration time.Duration
}

// NewRunner creates a runner for the given session.
func NewRunner(session *Session) *Runner {
	return &Runner{
		session:     session,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (r *Runner) Session() *Session {
	return r.session
}

// Queue buffers an intent for the next frame.
func (r *Runner) Queue(intent Intent) {
	r.buffer.Queue(intent)
}

// Once executes a single frame with the given delta time. A buffered
// restart is applied before the tick.
func (r *Runner) Once(dt float64) (TickResult, error) {
	intents, restart := r.buffer.Flush()

	start := time.Now()
	if restart {
		r.session.Restart()
		r.restarts++
	}
	result, err := r.session.Tick(dt, intents)
	duration := time.Since(start)

	r.frames++
	r.lastDuration = duration
	r.totalDuration += duration
	if duration < r.minDuration {
		r.minDuration = duration
	}
	if duration > r.maxDuration {
		r.maxDuration = duration
	}

	return result, err
}

// Run executes frames at the given interval until the context is cancelled
// or a tick fails. Intents received on the channel are queued for the next
// frame; a nil channel is allowed. frame, if not nil, is called after every
// tick on the same goroutine.
func (r *Runner) Run(ctx context.Context, interval time.Duration, intents <-chan Intent, frame func(TickResult)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case intent, ok := <-intents:
			if !ok {
				intents = nil
				continue
			}
			r.Queue(intent)
		case now := <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			dt := now.Sub(lastTime).Seconds()
			lastTime = now

			result, err := r.Once(dt)
			if err != nil {
				return err
			}
			if frame != nil {
				frame(result)
			}
		}
	}
}

// GetStats returns statistics about frame execution.
func (r *Runner) GetStats() RunnerStats {
	stats := RunnerStats{
		Frames:       r.frames,
		Restarts:     r.restarts,
		MaxDuration:  r.maxDuration,
		LastDuration: r.lastDuration,
		TotalTime:    r.totalDuration,
	}
	if r.frames > 0 {
		stats.MinDuration = r.minDuration
		stats.AvgDuration = r.totalDuration / time.Duration(r.frames)
	}
	return stats
}
