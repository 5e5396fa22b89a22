package tetris

import (
	"fmt"
	"math"
)

// Config is fixed at session construction.
type Config struct {
	// Width is the number of columns in the well.
	Width int
	// FallInterval is the number of seconds between automatic drops.
	FallInterval float64
	// Spawn is the pivot of every new piece. Its row is the game-over line.
	Spawn Cell
	// Seed makes the piece sequence reproducible. Nil picks a random seed.
	Seed *uint64
}

// DefaultConfig returns a 10-wide well with a half-second fall interval.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		FallInterval: 0.5,
		Spawn:        Cell{X: 4, Y: 20},
	}
}

// WithSeed returns a copy of the config using a fixed seed.
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = &seed
	return c
}

// Validate checks that every shape can spawn inside the well.
func (c Config) Validate() error {
	if c.Width < 4 {
		return fmt.Errorf("%w: width %d is narrower than the I piece", ErrInvalidConfig, c.Width)
	}
	if c.FallInterval <= 0 || math.IsNaN(c.FallInterval) || math.IsInf(c.FallInterval, 0) {
		return fmt.Errorf("%w: fall interval %v must be a positive number of seconds", ErrInvalidConfig, c.FallInterval)
	}
	if c.Spawn.Y < 0 {
		return fmt.Errorf("%w: spawn row %d is below the floor", ErrInvalidConfig, c.Spawn.Y)
	}

	for i := range ShapeCount {
		shape := shapeAt(i)
		for _, o := range shape.Offsets(0) {
			x := c.Spawn.X + o.X
			if x < 0 || x >= c.Width {
				return fmt.Errorf("%w: shape %s at spawn column %d leaves the well", ErrInvalidConfig, shape, c.Spawn.X)
			}
		}
	}
	return nil
}
