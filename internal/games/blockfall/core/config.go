package core

import (
	"errors"
	"fmt"
	"time"
)

// RandomizerKind selects how upcoming shapes are drawn.
type RandomizerKind string

const (
	RandomizerUniform RandomizerKind = "uniform" // Independent uniform draw per piece
	RandomizerBag     RandomizerKind = "bag"     // Shuffled bag of all seven shapes
)

// Config holds the simulation parameters of one game.
type Config struct {
	Width  int // Playfield columns
	Height int // Allocated playfield rows

	Gravity        time.Duration // Interval between gravity steps
	LateralRepeat  time.Duration // Auto-repeat interval for held left/right
	SoftDropRepeat time.Duration // Auto-repeat interval for held soft drop
	LockDelay      time.Duration // Grounded time before a piece locks; zero locks on contact

	SpawnRowFromTop int // Spawned shapes put their lowest row at Height - SpawnRowFromTop
	LossMargin      int // Locking a block at or above Height - LossMargin ends the game

	// Kicks are relative translations tried in order after a rotation fails.
	// Each step is applied on top of the previous one.
	Kicks []Pos

	Randomizer RandomizerKind
}

// DefaultKicks returns the canonical kick sequence. Accumulated, it tries
// absolute offsets +1, +2, -1, -2 on the x axis and finally (-1, -2).
func DefaultKicks() []Pos {
	return []Pos{
		{X: 1, Y: 0},
		{X: 1, Y: 0},
		{X: -3, Y: 0},
		{X: -1, Y: 0},
		{X: 1, Y: -2},
	}
}

// DefaultConfig returns the standard rules on a 10x22 field.
func DefaultConfig() Config {
	return Config{
		Width:           10,
		Height:          22,
		Gravity:         750 * time.Millisecond,
		LateralRepeat:   80 * time.Millisecond,
		SoftDropRepeat:  80 * time.Millisecond,
		LockDelay:       250 * time.Millisecond,
		SpawnRowFromTop: 2,
		LossMargin:      2,
		Kicks:           DefaultKicks(),
		Randomizer:      RandomizerUniform,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 4 {
		errs = append(errs, fmt.Errorf("width must be at least 4, got %d", c.Width))
	}
	if c.Height < 4 {
		errs = append(errs, fmt.Errorf("height must be at least 4, got %d", c.Height))
	}
	if c.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %v", c.Gravity))
	}
	if c.LateralRepeat <= 0 {
		errs = append(errs, fmt.Errorf("lateral repeat must be positive, got %v", c.LateralRepeat))
	}
	if c.SoftDropRepeat <= 0 {
		errs = append(errs, fmt.Errorf("soft drop repeat must be positive, got %v", c.SoftDropRepeat))
	}
	if c.LockDelay < 0 {
		errs = append(errs, fmt.Errorf("lock delay must not be negative, got %v", c.LockDelay))
	}
	if c.SpawnRowFromTop < 1 || c.SpawnRowFromTop > c.Height {
		errs = append(errs, fmt.Errorf("spawn row from top must be in [1, %d], got %d", c.Height, c.SpawnRowFromTop))
	}
	if c.LossMargin < 0 || c.LossMargin >= c.Height {
		errs = append(errs, fmt.Errorf("loss margin must be in [0, %d), got %d", c.Height, c.LossMargin))
	}
	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag, "":
	default:
		errs = append(errs, fmt.Errorf("unknown randomizer %q", c.Randomizer))
	}
	return errors.Join(errs...)
}
