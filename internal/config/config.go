// Package config provides YAML-based configuration loading for blockfall.
package config

import (
	"errors"
	"fmt"

	bfcore "github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

// BlockfallConfig contains all configuration for a blockfall game.
type BlockfallConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Timing   TimingConfig   `yaml:"timing"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Rotation RotationConfig `yaml:"rotation"`
	Input    InputConfig    `yaml:"input"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the four simulation timers.
type TimingConfig struct {
	Gravity        Duration `yaml:"gravity"`
	LateralRepeat  Duration `yaml:"lateral_repeat"`
	SoftDropRepeat Duration `yaml:"soft_drop_repeat"`
	LockDelay      Duration `yaml:"lock_delay"`
}

// SpawnConfig defines where pieces enter and when the stack overflows.
type SpawnConfig struct {
	RowFromTop int    `yaml:"row_from_top"`
	LossMargin int    `yaml:"loss_margin"`
	Randomizer string `yaml:"randomizer"` // "uniform" or "bag"
}

// RotationConfig defines the wall kick sequence.
type RotationConfig struct {
	Kicks []KickStep `yaml:"kicks"`
}

// KickStep is one relative translation tried after a blocked rotation.
type KickStep struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// InputConfig defines how terminal key events become held actions.
type InputConfig struct {
	// HoldWindow is how long an action stays held after its last key event.
	// Terminals report repeats but no releases.
	HoldWindow Duration `yaml:"hold_window"`
}

// ToCore converts the file representation into simulation rules.
func (c BlockfallConfig) ToCore() bfcore.Config {
	kicks := make([]bfcore.Pos, len(c.Rotation.Kicks))
	for i, k := range c.Rotation.Kicks {
		kicks[i] = bfcore.P(k.X, k.Y)
	}
	return bfcore.Config{
		Width:           c.Grid.Width,
		Height:          c.Grid.Height,
		Gravity:         c.Timing.Gravity.Std(),
		LateralRepeat:   c.Timing.LateralRepeat.Std(),
		SoftDropRepeat:  c.Timing.SoftDropRepeat.Std(),
		LockDelay:       c.Timing.LockDelay.Std(),
		SpawnRowFromTop: c.Spawn.RowFromTop,
		LossMargin:      c.Spawn.LossMargin,
		Kicks:           kicks,
		Randomizer:      bfcore.RandomizerKind(c.Spawn.Randomizer),
	}
}

// Validate checks every field and reports all problems at once.
func (c BlockfallConfig) Validate() error {
	var errs []error
	if err := c.ToCore().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Input.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("hold window must be positive, got %v", c.Input.HoldWindow))
	}
	return errors.Join(errs...)
}
