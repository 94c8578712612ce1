package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the hardcoded standard configuration.
// It matches the embedded defaults/blockfall.yaml.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 22,
		},
		Timing: TimingConfig{
			Gravity:        Duration(750 * time.Millisecond),
			LateralRepeat:  Duration(80 * time.Millisecond),
			SoftDropRepeat: Duration(80 * time.Millisecond),
			LockDelay:      Duration(250 * time.Millisecond),
		},
		Spawn: SpawnConfig{
			RowFromTop: 2,
			LossMargin: 2,
			Randomizer: "uniform",
		},
		Rotation: RotationConfig{
			Kicks: []KickStep{
				{X: 1, Y: 0},
				{X: 1, Y: 0},
				{X: -3, Y: 0},
				{X: -1, Y: 0},
				{X: 1, Y: -2},
			},
		},
		Input: InputConfig{
			HoldWindow: Duration(150 * time.Millisecond),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
