package config

import "fmt"

// Preset names a bundle of rule overrides.
type Preset string

const (
	PresetStandard Preset = "standard" // Lock delay as configured
	PresetInstant  Preset = "instant"  // Pieces lock the moment they land
)

// ParsePreset validates a preset name. An empty name means standard.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "", PresetStandard:
		return PresetStandard, nil
	case PresetInstant:
		return PresetInstant, nil
	default:
		return "", fmt.Errorf("unknown preset %q (want %q or %q)", name, PresetStandard, PresetInstant)
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *BlockfallConfig, preset Preset) {
	if preset == PresetInstant {
		cfg.Timing.LockDelay = 0
	}
}
