package config

import (
	_ "embed"
)

//go:embed defaults/dominoes.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/dominoes.yaml and backs it up if the embed cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Domino: DominoConfig{
			Width:         1.0,
			Height:        2.0,
			Thickness:     0.2,
			SpacingFactor: 0.6,
		},
		Path: PathConfig{
			Alpha:      0.5,
			Resolution: 1000,
			DrawSteps:  100,
		},
		Pusher: PusherConfig{
			Radius:          0.25,
			Rate:            2.0,
			ThresholdFactor: 1.75,
		},
		Physics: PhysicsConfig{
			Gravity:  9.81,
			Nudge:    1.5,
			Transfer: 0.8,
			Substeps: 4,
		},
		Floor: FloorConfig{
			Size: 40,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
