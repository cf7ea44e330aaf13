// Package config provides YAML-based tuning configuration for the domino game.
package config

// GameConfig contains all tuning for the path pipeline and the bundled physics.
type GameConfig struct {
	Domino  DominoConfig  `yaml:"domino"`
	Path    PathConfig    `yaml:"path"`
	Pusher  PusherConfig  `yaml:"pusher"`
	Physics PhysicsConfig `yaml:"physics"`
	Floor   FloorConfig   `yaml:"floor"`
}

// DominoConfig defines domino dimensions and spacing.
type DominoConfig struct {
	Width         float64 `yaml:"width"`          // Across the path
	Height        float64 `yaml:"height"`         // Upright extent
	Thickness     float64 `yaml:"thickness"`      // Along the path
	SpacingFactor float64 `yaml:"spacing_factor"` // Spacing as a fraction of Height
}

// Spacing returns the arc length between consecutive dominoes.
func (d DominoConfig) Spacing() float64 {
	return d.Height * d.SpacingFactor
}

// PathConfig defines curve fitting and resampling parameters.
type PathConfig struct {
	Alpha      float64 `yaml:"alpha"`      // Catmull-Rom knot exponent (0 uniform, 0.5 centripetal, 1 chordal)
	Resolution int     `yaml:"resolution"` // Parametric subdivisions per segment when placing markers
	DrawSteps  int     `yaml:"draw_steps"` // Samples per segment exposed for drawing
}

// PusherConfig defines the scripted pusher.
type PusherConfig struct {
	Radius          float64 `yaml:"radius"`
	Rate            float64 `yaml:"rate"`             // Exponential smoothing rate, 1/s
	ThresholdFactor float64 `yaml:"threshold_factor"` // Travel limit as a multiple of domino spacing
}

// PhysicsConfig tunes the topple engine.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`
	Nudge    float64 `yaml:"nudge"`    // Angular speed given to a domino hit by a kinematic body, rad/s
	Transfer float64 `yaml:"transfer"` // Fraction of angular speed passed to the next domino
	Substeps int     `yaml:"substeps"`
}

// FloorConfig defines the playable floor.
type FloorConfig struct {
	Size float64 `yaml:"size"` // Edge length of the square floor centered on the origin
}
