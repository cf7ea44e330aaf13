package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to scale per-tick motion.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// DT returns the fixed tick duration in seconds.
func (c RuntimeConfig) DT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level   int  // Current level (1-indexed)
	Won     bool // Whether the current level is won
	Physics bool // Whether the simulation is running
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
