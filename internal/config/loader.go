package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration parses but cannot drive the game.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.dominoes/configs/dominoes.yaml -> ./configs/dominoes.yaml -> embedded default
//
// Missing keys keep their default values.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dominoes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dominoes.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate checks that every quantity the pipeline divides by or walks over is positive.
func (c GameConfig) Validate() error {
	switch {
	case c.Domino.Width <= 0 || c.Domino.Height <= 0 || c.Domino.Thickness <= 0:
		return fmt.Errorf("%w: domino dimensions must be positive", ErrInvalidConfig)
	case c.Domino.SpacingFactor <= 0:
		return fmt.Errorf("%w: domino.spacing_factor must be positive", ErrInvalidConfig)
	case c.Path.Resolution <= 0:
		return fmt.Errorf("%w: path.resolution must be positive", ErrInvalidConfig)
	case c.Path.Alpha < 0 || c.Path.Alpha > 1:
		return fmt.Errorf("%w: path.alpha must be within [0, 1]", ErrInvalidConfig)
	case c.Pusher.Rate <= 0 || c.Pusher.ThresholdFactor <= 0:
		return fmt.Errorf("%w: pusher rate and threshold_factor must be positive", ErrInvalidConfig)
	case c.Floor.Size <= 0:
		return fmt.Errorf("%w: floor.size must be positive", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dominoes", "configs", filename)
}
