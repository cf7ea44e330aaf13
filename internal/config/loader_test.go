package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultGameConfig())
	}
}

func TestSpacing(t *testing.T) {
	d := DefaultGameConfig().Domino
	if got := d.Spacing(); got != 1.2 {
		t.Errorf("Spacing() = %v, expected 1.2", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("domino:\n  spacing_factor: 0.5\npusher:\n  rate: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Domino.SpacingFactor != 0.5 || cfg.Pusher.Rate != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Domino.Height != 2.0 || cfg.Path.Resolution != 1000 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero height", "domino:\n  height: 0\n"},
		{"negative spacing", "domino:\n  spacing_factor: -1\n"},
		{"zero resolution", "path:\n  resolution: 0\n"},
		{"alpha out of range", "path:\n  alpha: 2\n"},
		{"zero floor", "floor:\n  size: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("domino: [1, 2")); err == nil {
		t.Error("malformed YAML should fail")
	}
}
