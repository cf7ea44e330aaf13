package level

import (
	"embed"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/domino-path/internal/core"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultLevels embed.FS

// yamlTable is the on-disk shape of a level file.
type yamlTable struct {
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Anchor yamlPoint  `yaml:"anchor"`
	Pusher *yamlPoint `yaml:"pusher,omitempty"` // Defaults to the anchor
	Goal   yamlGoal   `yaml:"goal"`
	Walls  []yamlWall `yaml:"walls,omitempty"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

type yamlGoal struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
}

type yamlWall struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
	Height float64 `yaml:"height,omitempty"`
	Yaw    float64 `yaml:"yaw,omitempty"` // Degrees
}

const defaultWallHeight = 1.0

// Default returns the embedded level table.
func Default() (Table, error) {
	data, err := defaultLevels.ReadFile("defaults/levels.yaml")
	if err != nil {
		return Table{}, fmt.Errorf("reading embedded levels: %w", err)
	}
	return Parse(data)
}

// Load reads a level table from path. A directory is scanned recursively
// for .yaml/.yml files whose levels are merged and sorted by ID. An empty
// path returns the embedded table.
func Load(path string) (Table, error) {
	if path == "" {
		return Default()
	}

	info, err := os.Stat(path)
	if err != nil {
		return Table{}, fmt.Errorf("loading levels: %w", err)
	}
	if !info.IsDir() {
		levels, err := loadFile(path)
		if err != nil {
			return Table{}, err
		}
		return NewTable(levels)
	}

	var levels []Level
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		found, err := loadFile(p)
		if err != nil {
			return err
		}
		levels = append(levels, found...)
		return nil
	})
	if err != nil {
		return Table{}, fmt.Errorf("walking directory %s: %w", path, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return NewTable(levels)
}

func loadFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	levels, err := parseLevels(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return levels, nil
}

// Parse builds a table from YAML data.
func Parse(data []byte) (Table, error) {
	levels, err := parseLevels(data)
	if err != nil {
		return Table{}, err
	}
	return NewTable(levels)
}

func parseLevels(data []byte) ([]Level, error) {
	var raw yamlTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse levels: %w", err)
	}

	levels := make([]Level, 0, len(raw.Levels))
	for i, yl := range raw.Levels {
		l, err := yl.toLevel()
		if err != nil {
			return nil, fmt.Errorf("level %d (%q): %w", i, yl.ID, err)
		}
		levels = append(levels, l)
	}
	return levels, nil
}

func (yl yamlLevel) toLevel() (Level, error) {
	if yl.ID == "" {
		return Level{}, fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if yl.Goal.Radius <= 0 {
		return Level{}, fmt.Errorf("%w: goal radius must be positive", ErrInvalidLevel)
	}

	l := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Anchor: core.V3(yl.Anchor.X, 0, yl.Anchor.Z),
		Goal: Goal{
			Center: core.V3(yl.Goal.X, 0, yl.Goal.Z),
			Radius: yl.Goal.Radius,
		},
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	l.Pusher = l.Anchor
	if yl.Pusher != nil {
		l.Pusher = core.V3(yl.Pusher.X, 0, yl.Pusher.Z)
	}

	for i, yw := range yl.Walls {
		if yw.Width <= 0 || yw.Depth <= 0 {
			return Level{}, fmt.Errorf("%w: wall %d needs positive width and depth", ErrInvalidLevel, i)
		}
		h := yw.Height
		if h <= 0 {
			h = defaultWallHeight
		}
		l.Walls = append(l.Walls, Wall{
			Center: core.V3(yw.X, 0, yw.Z),
			Width:  yw.Width,
			Depth:  yw.Depth,
			Height: h,
			Yaw:    yw.Yaw * math.Pi / 180,
		})
	}
	return l, nil
}
