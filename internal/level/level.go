// Package level provides the level table: per-level start anchor, pusher rest
// position, goal and wall layout.
package level

import (
	"errors"
	"math"

	"github.com/vovakirdan/domino-path/internal/core"
)

var (
	// ErrNoLevels is returned when a table would contain no levels.
	ErrNoLevels = errors.New("level table is empty")
	// ErrInvalidLevel is returned when a level entry fails validation.
	ErrInvalidLevel = errors.New("invalid level")
)

// Goal is the cylindrical target area.
type Goal struct {
	Center core.Vec3
	Radius float64
}

// Wall is a static box obstacle standing on the floor.
type Wall struct {
	Center core.Vec3
	Width  float64 // Along the wall's right axis
	Depth  float64 // Along its facing axis
	Height float64
	Yaw    float64 // Radians, 0 facing -Z
}

// Orientation returns the wall's facing.
func (w Wall) Orientation() core.Orientation {
	return core.Orientation{Forward: core.V3(math.Sin(w.Yaw), 0, -math.Cos(w.Yaw))}
}

// Level is one entry of the table.
type Level struct {
	ID     string
	Name   string
	Anchor core.Vec3 // First control point of every path
	Pusher core.Vec3 // Pusher rest position
	Goal   Goal
	Walls  []Wall
}

// Table is an ordered, non-empty list of levels.
type Table struct {
	levels []Level
}

// NewTable returns a table over the given levels.
func NewTable(levels []Level) (Table, error) {
	if len(levels) == 0 {
		return Table{}, ErrNoLevels
	}
	return Table{levels: append([]Level(nil), levels...)}, nil
}

// Len returns the number of levels.
func (t Table) Len() int {
	return len(t.levels)
}

// At returns the level for a counter value. Counters past the end wrap
// around, so the game can advance indefinitely.
func (t Table) At(counter int) Level {
	n := len(t.levels)
	if n == 0 {
		return Level{}
	}
	i := counter % n
	if i < 0 {
		i += n
	}
	return t.levels[i]
}

// Levels returns a copy of every level in order.
func (t Table) Levels() []Level {
	return append([]Level(nil), t.levels...)
}
