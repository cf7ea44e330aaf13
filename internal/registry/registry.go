// Package registry holds the play modes available to the front ends.
// Modes register themselves in init() functions, so the CLI and the SSH
// server can list and start them by ID without importing each one.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/domino-path/internal/core"
)

// Game is a playable mode. Implementations hold the puzzle logic and know
// nothing about Bubble Tea; the platform maps keys and mouse events to
// actions, drives the fixed tick and paints the screen buffer.
type Game interface {
	// ID returns the mode identifier used on the command line (e.g. "dominoes").
	ID() string

	// Title returns the display name.
	Title() string

	// Reset (re)starts the mode for the given screen size and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances the mode by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the mode into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the level, win and simulation flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh mode instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
