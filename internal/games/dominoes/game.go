// Package dominoes adapts the domino path session to the terminal platform:
// it turns input frames into session ticks and draws a top-down view of the
// floor into the screen buffer.
package dominoes

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/domino-path/internal/config"
	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/dominoes"
	"github.com/vovakirdan/domino-path/internal/level"
	"github.com/vovakirdan/domino-path/internal/physics"
	"github.com/vovakirdan/domino-path/internal/registry"
)

// Mode selects where levels come from.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Level table, advancing on each win
	ModeSandbox  Mode = "sandbox"  // One open floor, corner to corner
)

// Package-level settings applied on the next Reset, set from CLI flags.
var (
	configPath         string
	levelsPath         string
	selectedStartLevel int
	logger             = log.New(io.Discard)
)

// SetConfigPath sets the tuning config file path. Empty uses the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsPath sets a level file or directory. Empty uses the embedded table.
func SetLevelsPath(path string) {
	levelsPath = path
}

// SetStartLevel sets the 1-indexed starting level. 0 means the first.
func SetStartLevel(n int) {
	selectedStartLevel = n
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for the domino path puzzle.
type Game struct {
	mode Mode

	// Preset tuning and levels bypass the loaders (tests, trace).
	presetCfg   *config.GameConfig
	presetTable *level.Table

	cfg     config.GameConfig
	session *dominoes.Session
	err     error
	dt      float64

	view       viewport
	cursor     core.Vec3
	startLevel int // 1-indexed, overrides SetStartLevel when set
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewSandbox creates a sandbox game.
func NewSandbox() *Game {
	return &Game{mode: ModeSandbox}
}

// NewWithConfig creates a game that uses cfg and table instead of loading
// them on Reset.
func NewWithConfig(mode Mode, cfg config.GameConfig, table level.Table) *Game {
	return &Game{mode: mode, presetCfg: &cfg, presetTable: &table}
}

func init() {
	registry.Register("dominoes", func() registry.Game {
		return New()
	})
	registry.Register("sandbox", func() registry.Game {
		return NewSandbox()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeSandbox {
		return "sandbox"
	}
	return "dominoes"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSandbox {
		return "Domino Path (Sandbox)"
	}
	return "Domino Path"
}

// Reset loads tuning and levels and starts a fresh session. Load failures are
// kept and rendered instead of a board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.session = nil
	g.err = nil
	g.dt = rc.DT()

	cfg, table, err := g.load()
	if err != nil {
		g.fail(err)
		return
	}
	g.cfg = cfg
	g.view = newViewport(rc.ScreenW, rc.ScreenH, cfg.Floor.Size)

	start := g.startLevel
	if start == 0 {
		start = selectedStartLevel
		selectedStartLevel = 0
	}
	if g.mode == ModeCampaign && start > 1 {
		table = rotate(table, start-1)
	}

	s, err := dominoes.NewSession(cfg, table, physics.NewWorld(cfg.Physics), logger)
	if err != nil {
		g.fail(err)
		return
	}
	g.session = s
	g.cursor = s.CurrentLevel().Anchor
}

func (g *Game) fail(err error) {
	g.err = err
	logger.Error("cannot start game", "mode", g.mode, "err", err)
}

func (g *Game) load() (config.GameConfig, level.Table, error) {
	cfg := config.DefaultGameConfig()
	if g.presetCfg != nil {
		cfg = *g.presetCfg
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, level.Table{}, err
		}
		cfg = loaded
	}

	if g.mode == ModeSandbox {
		t, err := level.NewTable([]level.Level{SandboxLevel(cfg.Floor.Size)})
		return cfg, t, err
	}
	if g.presetTable != nil {
		return cfg, *g.presetTable, nil
	}
	t, err := level.Load(levelsPath)
	return cfg, t, err
}

// SandboxLevel is an empty floor with the anchor and the goal in opposite
// corners.
func SandboxLevel(floor float64) level.Level {
	const cornerOffset = 0.875
	c := floor / 2 * cornerOffset
	return level.Level{
		ID:     "sandbox",
		Name:   "Sandbox",
		Anchor: core.V3(c, 0, -c),
		Pusher: core.V3(c, 0, -c),
		Goal:   level.Goal{Center: core.V3(-c, 0, c), Radius: floor * 0.125 / 2},
	}
}

// rotate returns table starting at index start.
func rotate(t level.Table, start int) level.Table {
	levels := t.Levels()
	n := len(levels)
	out := make([]level.Level, 0, n)
	for i := range n {
		out = append(out, levels[(start+i)%n])
	}
	rt, err := level.NewTable(out)
	if err != nil {
		return t
	}
	return rt
}

// StartAt makes the next Reset begin at the 1-indexed level n.
func (g *Game) StartAt(n int) {
	g.startLevel = n
}

// Resize refits the floor to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.view = newViewport(width, height, g.cfg.Floor.Size)
}

// Step maps one input frame onto a session tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	placeOK := true
	if in.Pointer.Valid {
		p, ok := g.view.toFloor(in.Pointer.X, in.Pointer.Y)
		if ok {
			g.cursor = p
		}
		placeOK = ok
	}

	di := dominoes.Input{
		Place:       in.Has(core.ActionPlace) && placeOK,
		Point:       g.cursor,
		Undo:        in.Has(core.ActionUndo),
		Clear:       in.Has(core.ActionClear),
		Start:       in.Has(core.ActionStart),
		RestartPath: in.Has(core.ActionRestartPath),
		NextLevel:   in.Has(core.ActionNextLevel),
	}
	prevLevel := g.session.Level()
	g.session.Tick(di, g.dt)
	if g.session.Level() != prevLevel {
		g.cursor = g.session.CurrentLevel().Anchor
	}

	return core.StepResult{State: g.State()}
}

// moveCursor nudges the cursor one screen cell per direction action.
func (g *Game) moveCursor(in core.InputFrame) {
	dx, dz := g.view.cellSize()
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.X -= dx
	case in.Has(core.ActionRight):
		g.cursor.X += dx
	}
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Z -= dz
	case in.Has(core.ActionDown):
		g.cursor.Z += dz
	}
	half := g.cfg.Floor.Size / 2
	g.cursor.X = core.ClampF(g.cursor.X, -half, half)
	g.cursor.Z = core.ClampF(g.cursor.Z, -half, half)
}

// State returns the level, win and simulation flags.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Level:   g.session.Level() + 1,
		Won:     g.session.Won(),
		Physics: g.session.State() == dominoes.StatePhysics,
	}
}

// Session exposes the running session, or nil when Reset failed.
func (g *Game) Session() *dominoes.Session {
	return g.session
}

// Err returns the error that prevented the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Cursor returns the cursor position on the floor.
func (g *Game) Cursor() core.Vec3 {
	return g.cursor
}
