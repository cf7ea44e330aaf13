package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/domino-path/internal/config"
	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/dominoes"
	"github.com/vovakirdan/domino-path/internal/level"
	"github.com/vovakirdan/domino-path/internal/physics"
)

var (
	flagTraceLevel  int
	flagTracePoints []string
	flagTraceTicks  int
	flagTraceEvery  int
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run a level headless and log snapshots",
	Long: `Draw a scripted path on a level, start the pusher and log session
snapshots while the dominoes fall. Without --point the path runs straight from
the start point toward the goal and ends one half domino height outside it, so
the last domino has to fall to reach the goal.

Examples:
  dominoes trace
  dominoes trace --level 2 --point 0,-10 --point 12,12
  dominoes trace --ticks 1200 --every 30 --debug`,
	Args: cobra.NoArgs,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTraceLevel, "level", 1, "Level to trace (1-indexed)")
	traceCmd.Flags().StringArrayVar(&flagTracePoints, "point", nil, "Waypoint as x,z (repeatable)")
	traceCmd.Flags().IntVar(&flagTraceTicks, "ticks", 900, "Ticks to simulate after starting")
	traceCmd.Flags().IntVar(&flagTraceEvery, "every", 60, "Log a snapshot every N ticks")
}

func runTrace(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("trace", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	table, err := level.Load(flagLevels)
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	if flagTraceLevel < 1 || flagTraceLevel > table.Len() {
		return fmt.Errorf("level %d out of range 1..%d", flagTraceLevel, table.Len())
	}

	levels := table.Levels()
	start := flagTraceLevel - 1
	table, err = level.NewTable(append(levels[start:], levels[:start]...))
	if err != nil {
		return err
	}

	s, err := dominoes.NewSession(cfg, table, physics.NewWorld(cfg.Physics), logger)
	if err != nil {
		return err
	}
	dt := core.RuntimeConfig{TickRate: flagFPS}.DT()
	lvl := s.CurrentLevel()

	points, err := tracePoints(lvl, cfg.Domino.Height)
	if err != nil {
		return err
	}
	for _, p := range points {
		s.Tick(dominoes.Input{Place: true, Point: p}, dt)
	}
	logger.Info("path drawn",
		"level", lvl.Name,
		"points", len(s.Points()),
		"markers", len(s.Markers()),
		"length", s.Curve().Length(cfg.Path.Resolution),
		"valid", s.Valid(),
	)

	s.Tick(dominoes.Input{Start: true}, dt)
	if s.State() != dominoes.StatePhysics {
		logger.Warn("path not accepted", "invalid", s.InvalidCount(), "markers", len(s.Markers()))
		return errors.New("trace: path cannot start")
	}

	every := max(flagTraceEvery, 1)
	for i := 1; i <= flagTraceTicks; i++ {
		s.Tick(dominoes.Input{}, dt)
		if i%every == 0 || s.Won() {
			snap := s.Snapshot()
			logger.Debug("snapshot",
				"tick", snap.Tick,
				"fallen", snap.Fallen,
				"dominoes", snap.Dominoes,
				"pusher", formatPoint(snap.Pusher),
				"hash", fmt.Sprintf("%016x", snap.Hash),
			)
			logger.Info("progress", "tick", snap.Tick, "fallen", fmt.Sprintf("%d/%d", snap.Fallen, snap.Dominoes))
		}
		if s.Won() {
			break
		}
	}

	snap := s.Snapshot()
	fmt.Printf("level %d %q: won=%t fallen=%d/%d ticks=%d hash=%016x\n",
		flagTraceLevel, lvl.Name, snap.Won, snap.Fallen, snap.Dominoes, snap.Tick, snap.Hash)
	return nil
}

func tracePoints(lvl level.Level, dominoHeight float64) ([]core.Vec3, error) {
	if len(flagTracePoints) == 0 {
		return []core.Vec3{approach(lvl, dominoHeight)}, nil
	}
	points := make([]core.Vec3, 0, len(flagTracePoints))
	for _, raw := range flagTracePoints {
		var x, z float64
		if _, err := fmt.Sscanf(raw, "%g,%g", &x, &z); err != nil {
			return nil, fmt.Errorf("bad --point %q: want x,z", raw)
		}
		points = append(points, core.V3(x, 0, z))
	}
	return points, nil
}

// approach returns the point on the line from the anchor to the goal center
// that stops short of the goal by half a domino height. Anchors too close to
// the goal get the center itself.
func approach(lvl level.Level, dominoHeight float64) core.Vec3 {
	center := lvl.Goal.Center
	toGoal := center.Sub(lvl.Anchor).Flat()
	short := lvl.Goal.Radius + dominoHeight/2
	if toGoal.Len() <= short {
		return center
	}
	return center.Sub(toGoal.Normalize().Scale(short))
}
