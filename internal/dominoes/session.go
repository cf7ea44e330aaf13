// Package dominoes implements the domino path puzzle: drawing a path of
// control points, laying dominoes along it, validating the layout and running
// the topple simulation toward a goal.
package dominoes

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/domino-path/internal/config"
	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/curve"
	"github.com/vovakirdan/domino-path/internal/level"
	"github.com/vovakirdan/domino-path/internal/path"
	"github.com/vovakirdan/domino-path/internal/physics"
)

var (
	// ErrMissingPusher is returned when the engine holds no pusher body.
	ErrMissingPusher = errors.New("pusher entity missing")
	// ErrMissingGoal is returned when the engine holds no goal body.
	ErrMissingGoal = errors.New("goal entity missing")
)

// State is the simulation state.
type State string

const (
	StateDraw    State = "draw"
	StatePhysics State = "physics"
)

// Input is one tick's worth of player intent.
type Input struct {
	Place       bool
	Point       core.Vec3 // Floor position for Place
	Undo        bool
	Clear       bool
	Start       bool
	RestartPath bool
	NextLevel   bool
}

// Session owns one puzzle run: the control points, the fitted curve, the
// markers or dominoes laid along it, and the level progression.
type Session struct {
	cfg    config.GameConfig
	table  level.Table
	engine Engine
	log    *log.Logger
	placer path.Placer

	store        *path.Store
	curve        curve.Curve
	curveVersion uint64
	markers      []path.Marker
	markerIDs    []physics.EntityID
	staleMarkers bool

	pusher        physics.EntityID
	goal          physics.EntityID
	pusherRest    core.Vec3
	pusherStopped bool

	state State
	valid bool
	won   bool
	level int
	tick  uint64
}

// NewSession starts a session on the first level of table. Pusher and goal
// bodies already in the engine are adopted; otherwise they are spawned from
// the level entry. A nil logger discards output.
func NewSession(cfg config.GameConfig, table level.Table, engine Engine, logger *log.Logger) (*Session, error) {
	if table.Len() == 0 {
		return nil, level.ErrNoLevels
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	lvl := table.At(0)
	s := &Session{
		cfg:    cfg,
		table:  table,
		engine: engine,
		log:    logger,
		placer: path.Placer{
			Spacing:    cfg.Domino.Spacing(),
			Resolution: cfg.Path.Resolution,
		},
		store:      path.NewStore(lvl.Anchor),
		pusherRest: lvl.Pusher,
		state:      StateDraw,
		valid:      true,
	}

	var err error
	if s.pusher, err = s.singleton(physics.TagPusher, s.pusherBody, ErrMissingPusher); err != nil {
		return nil, err
	}
	if s.goal, err = s.singleton(physics.TagGoal, s.goalBody, ErrMissingGoal); err != nil {
		return nil, err
	}
	s.engine.SetPosition(s.pusher, s.pusherRest)
	s.spawnWalls(lvl)
	s.refit()

	s.log.Info("session started", "level", lvl.ID, "name", lvl.Name, "spacing", s.placer.Spacing)
	return s, nil
}

// singleton finds the single entity with tag, spawning one if none exists.
func (s *Session) singleton(tag physics.Tag, spawn func() physics.Body, missing error) (physics.EntityID, error) {
	ids := s.engine.Entities(tag)
	if len(ids) == 0 {
		s.engine.Spawn(spawn())
		ids = s.engine.Entities(tag)
	}
	if len(ids) == 0 {
		return 0, missing
	}
	if len(ids) > 1 {
		s.log.Warn("multiple singleton entities, using first", "tag", tag, "count", len(ids))
	}
	if _, ok := s.engine.Body(ids[0]); !ok {
		return 0, fmt.Errorf("%w: id %d has no body", missing, ids[0])
	}
	return ids[0], nil
}

func (s *Session) pusherBody() physics.Body {
	return physics.Body{
		Tag:      physics.TagPusher,
		Kind:     physics.Kinematic,
		Shape:    physics.Cylinder(s.cfg.Pusher.Radius, 2*s.cfg.Pusher.Radius),
		Position: s.pusherRest,
	}
}

func (s *Session) goalBody() physics.Body {
	g := s.table.At(s.level).Goal
	return physics.Body{
		Tag:      physics.TagGoal,
		Kind:     physics.Static,
		Sensor:   true,
		Shape:    physics.Cylinder(g.Radius, 2*g.Radius),
		Position: g.Center,
	}
}

func (s *Session) spawnWalls(lvl level.Level) {
	for _, w := range lvl.Walls {
		s.engine.Spawn(physics.Body{
			Tag:         physics.TagWall,
			Kind:        physics.Static,
			Shape:       physics.Box(w.Width, w.Height, w.Depth),
			Position:    w.Center,
			Orientation: w.Orientation(),
		})
	}
}

// Tick advances the session by one fixed step of dt seconds.
func (s *Session) Tick(in Input, dt float64) {
	s.tick++

	if in.NextLevel {
		s.advanceLevel()
	}
	s.applyEdits(in)
	if s.store.Version() != s.curveVersion {
		s.refit()
	}
	if s.state == StateDraw && s.staleMarkers {
		s.replaceMarkers()
	}
	if s.state == StatePhysics {
		s.drivePusher(dt)
	}
	s.engine.Step(dt)
	if s.state == StateDraw {
		s.validate()
	}
	if in.Start {
		s.confirm()
	}
	s.checkGoal()
}

// applyEdits applies store mutations. Any edit, and RestartPath, returns the
// session to Draw first.
func (s *Session) applyEdits(in Input) {
	edit := in.Place || in.Undo || in.Clear
	if edit || in.RestartPath {
		s.enterDraw()
	}
	if in.Place {
		s.store.Append(in.Point)
	}
	if in.Undo {
		s.store.Undo()
	}
	if in.Clear {
		s.store.Clear()
	}
}

func (s *Session) refit() {
	s.curve = curve.Fit(s.store.Points(), s.cfg.Path.Alpha)
	s.curveVersion = s.store.Version()
	s.staleMarkers = true
}

// replaceMarkers despawns every marker and spawns a fresh batch for the
// current curve.
func (s *Session) replaceMarkers() {
	DespawnTagged(s.engine, physics.TagMarker)
	s.markers = s.placer.Place(s.curve)
	s.markerIDs = s.markerIDs[:0]
	for _, m := range s.markers {
		s.markerIDs = append(s.markerIDs, s.engine.Spawn(s.dominoBody(physics.TagMarker, physics.Static, m)))
	}
	s.staleMarkers = false
}

func (s *Session) dominoBody(tag physics.Tag, kind physics.Kind, m path.Marker) physics.Body {
	d := s.cfg.Domino
	return physics.Body{
		Tag:         tag,
		Kind:        kind,
		Shape:       physics.Box(d.Width, d.Height, d.Thickness),
		Position:    m.Position,
		Orientation: m.Orientation,
	}
}

// confirm switches Draw to Physics when the layout is non-empty and valid.
func (s *Session) confirm() {
	if s.state != StateDraw || len(s.markers) == 0 || !s.valid {
		return
	}
	DespawnTagged(s.engine, physics.TagMarker)
	s.markerIDs = s.markerIDs[:0]
	for _, m := range s.markers {
		s.engine.Spawn(s.dominoBody(physics.TagDomino, physics.Dynamic, m))
	}
	s.log.Info("simulation started", "dominoes", len(s.markers), "level", s.level+1)
	s.markers = nil
	s.state = StatePhysics
	s.staleMarkers = true
}

// enterDraw tears down a running simulation. It is a no-op in Draw.
func (s *Session) enterDraw() {
	if s.state == StateDraw {
		return
	}
	n := DespawnTagged(s.engine, physics.TagDomino)
	s.resetPusher()
	s.state = StateDraw
	s.staleMarkers = true
	s.log.Info("back to drawing", "despawned", n)
}

func (s *Session) resetPusher() {
	s.engine.SetPosition(s.pusher, s.pusherRest)
	s.pusherStopped = false
}

// advanceLevel moves to the next level once the current one is won.
func (s *Session) advanceLevel() {
	if !s.won {
		return
	}
	DespawnTagged(s.engine, physics.TagDomino)
	DespawnTagged(s.engine, physics.TagMarker)
	DespawnTagged(s.engine, physics.TagWall)
	s.markerIDs = s.markerIDs[:0]
	s.markers = nil

	s.level++
	lvl := s.table.At(s.level)
	s.state = StateDraw
	s.won = false
	s.store.Reset(lvl.Anchor)
	s.pusherRest = lvl.Pusher
	s.resetPusher()

	s.engine.Despawn(s.goal)
	s.goal = s.engine.Spawn(s.goalBody())
	s.spawnWalls(lvl)

	s.log.Info("level advanced", "level", s.level+1, "id", lvl.ID, "name", lvl.Name)
}
