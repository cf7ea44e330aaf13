package dominoes

import (
	"encoding/binary"
	"hash/fnv"
	"iter"
	"math"

	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/curve"
	"github.com/vovakirdan/domino-path/internal/path"
	"github.com/vovakirdan/domino-path/internal/physics"
)

// Snapshot captures the session state for determinism testing and tracing.
type Snapshot struct {
	Tick     uint64
	Level    int // 1-indexed for display
	State    State
	Points   int
	Markers  int
	Valid    bool
	Dominoes int
	Fallen   int
	Won      bool
	Pusher   core.Vec3
	Hash     uint64 // Digest of marker and domino poses
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	h := fnv.New64a()
	var buf [8]byte
	put := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}

	for _, m := range s.markers {
		put(m.Position.X)
		put(m.Position.Z)
	}
	fallen := 0
	dominoes := s.Dominoes()
	for _, d := range dominoes {
		put(d.Position.X)
		put(d.Position.Z)
		put(d.Tilt)
		if d.Phase == physics.Fallen {
			fallen++
		}
	}
	pusher := s.PusherPosition()
	put(pusher.X)
	put(pusher.Z)

	return Snapshot{
		Tick:     s.tick,
		Level:    s.level + 1,
		State:    s.state,
		Points:   s.store.Len(),
		Markers:  len(s.markers),
		Valid:    s.valid,
		Dominoes: len(dominoes),
		Fallen:   fallen,
		Won:      s.won,
		Pusher:   pusher,
		Hash:     h.Sum64(),
	}
}

// State returns the simulation state.
func (s *Session) State() State {
	return s.state
}

// Ticks returns the number of ticks since the session started.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Points returns a copy of the control points.
func (s *Session) Points() []core.Vec3 {
	return s.store.Points()
}

// Curve returns the curve fitted to the current control points.
func (s *Session) Curve() curve.Curve {
	return s.curve
}

// CurveSamples lazily yields points along the curve for drawing.
func (s *Session) CurveSamples() iter.Seq[core.Vec3] {
	return s.curve.Samples(s.cfg.Path.DrawSteps * len(s.curve.Segments()))
}

// Markers returns a copy of the current markers. There are none outside Draw.
func (s *Session) Markers() []path.Marker {
	return append([]path.Marker(nil), s.markers...)
}

// Dominoes returns the live domino bodies in placement order.
func (s *Session) Dominoes() []physics.Body {
	return s.bodies(physics.TagDomino)
}

// Walls returns the current level's wall bodies.
func (s *Session) Walls() []physics.Body {
	return s.bodies(physics.TagWall)
}

func (s *Session) bodies(tag physics.Tag) []physics.Body {
	var out []physics.Body
	for _, id := range s.engine.Entities(tag) {
		if b, ok := s.engine.Body(id); ok {
			out = append(out, b)
		}
	}
	return out
}

// Spacing returns the arc length between consecutive markers.
func (s *Session) Spacing() float64 {
	return s.placer.Spacing
}
