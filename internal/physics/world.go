package physics

import (
	"math"
	"slices"

	"github.com/vovakirdan/domino-path/internal/config"
	"github.com/vovakirdan/domino-path/internal/core"
)

// World holds bodies in spawn order and steps toppling dominoes.
type World struct {
	cfg    config.PhysicsConfig
	nextID EntityID
	order  []EntityID
	bodies map[EntityID]*Body
}

// NewWorld returns an empty world tuned by cfg.
func NewWorld(cfg config.PhysicsConfig) *World {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	return &World{
		cfg:    cfg,
		bodies: make(map[EntityID]*Body),
	}
}

// Spawn adds a copy of b and returns its new ID. Any ID already set on b is
// replaced. Dynamic bodies start standing.
func (w *World) Spawn(b Body) EntityID {
	w.nextID++
	b.ID = w.nextID
	if b.Orientation.Forward == (core.Vec3{}) {
		b.Orientation = core.Orientation{Forward: core.V3(0, 0, -1)}
	}
	b.Phase = Standing
	b.Tilt, b.Spin = 0, 0
	b.FallDir = core.Vec3{}
	b.stepped = b.Position
	w.bodies[b.ID] = &b
	w.order = append(w.order, b.ID)
	return b.ID
}

// Despawn removes a body. It reports whether the body existed.
func (w *World) Despawn(id EntityID) bool {
	if _, ok := w.bodies[id]; !ok {
		return false
	}
	delete(w.bodies, id)
	w.order = slices.DeleteFunc(w.order, func(e EntityID) bool { return e == id })
	return true
}

// Body returns a copy of the body with the given ID.
func (w *World) Body(id EntityID) (Body, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return Body{}, false
	}
	return *b, true
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.order)
}

// Entities returns the IDs of every body with the tag, in spawn order.
func (w *World) Entities(tag Tag) []EntityID {
	var ids []EntityID
	for _, id := range w.order {
		if w.bodies[id].Tag == tag {
			ids = append(ids, id)
		}
	}
	return ids
}

// Overlaps returns every other body whose footprint intersects id's, in
// spawn order. Sensors are included; callers filter them if needed.
func (w *World) Overlaps(id EntityID) []EntityID {
	b, ok := w.bodies[id]
	if !ok {
		return nil
	}
	fp := b.Footprint()
	var hits []EntityID
	for _, other := range w.order {
		if other == id {
			continue
		}
		if fp.Overlaps(w.bodies[other].Footprint()) {
			hits = append(hits, other)
		}
	}
	return hits
}

// SetPosition moves a body. It reports whether the body exists. A kinematic
// body is swept from where the last Step left it to pos during the next Step,
// so it strikes everything along the way.
func (w *World) SetPosition(id EntityID, pos core.Vec3) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	b.Position = pos
	return true
}

// Step advances the simulation by dt seconds in fixed substeps. Kinematic
// bodies moved since the last step advance along their path one slice per
// substep; long moves raise the substep count so no slice is longer than the
// body's own half extent.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	sweeps := w.sweeps()
	n := w.cfg.Substeps
	for _, sw := range sweeps {
		n = max(n, sw.slices)
	}
	h := dt / float64(n)
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n)
		for _, sw := range sweeps {
			sw.body.Position = sw.from.Lerp(sw.to, f)
		}
		w.trigger()
		w.integrate(h)
	}
	for _, id := range w.order {
		if b := w.bodies[id]; b.Kind == Kinematic {
			b.stepped = b.Position
		}
	}
}

// maxSlices bounds the substeps of a single Step.
const maxSlices = 256

type sweep struct {
	body     *Body
	from, to core.Vec3
	slices   int
}

// sweeps returns the kinematic bodies that moved since the last step.
func (w *World) sweeps() []sweep {
	var out []sweep
	for _, id := range w.order {
		b := w.bodies[id]
		if b.Kind != Kinematic || b.Position == b.stepped {
			continue
		}
		sw := sweep{body: b, from: b.stepped, to: b.Position, slices: 1}
		if reach := b.Shape.sliceLength(); reach > 0 {
			d := sw.from.Flat().Dist(sw.to.Flat())
			sw.slices = min(max(int(math.Ceil(d/reach)), 1), maxSlices)
		}
		out = append(out, sw)
	}
	return out
}

// sliceLength is the longest move that cannot skip over a thin collider.
func (s Shape) sliceLength() float64 {
	if s.Circle {
		return s.Radius
	}
	return min(s.Width, s.Thickness) / 2
}

// trigger starts standing dominoes that are struck by a kinematic body or by
// a falling domino.
func (w *World) trigger() {
	for _, id := range w.order {
		b := w.bodies[id]
		if b.Kind != Dynamic || b.Phase != Standing {
			continue
		}
		fp := b.Footprint()
		for _, oid := range w.order {
			o := w.bodies[oid]
			if oid == id || o.Sensor {
				continue
			}
			var spin float64
			switch {
			case o.Kind == Kinematic:
				spin = w.cfg.Nudge
			case o.Kind == Dynamic && o.Phase == Falling:
				spin = max(w.cfg.Transfer*o.Spin, minSpin)
			default:
				continue
			}
			if !fp.Overlaps(o.Footprint()) {
				continue
			}
			w.topple(b, o.Position, spin)
			break
		}
	}
}

// minSpin keeps a chain moving when the striker has almost stopped.
const minSpin = 0.05

// topple starts b falling away from the striker along its thin axis.
func (w *World) topple(b *Body, from core.Vec3, spin float64) {
	dir := b.Orientation.Forward.Flat().Normalize()
	if b.Position.Sub(from).Dot(dir) < 0 {
		dir = dir.Scale(-1)
	}
	b.FallDir = dir
	b.Phase = Falling
	b.Spin = spin
}

func (w *World) integrate(h float64) {
	for _, id := range w.order {
		b := w.bodies[id]
		if b.Kind != Dynamic || b.Phase != Falling {
			continue
		}
		prev := b.Tilt
		height := max(b.Shape.Height, 1e-6)
		b.Spin += 3 * w.cfg.Gravity / (2 * height) * math.Sin(b.Tilt) * h
		b.Tilt += b.Spin * h
		if b.Tilt >= math.Pi/2 {
			b.Tilt = math.Pi / 2
			b.settle()
			continue
		}
		if w.blocked(b) {
			b.Tilt = prev
			b.settle()
		}
	}
}

func (b *Body) settle() {
	b.Phase = Fallen
	b.Spin = 0
}

// blocked reports whether b leans into a static collider.
func (w *World) blocked(b *Body) bool {
	fp := b.Footprint()
	for _, oid := range w.order {
		o := w.bodies[oid]
		if o.Kind != Static || o.Sensor || o.Tag == TagMarker {
			continue
		}
		if fp.Overlaps(o.Footprint()) {
			return true
		}
	}
	return false
}
