package physics

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/domino-path/internal/config"
	"github.com/vovakirdan/domino-path/internal/core"
)

const dt = 1.0 / 60

func newTestWorld() *World {
	return NewWorld(config.DefaultGameConfig().Physics)
}

func domino(x float64) Body {
	return Body{
		Tag:         TagDomino,
		Kind:        Dynamic,
		Shape:       Box(1, 2, 0.2),
		Position:    core.V3(x, 0, 0),
		Orientation: core.Orientation{Forward: core.V3(-1, 0, 0)},
	}
}

func TestWorldSpawnDespawn(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(domino(0))
	b := w.Spawn(Body{Tag: TagWall, Shape: Box(4, 1, 1)})
	c := w.Spawn(domino(3))

	if a == 0 || a == b || b == c {
		t.Fatalf("ids not unique: %d %d %d", a, b, c)
	}
	if got := w.Entities(TagDomino); !slices.Equal(got, []EntityID{a, c}) {
		t.Errorf("Entities(domino) = %v", got)
	}
	if !w.Despawn(a) {
		t.Error("Despawn(a) = false")
	}
	if w.Despawn(a) {
		t.Error("second Despawn(a) = true")
	}
	if _, ok := w.Body(a); ok {
		t.Error("despawned body still present")
	}
	if w.Len() != 2 {
		t.Errorf("Len = %d, want 2", w.Len())
	}
	wall, _ := w.Body(b)
	if wall.Orientation.Forward == (core.Vec3{}) {
		t.Error("spawn did not default orientation")
	}
}

func TestWorldOverlaps(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn(domino(0))
	b := w.Spawn(domino(0.1))
	c := w.Spawn(domino(5))
	goal := w.Spawn(Body{Tag: TagGoal, Sensor: true, Shape: Cylinder(1, 0.1), Position: core.V3(5, 0, 0)})

	if got := w.Overlaps(a); !slices.Equal(got, []EntityID{b}) {
		t.Errorf("Overlaps(a) = %v, want [%d]", got, b)
	}
	if got := w.Overlaps(c); !slices.Equal(got, []EntityID{goal}) {
		t.Errorf("Overlaps(c) = %v, want [%d]", got, goal)
	}
	if got := w.Overlaps(999); got != nil {
		t.Errorf("Overlaps(missing) = %v", got)
	}

	w.SetPosition(b, core.V3(2, 0, 0))
	if got := w.Overlaps(a); len(got) != 0 {
		t.Errorf("Overlaps(a) after move = %v", got)
	}
	if w.SetPosition(999, core.Vec3{}) {
		t.Error("SetPosition on missing body = true")
	}
}

func TestWorldStandingStaysStill(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn(domino(0))
	for range 120 {
		w.Step(dt)
	}
	b, _ := w.Body(id)
	if b.Phase != Standing || b.Tilt != 0 {
		t.Errorf("untouched domino phase=%v tilt=%v", b.Phase, b.Tilt)
	}
}

func TestWorldPushedRowFallsInSequence(t *testing.T) {
	w := newTestWorld()
	var row []EntityID
	for i := 1; i <= 6; i++ {
		row = append(row, w.Spawn(domino(1.2*float64(i))))
	}
	pusher := w.Spawn(Body{
		Tag:      TagPusher,
		Kind:     Kinematic,
		Shape:    Cylinder(0.25, 0.5),
		Position: core.V3(0, 0, 0),
	})

	started := make([]int, len(row))
	for i := range started {
		started[i] = -1
	}
	for frame := range 600 {
		if frame < 30 {
			p, _ := w.Body(pusher)
			w.SetPosition(pusher, p.Position.Add(core.V3(0.05, 0, 0)))
		}
		w.Step(dt)
		for i, id := range row {
			b, _ := w.Body(id)
			if started[i] < 0 && b.Phase != Standing {
				started[i] = frame
			}
		}
	}

	for i, id := range row {
		b, _ := w.Body(id)
		if b.Phase != Fallen {
			t.Fatalf("domino %d phase = %v, want fallen", i, b.Phase)
		}
		if b.FallDir.X <= 0 {
			t.Errorf("domino %d fell toward %v, want +X", i, b.FallDir)
		}
		if i > 0 && started[i] <= started[i-1] {
			t.Errorf("domino %d started at frame %d, not after %d", i, started[i], started[i-1])
		}
	}
	last, _ := w.Body(row[len(row)-1])
	if math.Abs(last.Tilt-math.Pi/2) > 1e-9 {
		t.Errorf("last domino tilt = %v, want flat", last.Tilt)
	}
}

func TestWorldKinematicSweepStrikes(t *testing.T) {
	w := newTestWorld()
	near := w.Spawn(domino(1.2))
	far := w.Spawn(domino(2.4))
	pusher := w.Spawn(Body{
		Tag:      TagPusher,
		Kind:     Kinematic,
		Shape:    Cylinder(0.25, 0.5),
		Position: core.V3(0, 0, 0),
	})

	// One tick carries the pusher past both dominoes.
	w.SetPosition(pusher, core.V3(4, 0, 0))
	w.Step(dt)

	for _, id := range []EntityID{near, far} {
		b, _ := w.Body(id)
		if b.Phase == Standing {
			t.Errorf("domino %d skipped by a long move", id)
		}
		if b.FallDir.X <= 0 {
			t.Errorf("domino %d falls toward %v, want +X", id, b.FallDir)
		}
	}
	if p, _ := w.Body(pusher); p.Position != core.V3(4, 0, 0) {
		t.Errorf("pusher ended at %v, want its target", p.Position)
	}

	// Without a new move the next step does not sweep again.
	w.Step(dt)
	if p, _ := w.Body(pusher); p.Position != core.V3(4, 0, 0) {
		t.Errorf("pusher drifted to %v", p.Position)
	}
}

func TestWorldWallStopsFall(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn(domino(0))
	w.Spawn(Body{
		Tag:      TagWall,
		Kind:     Static,
		Shape:    Box(4, 1, 0.5),
		Position: core.V3(1, 0, 0),
		Orientation: core.Orientation{
			Forward: core.V3(1, 0, 0),
		},
	})
	w.Spawn(Body{Tag: TagPusher, Kind: Kinematic, Shape: Cylinder(0.25, 0.5), Position: core.V3(-0.3, 0, 0)})

	for range 300 {
		w.Step(dt)
	}
	b, _ := w.Body(id)
	if b.Phase != Fallen {
		t.Fatalf("phase = %v, want fallen", b.Phase)
	}
	if b.Tilt >= math.Pi/2 {
		t.Errorf("tilt = %v, want resting against wall", b.Tilt)
	}
}

func TestWorldSensorDoesNotPush(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn(domino(0))
	w.Spawn(Body{Tag: TagGoal, Kind: Kinematic, Sensor: true, Shape: Cylinder(2, 0.1)})
	for range 60 {
		w.Step(dt)
	}
	if b, _ := w.Body(id); b.Phase != Standing {
		t.Errorf("sensor toppled domino: phase %v", b.Phase)
	}
}

func TestTagString(t *testing.T) {
	for tag, want := range map[Tag]string{
		TagWall: "wall", TagMarker: "marker", TagDomino: "domino",
		TagPusher: "pusher", TagGoal: "goal", TagNone: "none",
	} {
		if got := tag.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", tag, got, want)
		}
	}
}
