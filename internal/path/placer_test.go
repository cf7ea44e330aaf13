package path

import (
	"math"
	"testing"

	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/curve"
)

func TestPlaceStraightPath(t *testing.T) {
	c := curve.Fit([]core.Vec3{core.V3(0, 0, 0), core.V3(10, 0, 0)}, curve.Centripetal)
	markers := NewPlacer(1.0).Place(c)

	if len(markers) != 9 {
		t.Fatalf("placed %d markers, expected 9", len(markers))
	}
	for i, m := range markers {
		wantX := float64(i + 1)
		if math.Abs(m.Position.X-wantX) > 0.1 || m.Position.Z != 0 {
			t.Errorf("marker %d at %v, expected x ≈ %v", i, m.Position, wantX)
		}
		if !m.Orientation.Forward.ApproxEqual(core.V3(-1, 0, 0), 1e-9) {
			t.Errorf("marker %d faces %v, expected -X", i, m.Orientation.Forward)
		}
		if !m.Valid || m.Index != i {
			t.Errorf("marker %d: valid=%v index=%d", i, m.Valid, m.Index)
		}
	}
}

func TestPlaceEmptyCurve(t *testing.T) {
	if markers := NewPlacer(1.0).Place(curve.Curve{}); len(markers) != 0 {
		t.Errorf("empty curve produced %d markers", len(markers))
	}
}

func TestPlaceShortPath(t *testing.T) {
	c := curve.Fit([]core.Vec3{core.V3(0, 0, 0), core.V3(0.5, 0, 0)}, curve.Centripetal)
	if markers := NewPlacer(1.2).Place(c); len(markers) != 0 {
		t.Errorf("path shorter than the spacing produced %d markers", len(markers))
	}
}

func TestPlaceOriginIsNotASentinel(t *testing.T) {
	// A path crossing the origin in its middle must not reseed the walk.
	c := curve.Fit([]core.Vec3{core.V3(-5, 0, 0), core.V3(5, 0, 0)}, curve.Centripetal)
	markers := NewPlacer(1.0).Place(c)

	if len(markers) != 9 {
		t.Fatalf("placed %d markers, expected 9", len(markers))
	}
	for i := 1; i < len(markers); i++ {
		if d := markers[i].Position.X - markers[i-1].Position.X; d < 1.0 {
			t.Errorf("markers %d and %d only %v apart", i-1, i, d)
		}
	}
}

func TestPlaceSpacingInvariant(t *testing.T) {
	points := []core.Vec3{
		core.V3(0, 0, 0),
		core.V3(4, 0, 1),
		core.V3(6, 0, -3),
		core.V3(12, 0, -2),
		core.V3(13, 0, 5),
	}
	c := curve.Fit(points, curve.Centripetal)
	p := NewPlacer(1.2)
	markers := p.Place(c)
	if len(markers) < 10 {
		t.Fatalf("placed only %d markers", len(markers))
	}

	// Replay the walk to recover the arc length at each marker.
	var (
		arcs    []float64
		cum     float64
		maxStep float64
		next    int
	)
	last := c.Segments()[0].Position(0)
	for _, seg := range c.Segments() {
		for i := 1; i <= p.Resolution; i++ {
			pos := seg.Position(float64(i) / float64(p.Resolution))
			step := pos.Dist(last)
			cum += step
			maxStep = math.Max(maxStep, step)
			if next < len(markers) && pos == markers[next].Position {
				arcs = append(arcs, cum)
				next++
			}
			last = pos
		}
	}
	if len(arcs) != len(markers) {
		t.Fatalf("located %d of %d markers on the curve", len(arcs), len(markers))
	}

	if arcs[0] < p.Spacing {
		t.Errorf("first marker at arc %v, expected >= %v", arcs[0], p.Spacing)
	}
	for i := 1; i < len(arcs); i++ {
		d := arcs[i] - arcs[i-1]
		if d < p.Spacing-1e-12 || d >= p.Spacing+maxStep {
			t.Errorf("arc between markers %d and %d is %v, expected in [%v, %v)", i-1, i, d, p.Spacing, p.Spacing+maxStep)
		}
	}
}

func TestPlaceOrientationFollowsTangent(t *testing.T) {
	c := curve.Fit([]core.Vec3{core.V3(0, 0, 0), core.V3(0, 0, -8), core.V3(8, 0, -8)}, curve.Centripetal)
	markers := NewPlacer(1.2).Place(c)

	for _, m := range markers {
		fwd := m.Orientation.Forward
		if math.Abs(fwd.Len()-1) > 1e-9 || fwd.Y != 0 {
			t.Errorf("marker %d forward %v should be a horizontal unit vector", m.Index, fwd)
		}
	}

	first := markers[0].Orientation.Forward
	if first.Z < 0.9 {
		t.Errorf("first marker on a -Z run should look back toward +Z, got %v", first)
	}
	lastFwd := markers[len(markers)-1].Orientation.Forward
	if lastFwd.X > -0.9 {
		t.Errorf("last marker on a +X run should look back toward -X, got %v", lastFwd)
	}
}
