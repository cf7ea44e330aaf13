package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/domino-path/internal/core"
)

// Footprint is the projection of a collider onto the floor plane: either an
// oriented rectangle or a circle. Colliders overlap when their footprints do;
// every body stands on the floor so heights always intersect. Intersection
// tests run on resolv shapes with floor X/Z mapped to resolv X/Y.
type Footprint struct {
	Circle bool
	Center core.Vec3 // Y is ignored
	Radius float64   // Circle only

	// Rectangle only: unit axes in the floor plane and half extents along them.
	AxisU, AxisV core.Vec3
	HalfU, HalfV float64
}

// CircleFootprint returns a circular footprint.
func CircleFootprint(center core.Vec3, radius float64) Footprint {
	return Footprint{Circle: true, Center: center.Flat(), Radius: radius}
}

// RectFootprint returns a rectangle with half extents halfU along u and halfV along v.
func RectFootprint(center, u, v core.Vec3, halfU, halfV float64) Footprint {
	return Footprint{
		Center: center.Flat(),
		AxisU:  u.Flat().Normalize(),
		AxisV:  v.Flat().Normalize(),
		HalfU:  halfU,
		HalfV:  halfV,
	}
}

// Corners returns the rectangle corners in winding order. Circles have none.
func (f Footprint) Corners() []core.Vec3 {
	if f.Circle {
		return nil
	}
	u := f.AxisU.Scale(f.HalfU)
	v := f.AxisV.Scale(f.HalfV)
	return []core.Vec3{
		f.Center.Add(u).Add(v),
		f.Center.Sub(u).Add(v),
		f.Center.Sub(u).Sub(v),
		f.Center.Add(u).Sub(v),
	}
}

// Contains reports whether a floor point lies strictly inside the footprint.
func (f Footprint) Contains(p core.Vec3) bool {
	d := p.Flat().Sub(f.Center)
	if f.Circle {
		return d.Len() < f.Radius
	}
	return math.Abs(d.Dot(f.AxisU)) < f.HalfU && math.Abs(d.Dot(f.AxisV)) < f.HalfV
}

// Overlaps reports whether two footprints intersect with positive area.
// Touching edges do not count.
func (f Footprint) Overlaps(o Footprint) bool {
	if f.Contains(o.Center) || o.Contains(f.Center) {
		return true
	}
	switch {
	case f.Circle && o.Circle:
		return f.circle().Intersection(0, 0, o.circle()) != nil
	case f.Circle:
		return o.polygon().Intersection(0, 0, f.circle()) != nil
	case o.Circle:
		return f.polygon().Intersection(0, 0, o.circle()) != nil
	default:
		return f.polygon().Intersection(0, 0, o.polygon()) != nil
	}
}

// overlapSlop shrinks colliders so exactly touching shapes stay apart.
const overlapSlop = 1e-9

// circle returns the footprint as a resolv circle on the X/Z plane.
func (f Footprint) circle() *resolv.Circle {
	return resolv.NewCircle(f.Center.X, f.Center.Z, max(f.Radius-overlapSlop, 0))
}

// polygon returns the rectangle as a resolv polygon on the X/Z plane, with
// corners relative to its center.
func (f Footprint) polygon() *resolv.ConvexPolygon {
	u := f.AxisU.Scale(max(f.HalfU-overlapSlop, 0))
	v := f.AxisV.Scale(max(f.HalfV-overlapSlop, 0))
	corners := []core.Vec3{u.Add(v), u.Scale(-1).Add(v), u.Add(v).Scale(-1), u.Sub(v)}
	points := make([]float64, 0, 2*len(corners))
	for _, c := range corners {
		points = append(points, c.X, c.Z)
	}
	return resolv.NewConvexPolygon(f.Center.X, f.Center.Z, points...)
}
