// Package curve fits smooth interpolating curves through ordered control points.
//
// Curves are Catmull-Rom splines with a configurable knot parameterization
// (uniform, centripetal or chordal), stored per segment as cubic polynomial
// coefficients. A curve built from too few or coincident points is empty; callers
// treat an empty curve as "nothing to sample".
package curve

import (
	"iter"
	"math"

	"github.com/vovakirdan/domino-path/internal/core"
)

// Knot parameterization exponents.
const (
	Uniform     = 0.0
	Centripetal = 0.5
	Chordal     = 1.0
)

// coincident is the distance below which consecutive points are treated as equal.
const coincident = 1e-9

// Segment is one cubic piece: P(u) = A·u³ + B·u² + C·u + D for u in [0, 1].
type Segment struct {
	A, B, C, D core.Vec3
}

// Position evaluates the segment at u.
func (s Segment) Position(u float64) core.Vec3 {
	return s.A.Scale(u * u * u).
		Add(s.B.Scale(u * u)).
		Add(s.C.Scale(u)).
		Add(s.D)
}

// Velocity evaluates the first derivative at u.
func (s Segment) Velocity(u float64) core.Vec3 {
	return s.A.Scale(3 * u * u).
		Add(s.B.Scale(2 * u)).
		Add(s.C)
}

// Curve is a piecewise cubic interpolant. The zero value is the empty curve.
type Curve struct {
	segments []Segment
}

// Fit builds a Catmull-Rom curve passing through every point, in order.
// alpha selects the knot parameterization (see Uniform, Centripetal, Chordal).
//
// Endpoints are extended with reflected phantom points so the curve starts at the
// first point and ends at the last. Fewer than two points, or any two consecutive
// coincident points, yield the empty curve.
func Fit(points []core.Vec3, alpha float64) Curve {
	n := len(points)
	if n < 2 {
		return Curve{}
	}
	for i := 1; i < n; i++ {
		if points[i].Dist(points[i-1]) < coincident {
			return Curve{}
		}
	}

	ext := make([]core.Vec3, 0, n+2)
	ext = append(ext, points[0].Scale(2).Sub(points[1]))
	ext = append(ext, points...)
	ext = append(ext, points[n-1].Scale(2).Sub(points[n-2]))

	segments := make([]Segment, 0, n-1)
	for i := 0; i+3 < len(ext); i++ {
		seg, ok := hermite(ext[i], ext[i+1], ext[i+2], ext[i+3], alpha)
		if !ok {
			return Curve{}
		}
		segments = append(segments, seg)
	}
	return Curve{segments: segments}
}

// hermite builds the segment p1→p2 from its four-point neighborhood using the
// non-uniform Catmull-Rom tangents, rescaled to the unit parameter interval.
func hermite(p0, p1, p2, p3 core.Vec3, alpha float64) (Segment, bool) {
	dt0 := math.Pow(p1.Dist(p0), alpha)
	dt1 := math.Pow(p2.Dist(p1), alpha)
	dt2 := math.Pow(p3.Dist(p2), alpha)
	if dt0 < coincident || dt1 < coincident || dt2 < coincident {
		return Segment{}, false
	}

	m1 := p1.Sub(p0).Scale(1 / dt0).
		Sub(p2.Sub(p0).Scale(1 / (dt0 + dt1))).
		Add(p2.Sub(p1).Scale(1 / dt1)).
		Scale(dt1)
	m2 := p2.Sub(p1).Scale(1 / dt1).
		Sub(p3.Sub(p1).Scale(1 / (dt1 + dt2))).
		Add(p3.Sub(p2).Scale(1 / dt2)).
		Scale(dt1)

	seg := Segment{
		A: p1.Scale(2).Sub(p2.Scale(2)).Add(m1).Add(m2),
		B: p2.Scale(3).Sub(p1.Scale(3)).Sub(m1.Scale(2)).Sub(m2),
		C: m1,
		D: p1,
	}
	for _, v := range []core.Vec3{seg.A, seg.B, seg.C, seg.D} {
		if !finite(v) {
			return Segment{}, false
		}
	}
	return seg, true
}

func finite(v core.Vec3) bool {
	for _, f := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Empty reports whether the curve has no segments.
func (c Curve) Empty() bool {
	return len(c.segments) == 0
}

// Segments returns the curve's segments in path order.
func (c Curve) Segments() []Segment {
	return c.segments
}

// Position evaluates the curve at global parameter t in [0, len(Segments())].
// t is clamped to the curve's domain. The empty curve evaluates to the origin.
func (c Curve) Position(t float64) core.Vec3 {
	if c.Empty() {
		return core.Vec3{}
	}
	n := len(c.segments)
	t = core.ClampF(t, 0, float64(n))
	i := int(t)
	if i >= n {
		i = n - 1
	}
	return c.segments[i].Position(t - float64(i))
}

// Samples yields resolution+1 positions evenly spaced in parameter space,
// from the start of the curve to its end. Nothing is yielded for the empty curve.
func (c Curve) Samples(resolution int) iter.Seq[core.Vec3] {
	return func(yield func(core.Vec3) bool) {
		if c.Empty() || resolution <= 0 {
			return
		}
		span := float64(len(c.segments))
		for i := 0; i <= resolution; i++ {
			if !yield(c.Position(span * float64(i) / float64(resolution))) {
				return
			}
		}
	}
}

// Length approximates the arc length by summing chords over perSegment
// subdivisions of every segment.
func (c Curve) Length(perSegment int) float64 {
	if perSegment <= 0 {
		perSegment = 1
	}
	total := 0.0
	for _, seg := range c.segments {
		prev := seg.Position(0)
		for i := 1; i <= perSegment; i++ {
			p := seg.Position(float64(i) / float64(perSegment))
			total += p.Dist(prev)
			prev = p
		}
	}
	return total
}
