package path

import (
	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/curve"
)

// DefaultResolution is the number of parametric subdivisions walked per segment.
const DefaultResolution = 1000

// Marker is a proposed domino slot along the path.
type Marker struct {
	Index       int // Position in path order
	Position    core.Vec3
	Orientation core.Orientation
	Valid       bool
}

// Placer resamples curves at a fixed arc-length spacing.
type Placer struct {
	Spacing    float64 // Arc length between consecutive markers
	Resolution int     // Parametric subdivisions per segment
}

// NewPlacer returns a placer with the given spacing and the default resolution.
func NewPlacer(spacing float64) Placer {
	return Placer{Spacing: spacing, Resolution: DefaultResolution}
}

// Place walks the curve accumulating chord length and emits a marker at the
// first sample whose distance since the previous marker (or since the path
// start) reaches Spacing. Each marker looks back at the preceding sample with
// world up. The final sample of the curve never carries a marker.
//
// The empty curve yields no markers.
func (p Placer) Place(c curve.Curve) []Marker {
	if c.Empty() || p.Spacing <= 0 {
		return nil
	}
	res := p.Resolution
	if res <= 0 {
		res = DefaultResolution
	}

	segments := c.Segments()
	var (
		markers []Marker
		last    core.Vec3
		seeded  bool
		accum   float64
	)

	for si, seg := range segments {
		if !seeded {
			last = seg.Position(0)
			seeded = true
		}
		final := si == len(segments)-1

		for i := 1; i <= res; i++ {
			pos := seg.Position(float64(i) / float64(res))
			accum += pos.Dist(last)

			if accum >= p.Spacing && !(final && i == res) {
				markers = append(markers, Marker{
					Index:       len(markers),
					Position:    pos,
					Orientation: core.LookAt(pos, last),
					Valid:       true,
				})
				accum = 0
			}
			last = pos
		}
	}
	return markers
}
