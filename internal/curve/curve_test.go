package curve

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/domino-path/internal/core"
)

var zigzag = []core.Vec3{
	core.V3(0, 0, 0),
	core.V3(4, 0, 1),
	core.V3(6, 0, -3),
	core.V3(12, 0, -2),
	core.V3(13, 0, 5),
}

func TestFitPassesThroughControlPoints(t *testing.T) {
	for _, alpha := range []float64{Uniform, Centripetal, Chordal} {
		c := Fit(zigzag, alpha)
		if got := len(c.Segments()); got != len(zigzag)-1 {
			t.Fatalf("alpha=%v: %d segments, expected %d", alpha, got, len(zigzag)-1)
		}
		for i, p := range zigzag {
			if got := c.Position(float64(i)); !got.ApproxEqual(p, 1e-9) {
				t.Errorf("alpha=%v: Position(%d) = %v, expected %v", alpha, i, got, p)
			}
		}
	}
}

func TestFitEmpty(t *testing.T) {
	tests := []struct {
		name   string
		points []core.Vec3
	}{
		{"no points", nil},
		{"single point", []core.Vec3{core.V3(1, 0, 1)}},
		{"duplicate pair", []core.Vec3{core.V3(1, 0, 1), core.V3(1, 0, 1)}},
		{"duplicate in the middle", []core.Vec3{core.V3(0, 0, 0), core.V3(2, 0, 0), core.V3(2, 0, 0), core.V3(5, 0, 1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Fit(tc.points, Centripetal)
			if !c.Empty() {
				t.Errorf("expected empty curve, got %d segments", len(c.Segments()))
			}
			n := 0
			for range c.Samples(100) {
				n++
			}
			if n != 0 {
				t.Errorf("empty curve yielded %d samples", n)
			}
		})
	}
}

func TestFitIsPure(t *testing.T) {
	a := slices.Collect(Fit(zigzag, Centripetal).Samples(500))
	b := slices.Collect(Fit(zigzag, Centripetal).Samples(500))

	if !slices.Equal(a, b) {
		t.Error("fitting the same points twice produced different samples")
	}
}

func TestTwoPointCurveIsStraight(t *testing.T) {
	c := Fit([]core.Vec3{core.V3(0, 0, 0), core.V3(10, 0, 0)}, Centripetal)

	for i := 0; i <= 10; i++ {
		u := float64(i) / 10
		want := core.V3(10*u, 0, 0)
		if got := c.Position(u); !got.ApproxEqual(want, 1e-9) {
			t.Errorf("Position(%v) = %v, expected %v", u, got, want)
		}
	}
	if l := c.Length(1000); math.Abs(l-10) > 1e-9 {
		t.Errorf("Length() = %v, expected 10", l)
	}
}

func TestTangentContinuity(t *testing.T) {
	for _, alpha := range []float64{Uniform, Centripetal, Chordal} {
		segs := Fit(zigzag, alpha).Segments()
		for i := 0; i+1 < len(segs); i++ {
			out := segs[i].Velocity(1).Normalize()
			in := segs[i+1].Velocity(0).Normalize()
			if !out.ApproxEqual(in, 1e-9) {
				t.Errorf("alpha=%v: tangent jumps at point %d: %v vs %v", alpha, i+1, out, in)
			}
		}
	}

	// The uniform parameterization is C1 in the unit segment parameter as well.
	segs := Fit(zigzag, Uniform).Segments()
	for i := 0; i+1 < len(segs); i++ {
		if !segs[i].Velocity(1).ApproxEqual(segs[i+1].Velocity(0), 1e-9) {
			t.Errorf("uniform: velocity jumps at point %d", i+1)
		}
	}
}

func TestPositionClampsParameter(t *testing.T) {
	c := Fit(zigzag, Centripetal)

	if got := c.Position(-3); !got.ApproxEqual(zigzag[0], 1e-9) {
		t.Errorf("Position(-3) = %v, expected start", got)
	}
	if got := c.Position(99); !got.ApproxEqual(zigzag[len(zigzag)-1], 1e-9) {
		t.Errorf("Position(99) = %v, expected end", got)
	}
}

func TestSamples(t *testing.T) {
	c := Fit(zigzag, Centripetal)

	samples := slices.Collect(c.Samples(40))
	if len(samples) != 41 {
		t.Fatalf("Samples(40) yielded %d positions, expected 41", len(samples))
	}
	if !samples[0].ApproxEqual(zigzag[0], 1e-9) || !samples[40].ApproxEqual(zigzag[4], 1e-9) {
		t.Error("samples should start and end at the path endpoints")
	}

	// Early termination must be honoured.
	n := 0
	for range c.Samples(40) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iteration did not stop, n = %d", n)
	}
}
