package core

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 0.5)

	if got := a.Add(b); got != V3(5, 1, 3.5) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != V3(-3, 3, 2.5) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale() = %v", got)
	}
	if got := a.Dot(b); got != 4-2+1.5 {
		t.Errorf("Dot() = %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	if got := x.Cross(y); got != V3(0, 0, 1) {
		t.Errorf("X × Y = %v, expected +Z", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", V3(0, 0, -5), V3(0, 0, -1)},
		{"diagonal", V3(3, 0, 4), V3(0.6, 0, 0.8)},
		{"zero", Vec3{}, Vec3{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize(); !got.ApproxEqual(tc.want, 1e-12) {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVec3Dist(t *testing.T) {
	if d := V3(1, 0, 1).Dist(V3(4, 0, 5)); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name        string
		from, to    Vec3
		wantForward Vec3
		wantYaw     float64
	}{
		{"backward along +X path", V3(2, 0, 0), V3(1, 0, 0), V3(-1, 0, 0), -math.Pi / 2},
		{"toward -Z", V3(0, 0, 0), V3(0, 0, -3), V3(0, 0, -1), 0},
		{"degenerate", V3(1, 1, 1), V3(1, 1, 1), V3(0, 0, -1), 0},
		{"straight up", V3(0, 0, 0), V3(0, 4, 0), V3(0, 0, -1), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := LookAt(tc.from, tc.to)
			if !o.Forward.ApproxEqual(tc.wantForward, 1e-12) {
				t.Errorf("Forward = %v, expected %v", o.Forward, tc.wantForward)
			}
			if math.Abs(o.Yaw()-tc.wantYaw) > 1e-12 {
				t.Errorf("Yaw = %v, expected %v", o.Yaw(), tc.wantYaw)
			}
		})
	}
}

func TestOrientationRight(t *testing.T) {
	tests := []struct {
		forward, right Vec3
	}{
		{V3(0, 0, -1), V3(1, 0, 0)},
		{V3(1, 0, 0), V3(0, 0, 1)},
		{V3(-1, 0, 0), V3(0, 0, -1)},
	}
	for _, tc := range tests {
		o := Orientation{Forward: tc.forward}
		if r := o.Right(); !r.ApproxEqual(tc.right, 1e-12) {
			t.Errorf("Right() of %v = %v, expected %v", tc.forward, r, tc.right)
		}
	}
}

func TestOrientationRotation(t *testing.T) {
	for _, target := range []Vec3{V3(1, 0, 0), V3(0, 0, 1), V3(-3, 0, 4)} {
		o := LookAt(Vec3{}, target)
		got := FromGL(o.Rotation().Rotate(V3(0, 0, -1).GL()))
		if !got.ApproxEqual(target.Normalize(), 1e-12) {
			t.Errorf("Rotation turns -Z to %v, expected %v", got, target.Normalize())
		}
	}
}

func TestVec3GLRoundTrip(t *testing.T) {
	v := V3(1.5, -2, 3.25)
	if FromGL(v.GL()) != v {
		t.Errorf("round trip = %v, expected %v", FromGL(v.GL()), v)
	}
	if got := v.Lerp(V3(3.5, 0, 3.25), 0.5); !got.ApproxEqual(V3(2.5, -1, 3.25), 1e-12) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := r.Contains(tc.x, tc.y); result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}

	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF() out of range handling is wrong")
	}
}
