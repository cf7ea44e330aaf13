// Package core provides fundamental types and utilities shared by the game logic
// and the platform layer. It does not import Bubble Tea, which keeps game
// logic pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a float64 3D vector. Y is world up; the floor is the XZ plane.
// Arithmetic is done in mgl64.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromGL converts an mgl64 vector.
func FromGL(v mgl64.Vec3) Vec3 {
	return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// GL converts v to an mgl64 vector.
func (v Vec3) GL() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Up is the world up axis.
var Up = Vec3{Y: 1}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return FromGL(v.GL().Add(o.GL()))
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return FromGL(v.GL().Sub(o.GL()))
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return FromGL(v.GL().Mul(s))
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.GL().Dot(o.GL())
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return FromGL(v.GL().Cross(o.GL()))
}

// Len returns the Euclidean length.
func (v Vec3) Len() float64 {
	return v.GL().Len()
}

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return v.GL().Sub(o.GL()).Len()
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	if v == (Vec3{}) {
		return Vec3{}
	}
	return FromGL(v.GL().Normalize())
}

// Lerp interpolates between v and o by t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	a := v.GL()
	return FromGL(a.Add(o.GL().Sub(a).Mul(t)))
}

// Flat drops the Y component, projecting onto the floor plane.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	d := v.GL().Sub(o.GL())
	return math.Abs(d.X()) <= eps && math.Abs(d.Y()) <= eps && math.Abs(d.Z()) <= eps
}

// Orientation is a look rotation: Forward is the direction the local -Z axis
// points at, Up is fixed to world up.
type Orientation struct {
	Forward Vec3
}

// LookAt returns the orientation of an object at from looking toward target,
// taken from the view matrix of mgl64.LookAtV. Degenerate directions
// (target == from, or straight up/down) fall back to -Z.
func LookAt(from, target Vec3) Orientation {
	dir := target.Sub(from).Normalize()
	if dir == (Vec3{}) || math.Abs(dir.Dot(Up)) > 1-1e-9 {
		return Orientation{Forward: Vec3{Z: -1}}
	}
	// The view matrix rows are right, up and -forward.
	view := mgl64.LookAtV(from.GL(), target.GL(), Up.GL())
	return Orientation{Forward: FromGL(view.Row(2).Vec3().Mul(-1))}
}

// Right returns the local +X axis in the floor plane.
func (o Orientation) Right() Vec3 {
	return FromGL(o.Rotation().Rotate(mgl64.Vec3{1, 0, 0}))
}

// Rotation returns the orientation as a quaternion turning -Z onto Forward
// about world up.
func (o Orientation) Rotation() mgl64.Quat {
	return mgl64.QuatRotate(-o.Yaw(), Up.GL())
}

// Yaw returns the heading of Forward in the floor plane, in radians,
// measured from -Z toward +X.
func (o Orientation) Yaw() float64 {
	return math.Atan2(o.Forward.X, -o.Forward.Z)
}

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
