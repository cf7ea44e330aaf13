// Package physics is a small planar rigid-body engine for upright boxes that
// topple about their base edge, plus static, kinematic and sensor colliders.
//
// It answers overlap queries between floor footprints and steps toppling
// dominoes; it is not a general physics engine.
package physics

import (
	"math"

	"github.com/vovakirdan/domino-path/internal/core"
)

// EntityID identifies a body in a World. Zero is never assigned.
type EntityID uint64

// Tag is the entity category a body belongs to.
type Tag uint8

const (
	TagNone Tag = iota
	TagWall
	TagMarker
	TagDomino
	TagPusher
	TagGoal
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagWall:
		return "wall"
	case TagMarker:
		return "marker"
	case TagDomino:
		return "domino"
	case TagPusher:
		return "pusher"
	case TagGoal:
		return "goal"
	default:
		return "none"
	}
}

// Kind is how a body participates in the simulation.
type Kind uint8

const (
	Static    Kind = iota // Never moves
	Kinematic             // Moved by its owner, pushes dynamic bodies
	Dynamic               // Topples when struck
)

// Shape describes a collider. Boxes are sized in their local frame: Width
// along the right axis, Thickness along forward, Height up. Circles are
// vertical cylinders.
type Shape struct {
	Circle    bool
	Radius    float64
	Width     float64
	Thickness float64
	Height    float64
}

// Box returns a box shape.
func Box(width, height, thickness float64) Shape {
	return Shape{Width: width, Height: height, Thickness: thickness}
}

// Cylinder returns a circular shape.
func Cylinder(radius, height float64) Shape {
	return Shape{Circle: true, Radius: radius, Height: height}
}

// Phase is the topple progress of a dynamic body.
type Phase uint8

const (
	Standing Phase = iota
	Falling
	Fallen
)

// Body is a collider with its pose and, for dynamic boxes, topple state.
type Body struct {
	ID          EntityID
	Tag         Tag
	Kind        Kind
	Sensor      bool // Sensors report overlaps but never push or block
	Shape       Shape
	Position    core.Vec3 // Center of the base footprint
	Orientation core.Orientation

	Phase   Phase
	Tilt    float64   // Radians from upright
	Spin    float64   // Angular speed, rad/s
	FallDir core.Vec3 // Horizontal unit direction the top moves toward

	stepped core.Vec3 // Kinematic only: position at the end of the last step
}

// Footprint returns the body's current projection onto the floor.
//
// A box tilted by θ about its leading base edge covers, along FallDir, the
// interval [-t·cosθ, h·sinθ] measured from that edge.
func (b Body) Footprint() Footprint {
	if b.Shape.Circle {
		return CircleFootprint(b.Position, b.Shape.Radius)
	}

	right := b.Orientation.Right()
	fwd := b.Orientation.Forward
	if b.Tilt == 0 || b.FallDir == (core.Vec3{}) {
		return RectFootprint(b.Position, right, fwd, b.Shape.Width/2, b.Shape.Thickness/2)
	}

	h, t := b.Shape.Height, b.Shape.Thickness
	sin, cos := math.Sin(b.Tilt), math.Cos(b.Tilt)
	pivot := b.Position.Add(b.FallDir.Scale(t / 2))
	center := pivot.Add(b.FallDir.Scale((h*sin - t*cos) / 2))
	return RectFootprint(center, right, b.FallDir, b.Shape.Width/2, (h*sin+t*cos)/2)
}
