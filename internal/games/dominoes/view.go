package dominoes

import (
	"math"

	"github.com/vovakirdan/domino-path/internal/core"
)

const (
	hudHeight    = 2
	footerHeight = 1
)

// viewport maps the square floor onto a screen rectangle. Terminal cells are
// about twice as tall as they are wide, so the rectangle is twice as wide as
// it is high.
type viewport struct {
	rect core.Rect
	size float64 // Floor edge length
}

func newViewport(screenW, screenH int, size float64) viewport {
	availH := max(screenH-hudHeight-footerHeight, 1)
	availW := max(screenW, 2)

	w, h := availW, availW/2
	if h > availH {
		h = availH
		w = 2 * h
	}
	w, h = max(w, 2), max(h, 1)
	x := (screenW - w) / 2
	y := hudHeight + (availH-h)/2
	return viewport{rect: core.NewRect(x, y, w, h), size: size}
}

// toScreen returns the cell containing floor point p.
func (v viewport) toScreen(p core.Vec3) (int, int) {
	half := v.size / 2
	sx := v.rect.X + int(math.Floor((p.X+half)/v.size*float64(v.rect.W)))
	sy := v.rect.Y + int(math.Floor((p.Z+half)/v.size*float64(v.rect.H)))
	return sx, sy
}

// toFloor returns the floor point at the center of a screen cell.
func (v viewport) toFloor(sx, sy int) (core.Vec3, bool) {
	if !v.rect.Contains(sx, sy) {
		return core.Vec3{}, false
	}
	half := v.size / 2
	x := (float64(sx-v.rect.X)+0.5)/float64(v.rect.W)*v.size - half
	z := (float64(sy-v.rect.Y)+0.5)/float64(v.rect.H)*v.size - half
	return core.V3(x, 0, z), true
}

// cellSize returns the floor extent of one cell along X and Z.
func (v viewport) cellSize() (float64, float64) {
	return v.size / float64(v.rect.W), v.size / float64(v.rect.H)
}
