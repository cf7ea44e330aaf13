// Package path owns the editable control-point sequence and turns fitted curves
// into evenly spaced domino placements.
package path

import "github.com/vovakirdan/domino-path/internal/core"

// Store is the ordered control-point sequence of one editing session.
//
// The first point is always the anchor and the sequence never becomes empty.
// Every mutation bumps Version exactly once, so downstream stages recompute
// once per edit by comparing versions instead of polling for changes.
type Store struct {
	anchor  core.Vec3
	points  []core.Vec3
	version uint64
}

// NewStore returns a store holding only the anchor.
func NewStore(anchor core.Vec3) *Store {
	return &Store{
		anchor:  anchor,
		points:  []core.Vec3{anchor},
		version: 1,
	}
}

// Append adds a waypoint to the end of the path.
func (s *Store) Append(p core.Vec3) {
	s.points = append(s.points, p)
	s.version++
}

// Undo removes the last waypoint. Removing the anchor reinserts it, so the
// store always holds at least the anchor.
func (s *Store) Undo() {
	s.points = s.points[:len(s.points)-1]
	if len(s.points) == 0 {
		s.points = append(s.points, s.anchor)
	}
	s.version++
}

// Clear resets the path to the anchor alone.
func (s *Store) Clear() {
	s.points = append(s.points[:0], s.anchor)
	s.version++
}

// Reset re-pins the store to a new anchor and clears it.
func (s *Store) Reset(anchor core.Vec3) {
	s.anchor = anchor
	s.Clear()
}

// Anchor returns the fixed start of the path.
func (s *Store) Anchor() core.Vec3 {
	return s.anchor
}

// Version returns the change token. It increases with every mutation.
func (s *Store) Version() uint64 {
	return s.version
}

// Len returns the number of control points, anchor included.
func (s *Store) Len() int {
	return len(s.points)
}

// At returns the i-th control point.
func (s *Store) At(i int) core.Vec3 {
	return s.points[i]
}

// Points returns a copy of the control points in path order.
func (s *Store) Points() []core.Vec3 {
	out := make([]core.Vec3, len(s.points))
	copy(out, s.points)
	return out
}
