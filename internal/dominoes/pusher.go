package dominoes

import (
	"math"

	"github.com/vovakirdan/domino-path/internal/core"
)

// drivePusher eases the pusher toward the second control point while it is
// still within the travel threshold of the first one. Once past the
// threshold it stays put until the run is torn down.
func (s *Session) drivePusher(dt float64) {
	if s.pusherStopped {
		return
	}
	b, ok := s.engine.Body(s.pusher)
	if !ok {
		return
	}
	pos := b.Position

	threshold := s.cfg.Pusher.ThresholdFactor * s.placer.Spacing
	if pos.Flat().Dist(s.store.At(0).Flat()) > threshold {
		s.pusherStopped = true
		return
	}

	target := pos
	if s.store.Len() >= 2 {
		target = s.store.At(1)
		target.Y = pos.Y
	}
	pos = pos.Add(target.Sub(pos).Scale(1 - math.Exp(-s.cfg.Pusher.Rate*dt)))
	s.engine.SetPosition(s.pusher, pos)
}

// PusherPosition returns the pusher's current position.
func (s *Session) PusherPosition() core.Vec3 {
	b, _ := s.engine.Body(s.pusher)
	return b.Position
}

// PusherRest returns the pusher's rest position for the current level.
func (s *Session) PusherRest() core.Vec3 {
	return s.pusherRest
}
