package dominoes

import (
	"github.com/vovakirdan/domino-path/internal/level"
	"github.com/vovakirdan/domino-path/internal/physics"
)

// checkGoal sets the win flag while any domino overlaps the goal sensor.
// Outside Physics the flag is always clear.
func (s *Session) checkGoal() {
	if s.state != StatePhysics {
		s.won = false
		return
	}
	was := s.won
	s.won = false
	for _, id := range s.engine.Overlaps(s.goal) {
		if b, ok := s.engine.Body(id); ok && b.Tag == physics.TagDomino {
			s.won = true
			break
		}
	}
	if s.won && !was {
		s.log.Info("goal reached", "level", s.level+1, "tick", s.tick)
	}
}

// Won reports whether the current level is won.
func (s *Session) Won() bool {
	return s.won
}

// Level returns the level counter, starting at 0.
func (s *Session) Level() int {
	return s.level
}

// CurrentLevel returns the table entry for the level counter.
func (s *Session) CurrentLevel() level.Level {
	return s.table.At(s.level)
}

// Goal returns the goal body.
func (s *Session) Goal() (physics.Body, bool) {
	return s.engine.Body(s.goal)
}
