package dominoes

import (
	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/physics"
)

// Engine is the physics capability a Session drives. physics.World
// implements it.
type Engine interface {
	Despawner
	Spawn(b physics.Body) physics.EntityID
	Overlaps(id physics.EntityID) []physics.EntityID
	SetPosition(id physics.EntityID, pos core.Vec3) bool
	Body(id physics.EntityID) (physics.Body, bool)
	Step(dt float64)
}

// Despawner can list and remove entities by category.
type Despawner interface {
	Entities(tag physics.Tag) []physics.EntityID
	Despawn(id physics.EntityID) bool
}

// DespawnTagged removes every entity carrying tag and returns how many were
// removed.
func DespawnTagged(d Despawner, tag physics.Tag) int {
	n := 0
	for _, id := range d.Entities(tag) {
		if d.Despawn(id) {
			n++
		}
	}
	return n
}

var _ Engine = (*physics.World)(nil)
