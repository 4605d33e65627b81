package systems

import (
	"ebiten-shapes/components"
	"ebiten-shapes/ecs"
)

// CollisionResetSystem clears every collider flag at the start of a tick,
// before integration and requery, so flags never carry stale state from the
// previous tick. An entity that drifted out of overlap reads false even if
// the query phase finds nothing for it.
type CollisionResetSystem struct{}

// NewCollisionResetSystem creates a new collision reset system
func NewCollisionResetSystem() *CollisionResetSystem {
	return &CollisionResetSystem{}
}

// Update sets every entity's collider flag to false
func (s *CollisionResetSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.EntitiesWith(components.Collider) {
		comp, _ := world.GetComponent(entity.ID, components.Collider)
		comp.(*components.ColliderComponent).Colliding = false
	}
}
