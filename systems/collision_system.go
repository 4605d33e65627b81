package systems

import (
	"ebiten-shapes/bvh"
	"ebiten-shapes/components"
	"ebiten-shapes/ecs"
)

// CollisionSystem flags entities whose bounding box overlaps another box in
// the tree built this tick. An entity's own box is always among the query
// results (it was inserted this tick), so more than one result means at
// least one other entity interferes. Entities with geometry but no collider
// still contribute boxes and can set other entities' flags; they just never
// report their own state.
type CollisionSystem struct {
	bvhSystem *BVHSystem
	// Scratch buffer reused across queries to avoid per-entity allocation
	results []bvh.Leaf
	// Flag value from the previous tick, for enter/exit event edges. Kept
	// here because the reset system wipes the components before requery.
	wasColliding map[ecs.EntityID]bool
}

// NewCollisionSystem creates a new interference query system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{
		wasColliding: make(map[ecs.EntityID]bool),
	}
}

// SetBVHSystem sets the builder system whose tree this system queries
func (s *CollisionSystem) SetBVHSystem(bvhSystem *BVHSystem) {
	s.bvhSystem = bvhSystem
}

// Update recomputes every collider flag from the current tree
func (s *CollisionSystem) Update(world *ecs.World, dt float64) {
	// If no builder was wired up, find one among the world's systems
	if s.bvhSystem == nil {
		for _, system := range world.GetSystems() {
			if bvhSystem, ok := system.(*BVHSystem); ok {
				s.bvhSystem = bvhSystem
				break
			}
		}
		if s.bvhSystem == nil {
			return
		}
	}

	tree := s.bvhSystem.Tree()
	for _, entity := range world.EntitiesWith(components.Position, components.Geometry, components.Collider) {
		posComp, _ := world.GetComponent(entity.ID, components.Position)
		geomComp, _ := world.GetComponent(entity.ID, components.Geometry)
		collComp, _ := world.GetComponent(entity.ID, components.Collider)
		pos := posComp.(*components.PositionComponent)
		geom := geomComp.(*components.GeometryComponent)
		collider := collComp.(*components.ColliderComponent)

		s.results = tree.QueryBuf(geom.Bounds(pos.X, pos.Y), s.results[:0])
		colliding := len(s.results) > 1
		collider.Colliding = colliding

		if colliding != s.wasColliding[entity.ID] {
			if colliding {
				world.EmitEvent(CollisionEnterEvent{EntityID: entity.ID})
			} else {
				world.EmitEvent(CollisionExitEvent{EntityID: entity.ID})
			}
			s.wasColliding[entity.ID] = colliding
		}
	}
}
