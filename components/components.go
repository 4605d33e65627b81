package components

import (
	"ebiten-shapes/ecs"
)

// Define component IDs for the simulation
const (
	Position ecs.ComponentID = iota
	Velocity
	Geometry
	Collider
)

// PositionComponent stores an entity's center position in world coordinates
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent stores an entity's drift velocity in world units per
// unit of simulation time. Assigned once at spawn and never changed;
// entities without it do not move.
type VelocityComponent struct {
	DX, DY float64
}

// ColliderComponent marks an entity as reporting overlap state. Colliding
// is recomputed every tick: cleared by the reset system, then set by the
// collision system when the entity's bounding box overlaps another.
type ColliderComponent struct {
	Colliding bool
}

// NewColliderComponent creates a collider component with no overlap recorded
func NewColliderComponent() *ColliderComponent {
	return &ColliderComponent{Colliding: false}
}
