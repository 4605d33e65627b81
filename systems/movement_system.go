package systems

import (
	"ebiten-shapes/components"
	"ebiten-shapes/config"
	"ebiten-shapes/ecs"
)

// MovementSystem advances entities by their velocity once per tick
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update integrates position for every entity carrying both Position and
// Velocity. The step is the fixed config.TickStep, not the dt argument:
// motion stays deterministic regardless of frame cadence. Positions are
// not clamped; shapes may drift off-screen forever.
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	for _, entity := range world.EntitiesWith(components.Position, components.Velocity) {
		posComp, _ := world.GetComponent(entity.ID, components.Position)
		velComp, _ := world.GetComponent(entity.ID, components.Velocity)
		pos := posComp.(*components.PositionComponent)
		vel := velComp.(*components.VelocityComponent)

		pos.X += vel.DX * config.TickStep
		pos.Y += vel.DY * config.TickStep
	}
}
