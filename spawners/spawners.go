package spawners

import (
	"math/rand"

	"ebiten-shapes/components"
	"ebiten-shapes/config"
	"ebiten-shapes/ecs"
)

// EntitySpawner manages the creation of simulation entities
type EntitySpawner struct {
	world *ecs.World
	rng   *rand.Rand
}

// NewEntitySpawner creates a new entity spawner with its own seeded
// random source
func NewEntitySpawner(world *ecs.World, seed int64) *EntitySpawner {
	return &EntitySpawner{
		world: world,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// SpawnShape creates a drifting shape centered at the given world position:
// a circle with probability config.CircleChance, otherwise a square, with
// size and velocity drawn uniformly from the configured ranges. The new
// entity first participates in the tick after the current one.
func (s *EntitySpawner) SpawnShape(x, y float64) *ecs.Entity {
	var shape components.Shape
	if s.rng.Float64() < config.CircleChance {
		shape = components.Circle{Radius: s.uniform(config.CircleRadiusMin, config.CircleRadiusMax)}
	} else {
		shape = components.Square{Side: s.uniform(config.SquareSideMin, config.SquareSideMax)}
	}

	entity := s.world.CreateEntity()
	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{
		X: x,
		Y: y,
	})
	s.world.AddComponent(entity.ID, components.Velocity, &components.VelocityComponent{
		DX: s.rng.Float64()*config.SpawnSpeedRange - config.SpawnSpeedRange/2,
		DY: s.rng.Float64()*config.SpawnSpeedRange - config.SpawnSpeedRange/2,
	})
	s.world.AddComponent(entity.ID, components.Geometry, components.NewGeometryComponent(shape))
	s.world.AddComponent(entity.ID, components.Collider, components.NewColliderComponent())

	return entity
}

// SpawnStaticCircle creates a motionless circle at the given position.
// Used for the startup seed entity.
func (s *EntitySpawner) SpawnStaticCircle(x, y, radius float64) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{
		X: x,
		Y: y,
	})
	s.world.AddComponent(entity.ID, components.Geometry,
		components.NewGeometryComponent(components.Circle{Radius: radius}))
	s.world.AddComponent(entity.ID, components.Collider, components.NewColliderComponent())

	return entity
}

// uniform draws from [min, max)
func (s *EntitySpawner) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
