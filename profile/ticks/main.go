// Profiling the headless tick pipeline:
// go build ./profile/ticks
// ./ticks && go tool pprof -http=":8000" ./ticks cpu.pprof

package main

import (
	"math/rand"

	"github.com/pkg/profile"

	"ebiten-shapes/ecs"
	"ebiten-shapes/spawners"
	"ebiten-shapes/systems"
)

func main() {
	entities := 2000
	ticks := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(entities, ticks)
	p.Stop()
}

func run(numEntities, ticks int) {
	world := ecs.NewWorld()

	bvhSystem := systems.NewBVHSystem()
	collisionSystem := systems.NewCollisionSystem()
	collisionSystem.SetBVHSystem(bvhSystem)

	world.AddSystem(systems.NewCollisionResetSystem())
	world.AddSystem(systems.NewMovementSystem())
	world.AddSystem(bvhSystem)
	world.AddSystem(collisionSystem)

	spawner := spawners.NewEntitySpawner(world, 1)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < numEntities; i++ {
		spawner.SpawnShape(rng.Float64()*800, rng.Float64()*600)
	}

	for i := 0; i < ticks; i++ {
		world.Update(1.0 / 60.0)
	}
}
