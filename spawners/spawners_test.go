package spawners

import (
	"testing"

	"ebiten-shapes/components"
	"ebiten-shapes/config"
	"ebiten-shapes/ecs"
)

func TestSpawnShapeAttachesAllComponents(t *testing.T) {
	world := ecs.NewWorld()
	spawner := NewEntitySpawner(world, 1)

	entity := spawner.SpawnShape(250, 180)

	comp, exists := world.GetComponent(entity.ID, components.Position)
	if !exists {
		t.Fatal("spawned entity has no position")
	}
	pos := comp.(*components.PositionComponent)
	if pos.X != 250 || pos.Y != 180 {
		t.Errorf("position = (%v, %v), want (250, 180)", pos.X, pos.Y)
	}

	if !world.HasComponent(entity.ID, components.Velocity) {
		t.Error("spawned entity has no velocity")
	}
	if !world.HasComponent(entity.ID, components.Geometry) {
		t.Error("spawned entity has no geometry")
	}

	comp, exists = world.GetComponent(entity.ID, components.Collider)
	if !exists {
		t.Fatal("spawned entity has no collider")
	}
	if comp.(*components.ColliderComponent).Colliding {
		t.Error("spawned entity should start with a clear collider flag")
	}
}

func TestSpawnShapeRespectsConfiguredRanges(t *testing.T) {
	world := ecs.NewWorld()
	spawner := NewEntitySpawner(world, 42)

	sawCircle, sawSquare := false, false
	for i := 0; i < 200; i++ {
		entity := spawner.SpawnShape(0, 0)

		comp, _ := world.GetComponent(entity.ID, components.Velocity)
		vel := comp.(*components.VelocityComponent)
		half := config.SpawnSpeedRange / 2
		if vel.DX < -half || vel.DX >= half || vel.DY < -half || vel.DY >= half {
			t.Fatalf("velocity (%v, %v) outside ±%v", vel.DX, vel.DY, half)
		}

		comp, _ = world.GetComponent(entity.ID, components.Geometry)
		switch shape := comp.(*components.GeometryComponent).Shape.(type) {
		case components.Circle:
			sawCircle = true
			if shape.Radius < config.CircleRadiusMin || shape.Radius >= config.CircleRadiusMax {
				t.Fatalf("circle radius %v outside [%v, %v)",
					shape.Radius, config.CircleRadiusMin, config.CircleRadiusMax)
			}
		case components.Square:
			sawSquare = true
			if shape.Side < config.SquareSideMin || shape.Side >= config.SquareSideMax {
				t.Fatalf("square side %v outside [%v, %v)",
					shape.Side, config.SquareSideMin, config.SquareSideMax)
			}
		default:
			t.Fatalf("unexpected shape variant %T", shape)
		}
	}

	// With 200 spawns at even odds, both variants should show up
	if !sawCircle || !sawSquare {
		t.Errorf("expected both variants across 200 spawns: circle=%v square=%v", sawCircle, sawSquare)
	}
}

func TestSpawnIsDeterministicPerSeed(t *testing.T) {
	worldA := ecs.NewWorld()
	worldB := ecs.NewWorld()
	a := NewEntitySpawner(worldA, 7)
	b := NewEntitySpawner(worldB, 7)

	for i := 0; i < 20; i++ {
		entityA := a.SpawnShape(10, 10)
		entityB := b.SpawnShape(10, 10)

		compA, _ := worldA.GetComponent(entityA.ID, components.Velocity)
		compB, _ := worldB.GetComponent(entityB.ID, components.Velocity)
		velA := compA.(*components.VelocityComponent)
		velB := compB.(*components.VelocityComponent)
		if *velA != *velB {
			t.Fatalf("spawn %d: velocities differ across equal seeds", i)
		}
	}
}

func TestSpawnStaticCircle(t *testing.T) {
	world := ecs.NewWorld()
	spawner := NewEntitySpawner(world, 1)

	entity := spawner.SpawnStaticCircle(config.SeedCircleX, config.SeedCircleY, config.SeedCircleRadius)

	if world.HasComponent(entity.ID, components.Velocity) {
		t.Error("static circle should not have a velocity")
	}
	comp, exists := world.GetComponent(entity.ID, components.Geometry)
	if !exists {
		t.Fatal("static circle has no geometry")
	}
	circle, ok := comp.(*components.GeometryComponent).Shape.(components.Circle)
	if !ok {
		t.Fatalf("expected circle, got %T", comp.(*components.GeometryComponent).Shape)
	}
	if circle.Radius != config.SeedCircleRadius {
		t.Errorf("radius = %v, want %v", circle.Radius, config.SeedCircleRadius)
	}
}
