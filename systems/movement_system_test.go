package systems

import (
	"testing"

	"ebiten-shapes/components"
	"ebiten-shapes/config"
	"ebiten-shapes/ecs"
)

func TestMovementIntegratesExactly(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		dx, dy float64
	}{
		{"Positive velocity", 100, 100, 8, 4},
		{"Negative velocity", 50, 50, -6, -2},
		{"Zero velocity", 10, 20, 0, 0},
		{"Fractional", 0.5, 0.25, 1.5, -0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := ecs.NewWorld()
			entity := world.CreateEntity()
			world.AddComponent(entity.ID, components.Position,
				&components.PositionComponent{X: tt.x, Y: tt.y})
			world.AddComponent(entity.ID, components.Velocity,
				&components.VelocityComponent{DX: tt.dx, DY: tt.dy})

			NewMovementSystem().Update(world, 1.0/60.0)

			comp, _ := world.GetComponent(entity.ID, components.Position)
			pos := comp.(*components.PositionComponent)

			// Exact equality: the step is a single multiply-add
			wantX := tt.x + tt.dx*config.TickStep
			wantY := tt.y + tt.dy*config.TickStep
			if pos.X != wantX || pos.Y != wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, wantX, wantY)
			}
		})
	}
}

func TestMovementIgnoresEntitiesWithoutVelocity(t *testing.T) {
	world := ecs.NewWorld()
	entity := world.CreateEntity()
	world.AddComponent(entity.ID, components.Position,
		&components.PositionComponent{X: 100, Y: 100})

	NewMovementSystem().Update(world, 1.0/60.0)

	comp, _ := world.GetComponent(entity.ID, components.Position)
	pos := comp.(*components.PositionComponent)
	if pos.X != 100 || pos.Y != 100 {
		t.Errorf("entity without velocity moved to (%v, %v)", pos.X, pos.Y)
	}
}

func TestMovementStepIsIndependentOfDt(t *testing.T) {
	// The dt argument is frame timing; integration must use the fixed step
	for _, dt := range []float64{1.0 / 30.0, 1.0 / 60.0, 1.0 / 144.0} {
		world := ecs.NewWorld()
		entity := world.CreateEntity()
		world.AddComponent(entity.ID, components.Position,
			&components.PositionComponent{X: 0, Y: 0})
		world.AddComponent(entity.ID, components.Velocity,
			&components.VelocityComponent{DX: 10, DY: 0})

		NewMovementSystem().Update(world, dt)

		comp, _ := world.GetComponent(entity.ID, components.Position)
		pos := comp.(*components.PositionComponent)
		if pos.X != 10*config.TickStep {
			t.Errorf("dt=%v: moved %v, want %v", dt, pos.X, 10*config.TickStep)
		}
	}
}
