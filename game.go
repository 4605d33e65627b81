package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-shapes/config"
	"ebiten-shapes/ecs"
	"ebiten-shapes/spawners"
	"ebiten-shapes/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world          *ecs.World
	renderSystem   *systems.RenderSystem
	entitySpawner  *spawners.EntitySpawner
	collidingCount int // live count of flagged entities, fed by events
}

// NewGame creates a new game instance
func NewGame() *Game {
	// Initialize ECS world
	world := ecs.NewWorld()

	// Initialize all systems
	resetSystem := systems.NewCollisionResetSystem()
	movementSystem := systems.NewMovementSystem()
	bvhSystem := systems.NewBVHSystem()
	collisionSystem := systems.NewCollisionSystem()
	renderSystem := systems.NewRenderSystem()

	// Wire the collision system to the builder whose tree it queries
	collisionSystem.SetBVHSystem(bvhSystem)

	// Registration order is the tick order: reset flags, integrate motion,
	// rebuild the tree, then query it
	world.AddSystem(resetSystem)
	world.AddSystem(movementSystem)
	world.AddSystem(bvhSystem)
	world.AddSystem(collisionSystem)

	// Create entity spawner
	entitySpawner := spawners.NewEntitySpawner(world, time.Now().UnixNano())

	// Create the game instance
	game := &Game{
		world:         world,
		renderSystem:  renderSystem,
		entitySpawner: entitySpawner,
	}

	// Track collider flag transitions for the HUD
	world.GetEventManager().Subscribe(systems.EventCollisionEnter, func(ecs.Event) {
		game.collidingCount++
	})
	world.GetEventManager().Subscribe(systems.EventCollisionExit, func(ecs.Event) {
		game.collidingCount--
	})

	// Initialize the game world
	game.initialize()

	return game
}

// initialize sets up the initial game state
func (g *Game) initialize() {
	// Seed entity so the window is never empty
	g.entitySpawner.SpawnStaticCircle(config.SeedCircleX, config.SeedCircleY, config.SeedCircleRadius)
}

// Update updates the game state.
func (g *Game) Update() error {
	// Apply spawn clicks before any system runs, so entities only ever
	// join the world at a tick boundary
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.entitySpawner.SpawnShape(float64(x), float64(y))
	}

	// Update all systems
	g.world.Update(1.0 / 60.0)

	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	// Use the render system to draw the shapes
	g.renderSystem.Draw(g.world, screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  shapes: %d  colliding: %d",
		ebiten.ActualFPS(), g.world.EntityCount(), g.collidingCount))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
