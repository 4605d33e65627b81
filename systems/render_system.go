package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-shapes/components"
	"ebiten-shapes/ecs"
)

// Outline colors, matching the collider flag
var (
	colorIdle      = color.RGBA{255, 255, 255, 255}
	colorColliding = color.RGBA{255, 0, 0, 255}
)

const strokeWidth = 1.0

// RenderSystem draws entity shapes to the screen. It only reads state:
// the collider flags it colors by were finalized by the collision system
// earlier in the tick.
type RenderSystem struct{}

// NewRenderSystem creates a new rendering system
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Update is a no-op; rendering has no per-tick state to advance
func (s *RenderSystem) Update(world *ecs.World, dt float64) {}

// Draw renders all entities with position and geometry as outline shapes,
// red when their collider flag is set and white otherwise
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	for _, entity := range world.EntitiesWith(components.Position, components.Geometry) {
		posComp, _ := world.GetComponent(entity.ID, components.Position)
		geomComp, _ := world.GetComponent(entity.ID, components.Geometry)
		pos := posComp.(*components.PositionComponent)
		geom := geomComp.(*components.GeometryComponent)

		clr := colorIdle
		if comp, exists := world.GetComponent(entity.ID, components.Collider); exists {
			if comp.(*components.ColliderComponent).Colliding {
				clr = colorColliding
			}
		}

		switch shape := geom.Shape.(type) {
		case components.Circle:
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y),
				float32(shape.Radius), strokeWidth, clr, true)
		case components.Square:
			// Center-anchored, same convention as the bounding box
			half := float32(shape.Side / 2)
			vector.StrokeRect(screen, float32(pos.X)-half, float32(pos.Y)-half,
				float32(shape.Side), float32(shape.Side), strokeWidth, clr, true)
		default:
			panic(fmt.Sprintf("render: unknown shape variant %T", geom.Shape))
		}
	}
}
