package components

import (
	"fmt"

	"ebiten-shapes/bvh"
)

// Shape is the closed set of geometry variants. The interface is sealed so
// bounding-box derivation and rendering can type-switch exhaustively; a new
// variant must extend those switches or hit their panic branch.
type Shape interface {
	isShape()
}

// Circle is a circle of the given radius centered on the entity's position
type Circle struct {
	Radius float64
}

// Square is an axis-aligned square of the given side length centered on the
// entity's position. Center anchoring is the convention everywhere: the
// bounding box and the rendered outline both treat Position as the middle
// of the square, never a corner.
type Square struct {
	Side float64
}

func (Circle) isShape() {}
func (Square) isShape() {}

// GeometryComponent stores an entity's shape, immutable after spawn
type GeometryComponent struct {
	Shape Shape
}

// NewGeometryComponent creates a geometry component, validating the shape
// at construction time. A non-positive size is an invariant violation and
// panics here so it can never reach the per-tick pipeline.
func NewGeometryComponent(shape Shape) *GeometryComponent {
	switch s := shape.(type) {
	case Circle:
		if s.Radius <= 0 {
			panic(fmt.Sprintf("geometry: circle radius must be positive, got %v", s.Radius))
		}
	case Square:
		if s.Side <= 0 {
			panic(fmt.Sprintf("geometry: square side must be positive, got %v", s.Side))
		}
	default:
		panic(fmt.Sprintf("geometry: unknown shape variant %T", shape))
	}
	return &GeometryComponent{Shape: shape}
}

// Bounds returns the axis-aligned bounding box of the shape centered at
// (x, y), with zero rotation. Pure function of its inputs.
func (g *GeometryComponent) Bounds(x, y float64) bvh.AABB {
	switch s := g.Shape.(type) {
	case Circle:
		return bvh.AABB{
			MinX: x - s.Radius, MinY: y - s.Radius,
			MaxX: x + s.Radius, MaxY: y + s.Radius,
		}
	case Square:
		half := s.Side / 2
		return bvh.AABB{
			MinX: x - half, MinY: y - half,
			MaxX: x + half, MaxY: y + half,
		}
	default:
		panic(fmt.Sprintf("geometry: unknown shape variant %T", g.Shape))
	}
}
