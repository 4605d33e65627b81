package systems

import (
	"ebiten-shapes/bvh"
	"ebiten-shapes/components"
	"ebiten-shapes/ecs"
)

// BVHSystem rebuilds the bounding-volume tree every tick. The previous
// tick's tree is discarded whole; there is no incremental update. Each
// entity with Position and Geometry contributes exactly one leaf, tagged
// with its entity ID.
type BVHSystem struct {
	tree *bvh.Tree
}

// NewBVHSystem creates a new bounding-volume builder system
func NewBVHSystem() *BVHSystem {
	return &BVHSystem{tree: bvh.NewTree()}
}

// Tree returns the tree built by the most recent Update. Valid until the
// next Update replaces it.
func (s *BVHSystem) Tree() *bvh.Tree {
	return s.tree
}

// Update builds a fresh tree from current positions and geometry
func (s *BVHSystem) Update(world *ecs.World, dt float64) {
	tree := bvh.NewTree()
	for _, entity := range world.EntitiesWith(components.Position, components.Geometry) {
		posComp, _ := world.GetComponent(entity.ID, components.Position)
		geomComp, _ := world.GetComponent(entity.ID, components.Geometry)
		pos := posComp.(*components.PositionComponent)
		geom := geomComp.(*components.GeometryComponent)

		tree.Insert(geom.Bounds(pos.X, pos.Y), uint64(entity.ID))
	}
	tree.Build()
	s.tree = tree
}
