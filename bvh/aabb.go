package bvh

// AABB is an axis-aligned bounding box in world coordinates
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Overlaps checks whether two boxes intersect. Boundaries count as
// overlapping: the projections on both axes are closed intervals, so boxes
// that merely touch are still reported.
func (a AABB) Overlaps(b AABB) bool {
	return a.MinX <= b.MaxX && b.MinX <= a.MaxX &&
		a.MinY <= b.MaxY && b.MinY <= a.MaxY
}

// Union returns the smallest box enclosing both a and b
func (a AABB) Union(b AABB) AABB {
	out := a
	if b.MinX < out.MinX {
		out.MinX = b.MinX
	}
	if b.MinY < out.MinY {
		out.MinY = b.MinY
	}
	if b.MaxX > out.MaxX {
		out.MaxX = b.MaxX
	}
	if b.MaxY > out.MaxY {
		out.MaxY = b.MaxY
	}
	return out
}
