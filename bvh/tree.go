package bvh

import "sort"

// Leaf ties one bounding box to the entity it was computed from
type Leaf struct {
	Box AABB
	Ref uint64 // owning entity ID
}

type node struct {
	box         AABB
	left, right int // child node indices; -1 on leaf nodes
	leaf        int // index into leaves when this node is a leaf; -1 otherwise
}

// Tree is a bounding-volume tree for broad-phase overlap queries. It is
// built once from a batch of leaves and then only queried: there is no
// move or remove operation. The intended lifecycle is one simulation
// tick — insert every entity's box, call Build, run queries, discard.
type Tree struct {
	leaves []Leaf
	nodes  []node
	root   int
}

// NewTree creates an empty tree
func NewTree() *Tree {
	return &Tree{root: -1}
}

// Insert adds a leaf for the given box and entity reference. Must be
// called before Build; insertions after Build are not picked up until
// Build runs again.
func (t *Tree) Insert(box AABB, ref uint64) {
	t.leaves = append(t.leaves, Leaf{Box: box, Ref: ref})
}

// Len returns the number of leaves inserted
func (t *Tree) Len() int {
	return len(t.leaves)
}

// Build constructs the tree over all inserted leaves by recursive median
// split along the longer axis of the enclosing box
func (t *Tree) Build() {
	t.nodes = t.nodes[:0]
	if len(t.leaves) == 0 {
		t.root = -1
		return
	}

	indices := make([]int, len(t.leaves))
	for i := range indices {
		indices[i] = i
	}
	t.root = t.build(indices)
}

func (t *Tree) build(indices []int) int {
	if len(indices) == 1 {
		t.nodes = append(t.nodes, node{
			box:  t.leaves[indices[0]].Box,
			left: -1, right: -1,
			leaf: indices[0],
		})
		return len(t.nodes) - 1
	}

	box := t.leaves[indices[0]].Box
	for _, i := range indices[1:] {
		box = box.Union(t.leaves[i].Box)
	}

	// Split on the axis with the larger extent, ordering leaves by box
	// center along that axis
	splitX := box.MaxX-box.MinX >= box.MaxY-box.MinY
	sort.Slice(indices, func(a, b int) bool {
		boxA := t.leaves[indices[a]].Box
		boxB := t.leaves[indices[b]].Box
		if splitX {
			return boxA.MinX+boxA.MaxX < boxB.MinX+boxB.MaxX
		}
		return boxA.MinY+boxA.MaxY < boxB.MinY+boxB.MaxY
	})

	mid := len(indices) / 2
	left := t.build(indices[:mid])
	right := t.build(indices[mid:])
	t.nodes = append(t.nodes, node{box: box, left: left, right: right, leaf: -1})
	return len(t.nodes) - 1
}

// Query returns every leaf whose box overlaps the given box
func (t *Tree) Query(box AABB) []Leaf {
	return t.QueryBuf(box, nil)
}

// QueryBuf appends matching leaves to buf and returns the extended slice,
// avoiding per-call allocation when a scratch buffer is reused
func (t *Tree) QueryBuf(box AABB, buf []Leaf) []Leaf {
	if t.root < 0 {
		return buf
	}

	stack := make([]int, 0, 32)
	stack = append(stack, t.root)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[idx]
		if !n.box.Overlaps(box) {
			continue
		}
		if n.leaf >= 0 {
			buf = append(buf, t.leaves[n.leaf])
			continue
		}
		stack = append(stack, n.left, n.right)
	}
	return buf
}
