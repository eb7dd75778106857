package bvh

import (
	"github.com/iceisfun/tri3d/internal/invariants"
	"github.com/iceisfun/tri3d/types"
)

// Tree is a binary bounding-volume hierarchy built once over a fixed array
// of triangles, then queried any number of times. It exclusively owns its
// node array, its flat leaf-index array, and the visited memo; the triangle
// array is shared, immutable, read-only for the Tree's lifetime.
type Tree struct {
	triangles []types.Triangle
	eps       float64

	nodes       []node
	leafIndices []int
	root        int32

	visited      []bool
	maxDepthSeen int
}

// Stats summarizes a completed build, useful for logging.
type Stats struct {
	NumTriangles int
	NumNodes     int
	NumLeaves    int
	MaxDepth     int
}

// Build constructs a BVH over triangles. triangles is retained by reference
// (not copied) and must not be mutated afterward; the Tree's lifetime
// should not exceed the caller's ownership of it.
func Build(triangles []types.Triangle, eps float64) *Tree {
	t := &Tree{
		triangles: triangles,
		eps:       eps,
		visited:   make([]bool, len(triangles)),
	}

	indices := make([]int, len(triangles))
	for i := range indices {
		indices[i] = i
	}

	if len(triangles) == 0 {
		t.root = -1
		return t
	}

	t.root = t.buildNode(indices, 0, &t.maxDepthSeen)
	return t
}

// buildNode builds the subtree over indices at the given recursion depth
// and returns its node index within t.nodes. depthOut, if non-nil, is
// updated with the deepest depth seen so far (for Stats only).
func (t *Tree) buildNode(indices []int, depth int, depthOut *int) int32 {
	if depthOut != nil && depth > *depthOut {
		*depthOut = depth
	}

	box := t.boxOf(indices)

	if len(indices) <= leafThreshold {
		return t.makeLeaf(box, indices)
	}

	lhs, rhs, lhsBox, rhsBox, ok := t.bestSplit(indices, box)
	if !ok || len(lhs) == 0 || len(rhs) == 0 {
		return t.makeLeaf(box, indices)
	}

	if t.shouldStopForOverlap(depth, box, lhsBox, rhsBox) {
		return t.makeLeaf(box, indices)
	}

	nodeIdx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{box: box})

	leftIdx := t.buildNode(lhs, depth+1, depthOut)
	rightIdx := t.buildNode(rhs, depth+1, depthOut)

	t.nodes[nodeIdx].left = leftIdx
	t.nodes[nodeIdx].right = rightIdx
	return nodeIdx
}

// shouldStopForOverlap implements the depth/overlap termination guards:
// depth>=8 with overlap-cost ratio > 0.3, depth>=12 with ratio > 0.1, and an
// unconditional hard cap at depth 14. Rationale: the cost-based guards
// prevent degenerate trees when triangles cluster or overlap heavily; the
// hard cap bounds worst-case construction depth.
func (t *Tree) shouldStopForOverlap(depth int, parentBox, lhsBox, rhsBox types.AABB) bool {
	if depth >= hardDepthCap {
		return true
	}

	if depth < guardDepthA {
		return false
	}

	overlap, ok := lhsBox.Intersection(rhsBox)
	overlapCost := 0.0
	if ok {
		overlapCost = overlap.Cost()
	}
	parentCost := parentBox.Cost()

	ratio := guardRatioA
	if depth >= guardDepthB {
		ratio = guardRatioB
	}

	return parentCost > 0 && overlapCost > ratio*parentCost
}

// bestSplit evaluates median splits along all three axes and returns the
// one minimizing cost(lhs)*|lhs| + cost(rhs)*|rhs|. Ties are broken by axis
// iteration order (X, then Y, then Z): a later axis only wins on a strict
// improvement.
func (t *Tree) bestSplit(indices []int, box types.AABB) (lhs, rhs []int, lhsBox, rhsBox types.AABB, ok bool) {
	bestCost := 0.0
	found := false

	for _, axis := range [...]types.Axis{types.AxisX, types.AxisY, types.AxisZ} {
		candLhs, candRhs := t.medianSplit(indices, axis)
		if len(candLhs) == 0 || len(candRhs) == 0 {
			continue
		}
		candLhsBox := t.boxOf(candLhs)
		candRhsBox := t.boxOf(candRhs)
		cost := candLhsBox.Cost()*float64(len(candLhs)) + candRhsBox.Cost()*float64(len(candRhs))

		if !found || cost < bestCost {
			found = true
			bestCost = cost
			lhs, rhs = candLhs, candRhs
			lhsBox, rhsBox = candLhsBox, candRhsBox
		}
	}

	return lhs, rhs, lhsBox, rhsBox, found
}

// medianSplit partitions a copy of indices by the median triangle-center
// coordinate along axis: triangles with coordinate <= median go left, the
// rest go right.
func (t *Tree) medianSplit(indices []int, axis types.Axis) (lhs, rhs []int) {
	work := append([]int(nil), indices...)
	key := func(i int) float64 { return t.triangles[i].Center.Component(axis) }

	mid := len(work) / 2
	quickselect(work, mid, key)
	median := key(work[mid])

	lhs = make([]int, 0, len(work))
	rhs = make([]int, 0, len(work))
	for _, idx := range indices {
		if key(idx) <= median {
			lhs = append(lhs, idx)
		} else {
			rhs = append(rhs, idx)
		}
	}
	return lhs, rhs
}

func (t *Tree) boxOf(indices []int) types.AABB {
	var box types.AABB
	for _, idx := range indices {
		box = box.Unite(t.triangles[idx].Box)
	}
	return box
}

func (t *Tree) makeLeaf(box types.AABB, indices []int) int32 {
	start := len(t.leafIndices)
	t.leafIndices = append(t.leafIndices, indices...)
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{box: box, isLeaf: true, start: start, count: len(indices)})
	invariants.Check(len(t.leafIndices) == start+len(indices), "makeLeaf: leaf index range mismatch")
	return idx
}

// Stats reports summary statistics about the built tree.
func (t *Tree) Stats() Stats {
	s := Stats{NumTriangles: len(t.triangles), NumNodes: len(t.nodes), MaxDepth: t.maxDepthSeen}
	for _, n := range t.nodes {
		if n.isLeaf {
			s.NumLeaves++
		}
	}
	return s
}
