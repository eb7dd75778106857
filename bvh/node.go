package bvh

import "github.com/iceisfun/tri3d/types"

// Design constants, matching the specification exactly.
const (
	// leafThreshold (L) is the maximum number of triangles a leaf normally
	// holds; a termination guard may force a larger leaf.
	leafThreshold = 8

	guardDepthA = 8
	guardDepthB = 12
	hardDepthCap = 14

	guardRatioA = 0.3
	guardRatioB = 0.1
)

// node is one entry of the BVH's node array. Tree stores nodes as a flat
// slice addressed by index rather than as a pointer tree, avoiding the
// pointer-chasing a {Leaf, Internal} sum type would otherwise require in Go
// and sidestepping any possibility of a reference cycle (there are none in
// this design, but a flat array makes that true by construction).
type node struct {
	box types.AABB

	// isLeaf selects which of the two field groups below is active.
	isLeaf bool

	// Leaf fields: [start, start+count) indexes into Tree.leafIndices.
	start, count int

	// Internal fields: indices into Tree.nodes.
	left, right int32
}
