package bvh

import "github.com/iceisfun/tri3d/types"

// IsTriangleNotAlone reports whether triangle i intersects at least one
// other triangle in the tree.
//
// If the visited flag at i is already set, the answer is known to be true
// without a traversal. Otherwise the query descends from the root: a node
// whose box does not touch triangle i's box is pruned; a leaf scans its
// indices (skipping any whose box doesn't touch i's, and i itself) looking
// for a confirmed Triangle.Intersects hit, marking both i and the hit index
// visited; an internal node recurses left, short-circuiting to true,
// before trying right.
//
// Correctness invariant: for any pair (i,j) that actually intersects, at
// least one of the two traversals starting at i or j will visit the other,
// so the final answer set does not depend on the order callers query in.
func (t *Tree) IsTriangleNotAlone(i int) bool {
	if t.visited[i] {
		return true
	}
	if t.root < 0 {
		return false
	}
	return t.traverse(t.root, i)
}

func (t *Tree) traverse(nodeIdx int32, i int) bool {
	n := &t.nodes[nodeIdx]
	if !n.box.Intersects(t.triangles[i].Box, t.eps) {
		return false
	}

	if n.isLeaf {
		for _, j := range t.leafIndices[n.start : n.start+n.count] {
			if j == i {
				continue
			}
			if !t.triangles[j].Box.Intersects(t.triangles[i].Box, t.eps) {
				continue
			}
			if t.triangles[j].Intersects(t.triangles[i], t.eps) {
				t.visited[i] = true
				t.visited[j] = true
				return true
			}
		}
		return false
	}

	if t.traverse(n.left, i) {
		return true
	}
	return t.traverse(n.right, i)
}

// NumTriangles reports how many triangles this tree was built over.
func (t *Tree) NumTriangles() int {
	return len(t.triangles)
}

// BoundingBox returns the box spanning every triangle in the tree (the root
// node's box), or an undefined AABB if the tree was built over zero
// triangles.
func (t *Tree) BoundingBox() types.AABB {
	if t.root < 0 {
		return types.AABB{}
	}
	return t.nodes[t.root].box
}
