package batch

import "github.com/iceisfun/tri3d/types"

// Naive is the O(N^2) reference engine: IsTriangleNotAlone(i) linearly scans
// every other triangle and returns true on the first intersecting pair.
//
// It marks both sides of a confirmed pair before continuing, the same way
// the source's bruteforce solution does: when the outer loop later reaches
// the counterpart index, it short-circuits on the visited flag instead of
// re-scanning. This is equivalent to a plain "for each i, any j != i such
// that intersects" scan by the symmetry of Triangle.Intersects, and
// measurably halves the predicate-call count on batches with many ties.
type Naive struct {
	triangles []types.Triangle
	eps       float64
	visited   []bool
}

// NewNaive builds a reference engine over triangles.
func NewNaive(triangles []types.Triangle, eps float64) *Naive {
	return &Naive{
		triangles: triangles,
		eps:       eps,
		visited:   make([]bool, len(triangles)),
	}
}

// IsTriangleNotAlone reports whether triangle i intersects at least one
// other triangle in the batch.
func (n *Naive) IsTriangleNotAlone(i int) bool {
	if n.visited[i] {
		return true
	}
	for j := range n.triangles {
		if j == i {
			continue
		}
		if n.triangles[i].Intersects(n.triangles[j], n.eps) {
			n.visited[i] = true
			n.visited[j] = true
			return true
		}
	}
	return false
}

// NumTriangles reports how many triangles this engine was built over.
func (n *Naive) NumTriangles() int {
	return len(n.triangles)
}
