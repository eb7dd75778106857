// Package batch drives the N per-triangle queries against either the naive
// or the BVH-accelerated engine and collects the ascending-order result set
// described by the specification.
package batch

import "context"

// Engine answers "does triangle i intersect some other triangle in the
// batch?" for a fixed set of N triangles. *bvh.Tree and *Naive both satisfy
// this interface.
type Engine interface {
	IsTriangleNotAlone(i int) bool
	NumTriangles() int
}

// Run queries engine for every triangle index in ascending order and
// returns the indices that intersect at least one other triangle, already
// in ascending order (the natural iteration order suffices; no sort is
// needed).
//
// ctx is checked between queries so a pathologically large batch can be
// cancelled; there is no parallel fan-out here, queries are sequential by
// design, since the engines' visited memo is written under the assumption
// of single-goroutine access.
func Run(ctx context.Context, engine Engine) ([]int, error) {
	n := engine.NumTriangles()
	result := make([]int, 0, n)

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if engine.IsTriangleNotAlone(i) {
			result = append(result, i)
		}
	}

	return result, nil
}
