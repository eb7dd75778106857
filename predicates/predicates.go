// Package predicates exposes the geometric tests of this module as free
// functions over raw types, mirroring the calling convention of the
// predicates package this module is descended from (one function per test,
// taking the tolerance explicitly as the final argument) rather than
// forcing every caller to go through method calls on types.Triangle et al.
//
// Every function here is a thin, allocation-free wrapper over the
// corresponding types method; the algorithms themselves live on the types
// so that Triangle/Segment/Plane remain usable without importing this
// package at all.
package predicates

import "github.com/iceisfun/tri3d/types"

// SegmentsIntersect reports whether segments (a1,a2) and (b1,b2) intersect.
func SegmentsIntersect(a1, a2, b1, b2 types.Point, eps float64) bool {
	return types.NewSegment(a1, a2).Intersects(types.NewSegment(b1, b2), eps)
}

// PointOnSegment reports whether p lies on the closed segment (a,b).
func PointOnSegment(p, a, b types.Point, eps float64) bool {
	return types.NewSegment(a, b).ContainsPoint(p, eps)
}

// PointInTriangle reports whether p lies within the closed triangle (a,b,c),
// assuming p is coplanar with it (or the triangle is degenerate).
func PointInTriangle(p, a, b, c types.Point, eps float64) bool {
	return types.NewTriangle(a, b, c, eps).IsPointInside(p, eps)
}

// TrianglesIntersect reports whether triangles (a1,b1,c1) and (a2,b2,c2)
// intersect.
func TrianglesIntersect(a1, b1, c1, a2, b2, c2 types.Point, eps float64) bool {
	t1 := types.NewTriangle(a1, b1, c1, eps)
	t2 := types.NewTriangle(a2, b2, c2, eps)
	return t1.Intersects(t2, eps)
}

// AABBsIntersect reports whether the two axis-aligned boxes overlap.
func AABBsIntersect(a, b types.AABB, eps float64) bool {
	return a.Intersects(b, eps)
}
