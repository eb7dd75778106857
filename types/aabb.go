package types

import "math"

// AABB is an axis-aligned bounding box in 3-D space.
//
// A zero-value AABB is undefined/empty: Intersects and Intersection report
// no overlap for it, Unite returns the other box unchanged (so boxes can be
// accumulated starting from the zero value), and Cost is 0. Unlike the
// original 2-D mesh AABB, emptiness is tracked
// through an explicit field rather than inferred from Min>Max, since an
// uninitialized AABB (Min=Max={0,0,0}) would otherwise look like a valid,
// zero-sized box at the origin.
type AABB struct {
	Min, Max Point
	defined  bool
}

// Defined reports whether the box has been assigned bounds.
func (b AABB) Defined() bool {
	return b.defined
}

// NewAABBFromPoints builds the tight box enclosing the given corner pair.
func NewAABBFromPoints(a, b Point) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b), defined: true}
}

// NewAABBFromVertices folds a set of vertices into their enclosing box via
// component-wise min/max accumulation.
func NewAABBFromVertices(points ...Point) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0], defined: true}
	for _, p := range points[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// Intersects reports whether b and other overlap, using a standard slab
// test: they are disjoint iff some axis has b.Max.k < other.Min.k or
// b.Min.k > other.Max.k. Boundary contact counts as intersection.
func (b AABB) Intersects(other AABB, eps float64) bool {
	if !b.defined || !other.defined {
		return false
	}
	for _, axis := range [...]Axis{AxisX, AxisY, AxisZ} {
		if SignOf(b.Max.Component(axis)-other.Min.Component(axis), eps) == Neg {
			return false
		}
		if SignOf(b.Min.Component(axis)-other.Max.Component(axis), eps) == Pos {
			return false
		}
	}
	return true
}

// Unite returns the smallest box enclosing both b and other.
func (b AABB) Unite(other AABB) AABB {
	if !b.defined {
		return other
	}
	if !other.defined {
		return b
	}
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max), defined: true}
}

// Intersection returns the overlap box of b and other, and whether it is
// non-empty. When disjoint, the returned box is undefined.
func (b AABB) Intersection(other AABB) (AABB, bool) {
	if !b.defined || !other.defined {
		return AABB{}, false
	}
	min := b.Min.Max(other.Min)
	max := b.Max.Min(other.Max)
	if max.X < min.X || max.Y < min.Y || max.Z < min.Z {
		return AABB{}, false
	}
	return AABB{Min: min, Max: max, defined: true}, true
}

// Center returns the midpoint of the box.
func (b AABB) Center() Point {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extent returns the length of the box along axis.
func (b AABB) Extent(axis Axis) float64 {
	return b.Max.Component(axis) - b.Min.Component(axis)
}

// LongestAxis returns the axis with the largest extent. Ties are broken
// deterministically X > Y > Z.
func (b AABB) LongestAxis() Axis {
	ex, ey, ez := b.Extent(AxisX), b.Extent(AxisY), b.Extent(AxisZ)
	if ex >= ey && ex >= ez {
		return AxisX
	}
	if ey >= ez {
		return AxisY
	}
	return AxisZ
}

// Cost is the surface-area-heuristic cost metric used to drive BVH split
// selection: 2*(lx*ly + lx*lz + ly*lz). Named "volume" in the source this
// module is derived from, but it is a surface-area-like cost, not a volume;
// behavior is unchanged from the source, only the name is corrected.
func (b AABB) Cost() float64 {
	if !b.defined {
		return 0
	}
	lx, ly, lz := b.Extent(AxisX), b.Extent(AxisY), b.Extent(AxisZ)
	return 2 * (lx*ly + lx*lz + ly*lz)
}

// empty reports whether the box has zero extent, within eps, along every
// axis, i.e. it has collapsed to a single point.
func (b AABB) empty(eps float64) bool {
	return math.Abs(b.Extent(AxisX)) <= eps && math.Abs(b.Extent(AxisY)) <= eps && math.Abs(b.Extent(AxisZ)) <= eps
}
