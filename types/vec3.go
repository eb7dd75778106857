package types

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec3 is an immutable triple of coordinates in 3-D Euclidean space.
//
// Point and Vector are both aliases of Vec3: a Point names a position, a
// Vector names a displacement, but they share one representation and one
// set of arithmetic operations.
type Vec3 struct {
	X, Y, Z float64
}

// Point names a Vec3 used as a position.
type Point = Vec3

// Vector names a Vec3 used as a displacement.
type Vector = Vec3

// Add returns v+other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v-other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Dot returns the dot product v·other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-hand-rule cross product v×other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// MixedProduct returns the scalar triple product v·(b×c), zero iff v, b, c
// (as vectors from a common origin) are coplanar. Used for the
// segment-coplanarity test.
func (v Vec3) MixedProduct(b, c Vec3) float64 {
	return v.Dot(b.Cross(c))
}

// LenSq returns the squared length of v. Prefer this to Len whenever a plain
// comparison suffices, to avoid a square root.
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

// Len returns the length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// IsZero reports whether v is the zero vector under the tolerance eps,
// tested component-wise via SignOf.
func (v Vec3) IsZero(eps float64) bool {
	return SignOf(v.X, eps) == Zero && SignOf(v.Y, eps) == Zero && SignOf(v.Z, eps) == Zero
}

// Equal reports whether v and other are equal component-wise under eps.
func (v Vec3) Equal(other Vec3, eps float64) bool {
	return v.Sub(other).IsZero(eps)
}

// Min returns the component-wise minimum of v and other.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{minOf(v.X, other.X), minOf(v.Y, other.Y), minOf(v.Z, other.Z)}
}

// Max returns the component-wise maximum of v and other.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{maxOf(v.X, other.X), maxOf(v.Y, other.Y), maxOf(v.Z, other.Z)}
}

// Component returns the coordinate named by axis.
func (v Vec3) Component(axis Axis) float64 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// minOf and maxOf back the component-wise reductions Vec3.Min/Max (and
// through them AABB construction and union) with one generic implementation
// instead of duplicating float64-only arithmetic.
func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
