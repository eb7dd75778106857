package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAABBUndefinedNeverIntersects(t *testing.T) {
	var empty AABB
	box := NewAABBFromPoints(Point{}, Point{1, 1, 1})
	require.False(t, empty.Intersects(box, EpsDouble))
	require.False(t, empty.Defined())
}

func TestAABBIntersectionRoundTrip(t *testing.T) {
	a := NewAABBFromPoints(Point{0, 0, 0}, Point{2, 2, 2})
	b := NewAABBFromPoints(Point{1, 1, 1}, Point{3, 3, 3})

	inter, ok := a.Intersection(b)
	require.True(t, ok)
	require.Equal(t, a.Intersects(b, EpsDouble), ok)
	require.Equal(t, Point{1, 1, 1}, inter.Min)
	require.Equal(t, Point{2, 2, 2}, inter.Max)

	c := NewAABBFromPoints(Point{10, 10, 10}, Point{11, 11, 11})
	_, ok = a.Intersection(c)
	require.False(t, ok)
	require.Equal(t, a.Intersects(c, EpsDouble), ok)
}

func TestAABBUniteContainsBoth(t *testing.T) {
	a := NewAABBFromPoints(Point{0, 0, 0}, Point{1, 1, 1})
	b := NewAABBFromPoints(Point{-1, 2, 0.5}, Point{0.5, 3, 2})
	u := a.Unite(b)

	require.True(t, u.Min.X <= a.Min.X && u.Min.Y <= a.Min.Y && u.Min.Z <= a.Min.Z)
	require.True(t, u.Max.X >= a.Max.X && u.Max.Y >= a.Max.Y && u.Max.Z >= a.Max.Z)
	require.True(t, u.Min.X <= b.Min.X && u.Min.Y <= b.Min.Y && u.Min.Z <= b.Min.Z)
	require.True(t, u.Max.X >= b.Max.X && u.Max.Y >= b.Max.Y && u.Max.Z >= b.Max.Z)
}

func TestAABBLongestAxisTieBreak(t *testing.T) {
	cube := NewAABBFromPoints(Point{0, 0, 0}, Point{1, 1, 1})
	require.Equal(t, AxisX, cube.LongestAxis(), "ties must break X > Y > Z")

	yz := NewAABBFromPoints(Point{0, 0, 0}, Point{1, 2, 2})
	require.Equal(t, AxisY, yz.LongestAxis())

	z := NewAABBFromPoints(Point{0, 0, 0}, Point{1, 1, 3})
	require.Equal(t, AxisZ, z.LongestAxis())
}

func TestAABBCost(t *testing.T) {
	box := NewAABBFromPoints(Point{0, 0, 0}, Point{1, 2, 3})
	// 2*(1*2 + 1*3 + 2*3) = 2*(2+3+6) = 22
	require.InDelta(t, 22, box.Cost(), 1e-9)

	var undefined AABB
	require.Equal(t, 0.0, undefined.Cost())
}

func TestAABBFromVertices(t *testing.T) {
	box := NewAABBFromVertices(Point{1, 0, 0}, Point{0, 1, 0}, Point{0, 0, 1})
	require.Equal(t, Point{0, 0, 0}, box.Min)
	require.Equal(t, Point{1, 1, 1}, box.Max)
	require.True(t, box.Defined())
}
