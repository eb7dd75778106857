package predicates_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iceisfun/tri3d/predicates"
	"github.com/iceisfun/tri3d/types"
)

func TestSegmentsIntersect(t *testing.T) {
	require.True(t, predicates.SegmentsIntersect(
		types.Point{X: -1}, types.Point{X: 1},
		types.Point{Y: -1}, types.Point{Y: 1},
		types.EpsDouble,
	))
	require.False(t, predicates.SegmentsIntersect(
		types.Point{X: -1}, types.Point{X: 1},
		types.Point{X: -1, Y: 1}, types.Point{X: 1, Y: 1},
		types.EpsDouble,
	))
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := types.Point{}, types.Point{X: 2}, types.Point{Y: 2}
	require.True(t, predicates.PointInTriangle(types.Point{X: 0.5, Y: 0.5}, a, b, c, types.EpsDouble))
	require.False(t, predicates.PointInTriangle(types.Point{X: 5, Y: 5}, a, b, c, types.EpsDouble))
}

func TestTrianglesIntersect(t *testing.T) {
	require.True(t, predicates.TrianglesIntersect(
		types.Point{}, types.Point{X: 1}, types.Point{Y: 1},
		types.Point{X: 0.5, Y: 0.5}, types.Point{X: 1.5, Y: 0.5}, types.Point{X: 0.5, Y: 1.5},
		types.EpsDouble,
	))
}

func TestAABBsIntersect(t *testing.T) {
	a := types.NewAABBFromPoints(types.Point{}, types.Point{X: 1, Y: 1, Z: 1})
	b := types.NewAABBFromPoints(types.Point{X: 2, Y: 2, Z: 2}, types.Point{X: 3, Y: 3, Z: 3})
	require.False(t, predicates.AABBsIntersect(a, b, types.EpsDouble))
}
