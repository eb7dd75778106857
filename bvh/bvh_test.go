package bvh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/iceisfun/tri3d/types"
)

// TreeSuite exercises BVH construction and query behavior the way the
// pack's flow-algorithm test suites are structured: one suite, one
// scenario per method.
type TreeSuite struct {
	suite.Suite
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeSuite))
}

func (s *TreeSuite) triangle(ax, ay float64) types.Triangle {
	return types.NewTriangle(
		types.Point{X: ax, Y: ay},
		types.Point{X: ax + 1, Y: ay},
		types.Point{X: ax, Y: ay + 1},
		types.EpsDouble,
	)
}

func (s *TreeSuite) TestEmptyBatch() {
	tree := Build(nil, types.EpsDouble)
	s.Equal(0, tree.NumTriangles())
}

func (s *TreeSuite) TestSingletonNeverIntersectsItself() {
	tri := s.triangle(0, 0)
	tree := Build([]types.Triangle{tri}, types.EpsDouble)
	s.False(tree.IsTriangleNotAlone(0), "a singleton batch excludes self-pairs")
}

func (s *TreeSuite) TestTwoOverlappingTrianglesFindEachOther() {
	tris := []types.Triangle{s.triangle(0, 0), s.triangle(0.5, 0.5)}
	tree := Build(tris, types.EpsDouble)
	s.True(tree.IsTriangleNotAlone(0))
	s.True(tree.IsTriangleNotAlone(1))
}

func (s *TreeSuite) TestIsolatedTriangleAmongIntersectingPair() {
	tris := []types.Triangle{
		s.triangle(0, 0),
		s.triangle(0.5, 0.5),
		s.triangle(100, 100),
	}
	tree := Build(tris, types.EpsDouble)
	s.True(tree.IsTriangleNotAlone(0))
	s.True(tree.IsTriangleNotAlone(1))
	s.False(tree.IsTriangleNotAlone(2))
}

func (s *TreeSuite) TestAllDisjoint() {
	tris := []types.Triangle{s.triangle(0, 0), s.triangle(20, 0), s.triangle(0, 20)}
	tree := Build(tris, types.EpsDouble)
	for i := range tris {
		s.False(tree.IsTriangleNotAlone(i))
	}
}

func (s *TreeSuite) TestLargeRandomBatchNeverExceedsHardDepthCap() {
	rng := rand.New(rand.NewSource(1))
	tris := make([]types.Triangle, 0, 500)
	for i := 0; i < 500; i++ {
		cx := rng.Float64() * 100
		cy := rng.Float64() * 100
		cz := rng.Float64() * 100
		tris = append(tris, types.NewTriangle(
			types.Point{X: cx, Y: cy, Z: cz},
			types.Point{X: cx + 1, Y: cy, Z: cz},
			types.Point{X: cx, Y: cy + 1, Z: cz},
			types.EpsDouble,
		))
	}

	tree := Build(tris, types.EpsDouble)
	stats := tree.Stats()
	s.LessOrEqual(stats.MaxDepth, hardDepthCap)
	s.Equal(500, stats.NumTriangles)

	for i := range tris {
		// Must not panic and must answer without relying on call order.
		_ = tree.IsTriangleNotAlone(i)
	}
}

func (s *TreeSuite) TestEveryLeafIndexAppearsExactlyOnce() {
	rng := rand.New(rand.NewSource(2))
	tris := make([]types.Triangle, 0, 200)
	for i := 0; i < 200; i++ {
		cx := rng.Float64() * 50
		cy := rng.Float64() * 50
		tris = append(tris, types.NewTriangle(
			types.Point{X: cx, Y: cy},
			types.Point{X: cx + 1, Y: cy},
			types.Point{X: cx, Y: cy + 1},
			types.EpsDouble,
		))
	}

	tree := Build(tris, types.EpsDouble)
	seen := make(map[int]int, len(tris))
	for _, n := range tree.nodes {
		if !n.isLeaf {
			continue
		}
		for _, idx := range tree.leafIndices[n.start : n.start+n.count] {
			seen[idx]++
		}
	}
	s.Len(seen, len(tris))
	for idx, count := range seen {
		s.Equal(1, count, "index %d must appear in exactly one leaf", idx)
	}
}
