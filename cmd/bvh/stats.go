package main

import (
	"go.uber.org/zap"

	"github.com/iceisfun/tri3d/bvh"
)

// zapStatsFields renders bvh.Stats as zap fields for the info-level build
// log line.
func zapStatsFields(s bvh.Stats) []zap.Field {
	return []zap.Field{
		zap.Int("num_triangles", s.NumTriangles),
		zap.Int("num_nodes", s.NumNodes),
		zap.Int("num_leaves", s.NumLeaves),
		zap.Int("max_depth", s.MaxDepth),
	}
}
