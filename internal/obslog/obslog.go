// Package obslog is the structured-logging collaborator used by both CLI
// entry points. Logging sits outside the geometric core entirely (the
// specification treats it as an external collaborator); this package
// exists so the two binaries share one construction path for their
// *zap.Logger instead of each hand-rolling one.
package obslog

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing leveled, JSON-encoded lines to stderr, so
// stdout remains reserved for the index-list output the specification
// requires. Both CLIs take no flags, so the level is fixed at production
// (Info and above).
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// LogBuild records a completed BVH/engine build.
func LogBuild(logger *zap.Logger, engine string, numTriangles int, elapsed time.Duration) {
	logger.Info("build complete",
		zap.String("engine", engine),
		zap.Int("num_triangles", numTriangles),
		zap.Duration("elapsed", elapsed),
	)
}

// LogQuery records a completed batch query pass.
func LogQuery(logger *zap.Logger, engine string, numIntersecting int, elapsed time.Duration) {
	logger.Info("query complete",
		zap.String("engine", engine),
		zap.Int("num_intersecting", numIntersecting),
		zap.Duration("elapsed", elapsed),
	)
}
