// Command naive is the O(N^2) reference implementation: it reads a batch of
// triangles from stdin and writes the ascending indices of triangles that
// intersect at least one other triangle in the batch to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/iceisfun/tri3d/batch"
	"github.com/iceisfun/tri3d/internal/obslog"
	"github.com/iceisfun/tri3d/ioformat"
	"github.com/iceisfun/tri3d/types"
)

func main() {
	app := &cli.App{
		Name:   "naive",
		Usage:  "find intersecting triangles in a batch (O(N^2) reference path)",
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := obslog.New()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	triangles, err := ioformat.ReadTriangles(os.Stdin, types.EpsDouble)
	if err != nil {
		return err
	}

	start := time.Now()
	engine := batch.NewNaive(triangles, types.EpsDouble)
	obslog.LogBuild(logger, "naive", len(triangles), time.Since(start))

	start = time.Now()
	result, err := batch.Run(context.Background(), engine)
	if err != nil {
		return err
	}
	obslog.LogQuery(logger, "naive", len(result), time.Since(start))

	return ioformat.WriteIndices(os.Stdout, result)
}
