// Package ioformat implements the external I/O contract: decoding the
// whitespace-separated "N then 9*N coordinates" batch format from a reader,
// and encoding the ascending-index result set to a writer. Malformed input
// is reported here with a sentinel error, which the CLIs turn into a nonzero
// process exit; the geometry core never sees invalid data.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/iceisfun/tri3d/types"
)

// ReadTriangles decodes a batch from r: a non-negative integer N followed
// by N groups of 9 whitespace-separated floating-point coordinates (three
// points a, b, c per triangle). eps is the tolerance baked into each
// constructed Triangle.
func ReadTriangles(r io.Reader, eps float64) ([]types.Triangle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	nextToken := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	countTok, ok := nextToken()
	if !ok {
		return nil, fmt.Errorf("%w: expected triangle count", ErrMalformedCount)
	}
	n, err := strconv.Atoi(countTok)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedCount, countTok)
	}

	nextCoord := func() (float64, error) {
		tok, ok := nextToken()
		if !ok {
			return 0, fmt.Errorf("%w: expected %d triangles, input ended early", ErrTruncatedTriangleList, n)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedCoordinate, tok)
		}
		return v, nil
	}

	nextPoint := func() (types.Point, error) {
		var p types.Point
		var err error
		if p.X, err = nextCoord(); err != nil {
			return p, err
		}
		if p.Y, err = nextCoord(); err != nil {
			return p, err
		}
		if p.Z, err = nextCoord(); err != nil {
			return p, err
		}
		return p, nil
	}

	triangles := make([]types.Triangle, 0, n)
	for i := 0; i < n; i++ {
		a, err := nextPoint()
		if err != nil {
			return nil, err
		}
		b, err := nextPoint()
		if err != nil {
			return nil, err
		}
		c, err := nextPoint()
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, types.NewTriangle(a, b, c, eps))
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return triangles, nil
}
