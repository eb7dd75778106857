package formatting

import (
	"fmt"
	"io"

	"github.com/iceisfun/tri3d/types"
)

// TriangleString renders a triangle's three vertices.
func TriangleString(t types.Triangle) string {
	return fmt.Sprintf("Triangle{%s, %s, %s}", PointString(t.A), PointString(t.B), PointString(t.C))
}

// WriteTriangle writes a triangle to a writer.
func WriteTriangle(w io.Writer, t types.Triangle) error {
	_, err := fmt.Fprintf(w, "Triangle{A: %v, B: %v, C: %v, Degenerate: %v}",
		PointString(t.A), PointString(t.B), PointString(t.C), t.Degenerate)
	return err
}
