package ioformat

import (
	"bufio"
	"fmt"
	"io"
)

// WriteIndices writes each index on its own line, terminated by a newline,
// in the order given (callers pass an already-ascending slice).
func WriteIndices(w io.Writer, indices []int) error {
	bw := bufio.NewWriter(w)
	for _, idx := range indices {
		if _, err := fmt.Fprintf(bw, "%d\n", idx); err != nil {
			return err
		}
	}
	return bw.Flush()
}
