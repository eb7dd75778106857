// Package invariants holds assertions for conditions that must never occur
// if the geometric core is correct: not user-recoverable errors, logic-bug
// backstops. Check panics directly the way lvlath/matrix.AdjacencyMatrix
// guards its own invariants; this package centralizes the panic and its
// message formatting.
package invariants

import "fmt"

// Check panics with a formatted message if cond is false.
func Check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
