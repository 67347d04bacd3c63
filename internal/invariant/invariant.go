// Package invariant panics on defects that indicate a broken internal
// contract rather than a recoverable error — an unresolved TypeId, a node
// missing from a graph's Nodes map. These are bugs, not input errors, so
// they panic instead of returning an error a caller might swallow.
package invariant

import "fmt"

// Check panics with msg if cond is false.
func Check(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(msg, args...))
	}
}
