package core

import "fmt"

// invariant panics when cond does not hold. Reaching a false invariant means
// the simulation state is already corrupt, so there is nothing to recover.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("blockfall: invariant violated: "+format, args...))
	}
}
