package ils

import (
	"time"

	"github.com/routeforge/vrpcore/solution"
)

// Result is the outcome of a Solve call: the best Solution found, the
// per-iteration statistics trail (empty unless SolveOptions.CollectStats),
// and the search's iteration count and wall-clock runtime.
//
// Best may be infeasible: running out of iterations without finding a
// feasible solution is a runtime-constraint outcome, not an error, so
// callers must check Best.IsFeasible() rather than assume a non-error
// Result always holds a feasible Solution.
type Result struct {
	Best          *solution.Solution
	Stats         []StatRecord
	NumIterations int
	Runtime       time.Duration
}
