package stopcrit

import "time"

// Criterion decides whether the ILS driver should stop before starting its
// next outer iteration. iter is the number of outer iterations completed so
// far (0 on the first poll), elapsed is wall-clock time since the solve
// started, and
// bestCost is the incumbent's cost (may be model.InfeasibleCostFloor if no
// feasible solution has been found yet).
type Criterion interface {
	ShouldStop(iter int, elapsed time.Duration, bestCost int64) bool
}

// CriterionFunc adapts a plain function to the Criterion interface.
type CriterionFunc func(iter int, elapsed time.Duration, bestCost int64) bool

// ShouldStop calls f.
func (f CriterionFunc) ShouldStop(iter int, elapsed time.Duration, bestCost int64) bool {
	return f(iter, elapsed, bestCost)
}

// MaxIterations stops once iter reaches n.
func MaxIterations(n int) Criterion {
	return CriterionFunc(func(iter int, _ time.Duration, _ int64) bool {
		return iter >= n
	})
}

// MaxRuntime stops once elapsed reaches d.
func MaxRuntime(d time.Duration) Criterion {
	return CriterionFunc(func(_ int, elapsed time.Duration, _ int64) bool {
		return elapsed >= d
	})
}

// TargetCost stops once bestCost falls to or below target.
func TargetCost(target int64) Criterion {
	return CriterionFunc(func(_ int, _ time.Duration, bestCost int64) bool {
		return bestCost <= target
	})
}

// NoImprovement stops once k consecutive iterations have passed without
// bestCost strictly decreasing from the best value seen so far. The clock
// resets whenever a new (lower) bestCost is observed.
func NoImprovement(k int) Criterion {
	lastBest := int64(0)
	lastImprovedAt := 0
	seen := false
	return CriterionFunc(func(iter int, _ time.Duration, bestCost int64) bool {
		if !seen || bestCost < lastBest {
			lastBest = bestCost
			lastImprovedAt = iter
			seen = true
			return false
		}
		return iter-lastImprovedAt >= k
	})
}

// Any stops as soon as any one of criteria fires. Every criterion is
// polled each call (not short-circuited) so stateful criteria like
// NoImprovement stay consistent regardless of which one trips first.
func Any(criteria ...Criterion) Criterion {
	return CriterionFunc(func(iter int, elapsed time.Duration, bestCost int64) bool {
		stop := false
		for _, c := range criteria {
			if c.ShouldStop(iter, elapsed, bestCost) {
				stop = true
			}
		}
		return stop
	})
}

// All stops only once every one of criteria has fired. Every criterion is
// polled each call for the same reason as Any.
func All(criteria ...Criterion) Criterion {
	return CriterionFunc(func(iter int, elapsed time.Duration, bestCost int64) bool {
		if len(criteria) == 0 {
			return false
		}
		stop := true
		for _, c := range criteria {
			if !c.ShouldStop(iter, elapsed, bestCost) {
				stop = false
			}
		}
		return stop
	})
}
