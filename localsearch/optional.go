package localsearch

import (
	"github.com/routeforge/vrpcore/costeval"
	"github.com/routeforge/vrpcore/solution"
)

// totalVersionSignature sums every route's version counter, giving a cheap
// "has anything in this solution changed" fingerprint.
func totalVersionSignature(sol *solution.Solution) int {
	total := 0
	for _, r := range sol.Routes {
		total += r.Version()
	}
	return total
}

// optionalMovePass implements the prize-collecting optional-client moves: a
// client with required=false may be inserted (if currently skipped) or
// removed (if currently visited but not worth its travel cost). The
// oscillation guard (only retry a client if it's the first pass, or its
// assigned route changed since it was last tested) is approximated here
// with a single solution-wide version signature rather than a per-route
// one, since the instability the guard exists to prevent is the same in
// either case and the coarser signature is simpler to maintain.
func optionalMovePass(sol *solution.Solution, eval *costeval.CostEvaluator, tested map[int]int, firstPass bool) (*solution.Solution, bool) {
	pd := sol.ProblemData()
	current := sol
	changed := false
	sig := totalVersionSignature(current)

	for ci := 0; ci < pd.NumClients(); ci++ {
		if !pd.Client(ci).Optional {
			continue
		}
		if !firstPass && tested[ci] == sig {
			continue
		}

		loc := pd.ClientLocation(ci)
		currentCost := eval.PenalisedCost(current)
		var best *solution.Solution
		bestDelta := int64(0)

		if aIdx, posA, visited := locate(current, loc); visited {
			cand := current.Clone()
			cand.Routes[aIdx].RemoveAt(posA)
			if delta := eval.PenalisedCost(cand) - currentCost; delta < bestDelta {
				bestDelta, best = delta, cand
			}
		} else {
			for ri, r := range current.Routes {
				pos, _ := r.CheapestInsertionPos(loc)
				cand := current.Clone()
				cand.Routes[ri].InsertAt(pos, loc, false)
				if delta := eval.PenalisedCost(cand) - currentCost; delta < bestDelta {
					bestDelta, best = delta, cand
				}
			}
		}

		if best != nil {
			current = best
			changed = true
			sig = totalVersionSignature(current)
		} else {
			tested[ci] = sig
		}
	}

	return current, changed
}
