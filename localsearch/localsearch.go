package localsearch

import (
	"context"

	"github.com/routeforge/vrpcore/costeval"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/neighbourhood"
	"github.com/routeforge/vrpcore/solution"
)

// testKey identifies one (client, neighbour) candidate pair for the
// last-tested-timestamp skip rule.
type testKey struct {
	client, neighbour int
}

// moveCandidate is one operator application worth trying: delta is its
// PenalisedCost change against the solution it was generated from, and
// apply materialises the actual resulting Solution. Keeping delta and
// materialisation separate lets a cheap (segment-merge) pricing decide
// whether a candidate is worth keeping before ever cloning a route.
type moveCandidate struct {
	delta int64
	apply func() *solution.Solution
}

// candidateMoves enumerates every operator application worth trying for the
// ordered pair (u at routeA/posA, v at routeB/posB).
func candidateMoves(sol *solution.Solution, eval *costeval.CostEvaluator, currentCost int64, aIdx, posA, bIdx, posB int) []moveCandidate {
	var out []moveCandidate
	add := func(cand *solution.Solution, ok bool) {
		if !ok {
			return
		}
		out = append(out, moveCandidate{
			delta: eval.PenalisedCost(cand) - currentCost,
			apply: func() *solution.Solution { return cand },
		})
	}

	for _, pq := range ExchangePairs {
		p, q := pq[0], pq[1]
		add(tryExchange(sol, aIdx, posA, p, bIdx, posB, q))
		add(tryExchange(sol, bIdx, posB, p, aIdx, posA, q))
	}

	if aIdx == bIdx {
		i, j := posA, posB
		if i > j {
			i, j = j, i
		}
		if mc, ok := twoOptCandidate(sol, eval, currentCost, aIdx, i, j); ok {
			out = append(out, mc)
		}
	} else {
		add(trySwapStar(sol, aIdx, posA, bIdx, posB))
		add(trySwapTails(sol, aIdx, posA, bIdx, posB))
		add(trySwapTails(sol, aIdx, posA+1, bIdx, posB+1))
		add(tryRelocateStar(sol, aIdx, bIdx))
		add(tryRelocateStar(sol, bIdx, aIdx))
	}

	return out
}

// twoOptCandidate prices a single 2-opt reversal of Stops[i:j+1] on
// routeIdx. When the route carries no in-route reload depot, it prices the
// reversal by segment merges (twoOptSegments.evaluate) instead of cloning
// the solution and rebuilding the route: the unchanged prefix and suffix
// are reused as-is and only the reversed middle and the three boundary
// edges are recomputed, against just that one route's own cost contribution
// rather than the whole solution's PenalisedCost. Falls back to the eager
// clone-and-reprice path for a route with a reload depot, since the
// segment builder here assumes a single trip.
func twoOptCandidate(sol *solution.Solution, eval *costeval.CostEvaluator, currentCost int64, routeIdx, i, j int) (moveCandidate, bool) {
	r := sol.Routes[routeIdx]
	n := r.Len()
	if i < 0 || j >= n || i >= j {
		return moveCandidate{}, false
	}
	vt := r.VehicleType()

	ts, ok := buildTwoOptSegments(sol.ProblemData(), vt, r.Stops, r.IsDepot)
	if !ok {
		cand, applied := tryTwoOpt(sol, routeIdx, i, j)
		if !applied {
			return moveCandidate{}, false
		}
		return moveCandidate{
			delta: eval.PenalisedCost(cand) - currentCost,
			apply: func() *solution.Solution { return cand },
		}, true
	}

	dist, dur, tw, excessLoad, forbidden := ts.evaluate(i, j)
	if forbidden {
		// A reversal that traverses a forbidden edge is never worth
		// materialising: the resulting route would be infeasible outright.
		return moveCandidate{}, false
	}
	var overtime int64
	if vt.MaxDuration < model.Infinity && dur > vt.MaxDuration {
		overtime = dur - vt.MaxDuration
	}
	var excessDistance int64
	if vt.MaxDistance < model.Infinity && dist > vt.MaxDistance {
		excessDistance = dist - vt.MaxDistance
	}

	oldRouteCost := eval.RouteCost(vt, r.Distance(), r.Duration(), r.TimeWarp(), r.ExcessDistance(), r.Overtime(), r.FixedCost(), r.ReloadCost(), r.ExcessLoad())
	newRouteCost := eval.RouteCost(vt, dist, dur, tw, excessDistance, overtime, r.FixedCost(), r.ReloadCost(), excessLoad)

	return moveCandidate{
		delta: newRouteCost - oldRouteCost,
		apply: func() *solution.Solution {
			cand, _ := tryTwoOpt(sol, routeIdx, i, j)
			return cand
		},
	}, true
}

// sweep runs one pass over every (required or currently-visited) client and
// its neighbour candidates, applying moves per params.BestImproving. tested
// holds the combined route-version signature of the last time a pair was
// evaluated with no improvement, so a pair whose routes haven't changed
// since its last (non-improving) test is skipped instead of re-evaluated.
// Returns the (possibly unchanged) resulting Solution and whether any move
// was applied.
func sweep(sol *solution.Solution, nb *neighbourhood.Neighbours, eval *costeval.CostEvaluator, params Params, tested map[testKey]int) (*solution.Solution, bool) {
	current := sol
	changedAny := false
	pd := current.ProblemData()

	for ci := 0; ci < pd.NumClients(); ci++ {
		aIdx, posA, found := locate(current, pd.ClientLocation(ci))
		if !found {
			continue
		}

		currentCost := eval.PenalisedCost(current)
		var best *solution.Solution
		bestDelta := int64(0)
		appliedInClient := false

		for _, vLoc := range nb.Of(ci) {
			bIdx, posB, foundV := locate(current, vLoc)
			if !foundV {
				continue
			}
			vi := int(vLoc) - pd.NumDepots()
			key := testKey{ci, vi}
			sig := current.Routes[aIdx].Version()*1000003 + current.Routes[bIdx].Version()
			if tested[key] == sig {
				continue // unchanged since last (non-improving) test
			}

			improvedHere := false
			for _, mc := range candidateMoves(current, eval, currentCost, aIdx, posA, bIdx, posB) {
				if mc.delta < bestDelta {
					bestDelta, best = mc.delta, mc.apply()
					improvedHere = true
					if !params.BestImproving {
						appliedInClient = true
						break
					}
				}
			}
			if !improvedHere {
				tested[key] = sig
			}
			if appliedInClient {
				break
			}
		}

		if best != nil {
			current = best
			changedAny = true
			for k := range tested {
				delete(tested, k)
			}
		}
	}

	return current, changedAny
}

// Improve runs the local-search operator loop to convergence: repeated
// sweeps until a full pass yields no improving move (exhaustive mode), or a
// single sweep if params.Exhaustive is false. Equivalent to Run with a
// context that never cancels.
func Improve(sol *solution.Solution, nb *neighbourhood.Neighbours, eval *costeval.CostEvaluator, params Params) *solution.Solution {
	return Run(context.Background(), sol, nb, eval, params)
}

// Run is Improve with a deadline: ctx is polled between sweeps, so a
// cancelled ctx makes Run return whatever Solution the last completed sweep
// produced rather than running to full convergence.
func Run(ctx context.Context, sol *solution.Solution, nb *neighbourhood.Neighbours, eval *costeval.CostEvaluator, params Params) *solution.Solution {
	current := sol
	tested := make(map[testKey]int)
	optionalTested := make(map[int]int)
	firstPass := true

	for {
		if ctx.Err() != nil {
			break
		}

		next, changedMoves := sweep(current, nb, eval, params, tested)
		current = next

		next, changedOptional := optionalMovePass(current, eval, optionalTested, firstPass)
		current = next
		firstPass = false

		next, changedReload := reloadPass(current, eval)
		current = next

		if (!changedMoves && !changedOptional && !changedReload) || !params.Exhaustive {
			break
		}
	}
	return current
}
