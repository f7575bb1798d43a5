package localsearch

import (
	"github.com/routeforge/vrpcore/costeval"
	"github.com/routeforge/vrpcore/solution"
)

// reloadPass implements multi-trip in-place depot insertion: for every
// route currently exceeding its vehicle's capacity in some load dimension,
// try inserting
// one of the vehicle type's reload depots at every gap, keeping whichever
// insertion most improves PenalisedCost (a reload resets the trip load
// count, so it can turn a capacity violation into a clean split). Mirrors
// optionalMovePass's cheapest-reinsertion-by-scan shape, specialised to
// depot stops instead of optional clients.
func reloadPass(sol *solution.Solution, eval *costeval.CostEvaluator) (*solution.Solution, bool) {
	current := sol
	changed := false

	for ri := range current.Routes {
		r := current.Routes[ri]
		vt := r.VehicleType()
		if len(vt.ReloadDepots) == 0 {
			continue
		}

		exceeds := false
		for _, e := range r.ExcessLoad() {
			if e > 0 {
				exceeds = true
				break
			}
		}
		if !exceeds {
			continue
		}

		reloadsUsed := 0
		for _, d := range r.IsDepot {
			if d {
				reloadsUsed++
			}
		}
		if reloadsUsed >= vt.MaxReloads {
			continue
		}

		currentCost := eval.PenalisedCost(current)
		var best *solution.Solution
		bestDelta := int64(0)

		for _, depot := range vt.ReloadDepots {
			for pos := 0; pos <= len(r.Stops); pos++ {
				cand := current.Clone()
				cand.Routes[ri].InsertAt(pos, depot, true)
				if delta := eval.PenalisedCost(cand) - currentCost; delta < bestDelta {
					bestDelta, best = delta, cand
				}
			}
		}

		if best != nil {
			current = best
			changed = true
		}
	}

	return current, changed
}
