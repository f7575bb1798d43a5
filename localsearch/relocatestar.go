package localsearch

import (
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/solution"
)

// tryRelocateStar implements Relocate-star: move an entire
// route's stops onto a currently-empty route, i.e. re-dispatch the same
// sequence of clients under a different vehicle (a different fixed cost,
// capacity, or profile). This is the move that lets local search discover
// that a cheaper vehicle type can serve the same clients.
func tryRelocateStar(sol *solution.Solution, fromIdx, toIdx int) (*solution.Solution, bool) {
	if fromIdx == toIdx {
		return nil, false
	}
	from := sol.Routes[fromIdx]
	to := sol.Routes[toIdx]
	if from.Empty() || !to.Empty() {
		return nil, false
	}

	cand := sol.Clone()
	cFrom := cand.Routes[fromIdx]
	cTo := cand.Routes[toIdx]

	cTo.Stops = append([]model.LocationIndex(nil), cFrom.Stops...)
	cTo.IsDepot = append([]bool(nil), cFrom.IsDepot...)
	cTo.MarkDirty()

	cFrom.Stops = nil
	cFrom.IsDepot = nil
	cFrom.MarkDirty()

	return cand, true
}
