package localsearch

import (
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/solution"
)

// tryTwoOpt implements 2-opt: reverse the contiguous
// sub-route Stops[i:j+1] of a single route in place.
func tryTwoOpt(sol *solution.Solution, routeIdx, i, j int) (*solution.Solution, bool) {
	r := sol.Routes[routeIdx]
	n := len(r.Stops)
	if i < 0 || j >= n || i >= j {
		return nil, false
	}

	cand := sol.Clone()
	cr := cand.Routes[routeIdx]
	newStops := append([]model.LocationIndex(nil), cr.Stops...)
	newDepot := append([]bool(nil), cr.IsDepot...)
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		newStops[lo], newStops[hi] = newStops[hi], newStops[lo]
		newDepot[lo], newDepot[hi] = newDepot[hi], newDepot[lo]
	}
	cr.Stops, cr.IsDepot = newStops, newDepot
	cr.MarkDirty()
	return cand, true
}
