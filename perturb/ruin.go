package perturb

import (
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/rng"
	"github.com/routeforge/vrpcore/solution"
)

// Ruin implements the Ruin restart operator: remove count randomly chosen
// visited clients from sol, then reinsert each one by cheapest insertion
// (the gap, across every route, that adds the least distance). count is
// typically PerturbationManager.Count(). Ruin mutates a clone of sol and
// never touches the caller's copy.
//
// Reinsertion considers every gap of every route and checks no capacity,
// time-window or fleet-size limit, so every removed client is put back
// into some route; the returned Solution may exceed a route's limits until
// local search repairs it.
func Ruin(sol *solution.Solution, gen *rng.Generator, count int) *solution.Solution {
	cand := sol.Clone()
	pd := cand.ProblemData()

	visited := make([]model.LocationIndex, 0, pd.NumClients())
	for _, r := range cand.Routes {
		for _, loc := range r.Stops {
			if !pd.IsDepot(loc) {
				visited = append(visited, loc)
			}
		}
	}
	if len(visited) == 0 {
		return cand
	}
	if count > len(visited) {
		count = len(visited)
	}

	removed := make([]model.LocationIndex, 0, count)
	for i := 0; i < count; i++ {
		pick := int(gen.Randint(uint32(len(visited))))
		removed = append(removed, visited[pick])
		visited[pick] = visited[len(visited)-1]
		visited = visited[:len(visited)-1]
	}

	for _, loc := range removed {
		ri, pos, found := locate(cand, loc)
		if !found {
			continue
		}
		cand.Routes[ri].RemoveAt(pos)
	}

	for _, loc := range removed {
		reinsertCheapest(cand, loc)
	}
	return cand
}

// reinsertCheapest inserts loc into whichever route and position, across
// every dispatched route in sol, adds the least distance. No route limit is
// checked; loc is left unrouted only when sol has no routes at all.
func reinsertCheapest(sol *solution.Solution, loc model.LocationIndex) {
	bestRoute := -1
	bestPos := 0
	bestDelta := int64(-1)
	for ri, r := range sol.Routes {
		pos, delta := r.CheapestInsertionPos(loc)
		if bestDelta < 0 || delta < bestDelta {
			bestRoute, bestPos, bestDelta = ri, pos, delta
		}
	}
	if bestRoute < 0 {
		return
	}
	sol.Routes[bestRoute].InsertAt(bestPos, loc, false)
}
