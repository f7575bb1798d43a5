package localsearch

import (
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/solution"
)

// trySwapTails implements Swap-tails: split route A before
// position i and route B before position j, then swap the two tails
// (A[i:] with B[j:]). Unlike Exchange, a tail may legitimately contain a
// reload depot — it is swapped along with the clients after it, preserving
// the trip structure within the tail itself.
func trySwapTails(sol *solution.Solution, aIdx, i, bIdx, j int) (*solution.Solution, bool) {
	if aIdx == bIdx {
		return nil, false
	}
	a := sol.Routes[aIdx]
	b := sol.Routes[bIdx]
	if i < 0 || i > len(a.Stops) || j < 0 || j > len(b.Stops) {
		return nil, false
	}

	tailA := append([]model.LocationIndex(nil), a.Stops[i:]...)
	tailADepot := append([]bool(nil), a.IsDepot[i:]...)
	tailB := append([]model.LocationIndex(nil), b.Stops[j:]...)
	tailBDepot := append([]bool(nil), b.IsDepot[j:]...)

	cand := sol.Clone()
	ca := cand.Routes[aIdx]
	cb := cand.Routes[bIdx]

	ca.Stops = append(append([]model.LocationIndex(nil), ca.Stops[:i]...), tailB...)
	ca.IsDepot = append(append([]bool(nil), ca.IsDepot[:i]...), tailBDepot...)
	cb.Stops = append(append([]model.LocationIndex(nil), cb.Stops[:j]...), tailA...)
	cb.IsDepot = append(append([]bool(nil), cb.IsDepot[:j]...), tailADepot...)

	ca.MarkDirty()
	cb.MarkDirty()
	return cand, true
}
