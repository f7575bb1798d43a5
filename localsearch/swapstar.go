package localsearch

import (
	"github.com/routeforge/vrpcore/solution"
)

// trySwapStar implements Swap-star: u (route A, position
// posU) and v (route B, position posV) are both removed, then each is
// reinserted at its own cheapest position in the OTHER route — not
// necessarily the vacated slot. Returns (nil, false) if both positions are
// on the same route, either position is out of range, or either position
// holds a reload depot.
func trySwapStar(sol *solution.Solution, aIdx, posU int, bIdx, posV int) (*solution.Solution, bool) {
	if aIdx == bIdx {
		return nil, false // Swap-star is an inter-route operator
	}
	a := sol.Routes[aIdx]
	b := sol.Routes[bIdx]
	if posU < 0 || posU >= len(a.Stops) || posV < 0 || posV >= len(b.Stops) {
		return nil, false
	}
	if a.IsDepot[posU] || b.IsDepot[posV] {
		return nil, false
	}
	u := a.Stops[posU]
	v := b.Stops[posV]

	cand := sol.Clone()
	ca := cand.Routes[aIdx]
	cb := cand.Routes[bIdx]

	ca.RemoveAt(posU)
	cb.RemoveAt(posV)

	posInB, _ := cb.CheapestInsertionPos(u)
	cb.InsertAt(posInB, u, false)

	posInA, _ := ca.CheapestInsertionPos(v)
	ca.InsertAt(posInA, v, false)

	return cand, true
}
