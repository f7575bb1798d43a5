package perturb

import (
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/rng"
	"github.com/routeforge/vrpcore/solution"
)

// RouteSwap implements the Route-swap restart operator: pick two
// distinct dispatched routes at random, then swap a random contiguous
// sub-route (a window of Stops, which may include a reload-depot stop)
// between them. Unlike local search's Exchange, Route-swap has no
// client-only restriction: it is a perturbation move, not a move whose
// improving-ness is being tested, so it may freely relocate a reload depot
// along with the clients around it.
//
// RouteSwap returns (sol, false) unchanged when fewer than two routes are
// dispatched.
func RouteSwap(sol *solution.Solution, gen *rng.Generator) (*solution.Solution, bool) {
	if len(sol.Routes) < 2 {
		return sol, false
	}

	aIdx := int(gen.Randint(uint32(len(sol.Routes))))
	bIdx := int(gen.Randint(uint32(len(sol.Routes) - 1)))
	if bIdx >= aIdx {
		bIdx++
	}

	a := sol.Routes[aIdx]
	b := sol.Routes[bIdx]

	posA, lenA := randomWindow(gen, len(a.Stops))
	posB, lenB := randomWindow(gen, len(b.Stops))

	contentA := append([]model.LocationIndex(nil), a.Stops[posA:posA+lenA]...)
	depotA := append([]bool(nil), a.IsDepot[posA:posA+lenA]...)
	contentB := append([]model.LocationIndex(nil), b.Stops[posB:posB+lenB]...)
	depotB := append([]bool(nil), b.IsDepot[posB:posB+lenB]...)

	newA := make([]model.LocationIndex, 0, len(a.Stops)-lenA+lenB)
	newA = append(newA, a.Stops[:posA]...)
	newA = append(newA, contentB...)
	newA = append(newA, a.Stops[posA+lenA:]...)

	newADepot := make([]bool, 0, len(a.IsDepot)-lenA+lenB)
	newADepot = append(newADepot, a.IsDepot[:posA]...)
	newADepot = append(newADepot, depotB...)
	newADepot = append(newADepot, a.IsDepot[posA+lenA:]...)

	newB := make([]model.LocationIndex, 0, len(b.Stops)-lenB+lenA)
	newB = append(newB, b.Stops[:posB]...)
	newB = append(newB, contentA...)
	newB = append(newB, b.Stops[posB+lenB:]...)

	newBDepot := make([]bool, 0, len(b.IsDepot)-lenB+lenA)
	newBDepot = append(newBDepot, b.IsDepot[:posB]...)
	newBDepot = append(newBDepot, depotA...)
	newBDepot = append(newBDepot, b.IsDepot[posB+lenB:]...)

	cand := sol.Clone()
	cand.Routes[aIdx].Stops, cand.Routes[aIdx].IsDepot = newA, newADepot
	cand.Routes[bIdx].Stops, cand.Routes[bIdx].IsDepot = newB, newBDepot
	cand.Routes[aIdx].MarkDirty()
	cand.Routes[bIdx].MarkDirty()
	return cand, true
}

// randomWindow draws a random contiguous [pos, pos+length) window within
// [0, n), including the empty window (length 0) and the full route.
func randomWindow(gen *rng.Generator, n int) (pos, length int) {
	if n == 0 {
		return 0, 0
	}
	i := int(gen.Randint(uint32(n + 1)))
	j := int(gen.Randint(uint32(n + 1)))
	if i > j {
		i, j = j, i
	}
	return i, j - i
}
