package localsearch

import (
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/solution"
)

// windowHasReload reports whether any stop in stops[pos:pos+length] is a
// mid-route reload depot: Exchange only ever relocates/swaps client stops,
// never reload depots.
func windowHasReload(isDepot []bool, pos, length int) bool {
	for i := pos; i < pos+length; i++ {
		if isDepot[i] {
			return true
		}
	}
	return false
}

func windowFits(stopsLen, pos, length int) bool {
	return length >= 0 && pos >= 0 && pos+length <= stopsLen
}

// spliceWindows swaps the content of two non-overlapping windows within a
// single slice pair, returning new slices (the inputs are left untouched).
// The window at posA receives what used to be at posB and vice versa; a
// zero-length window on either side makes this a pure relocation.
func spliceWindows(stops []model.LocationIndex, isDepot []bool, posA, lenA, posB, lenB int) ([]model.LocationIndex, []bool, bool) {
	if posA+lenA > posB {
		if posB+lenB > posA {
			return nil, nil, false // overlap
		}
		// Caller gave them in reverse order; normalise.
		return spliceWindows(stops, isDepot, posB, lenB, posA, lenA)
	}

	contentA := append([]model.LocationIndex(nil), stops[posA:posA+lenA]...)
	depotA := append([]bool(nil), isDepot[posA:posA+lenA]...)
	contentB := append([]model.LocationIndex(nil), stops[posB:posB+lenB]...)
	depotB := append([]bool(nil), isDepot[posB:posB+lenB]...)

	newStops := make([]model.LocationIndex, 0, len(stops))
	newStops = append(newStops, stops[:posA]...)
	newStops = append(newStops, contentB...)
	newStops = append(newStops, stops[posA+lenA:posB]...)
	newStops = append(newStops, contentA...)
	newStops = append(newStops, stops[posB+lenB:]...)

	newDepot := make([]bool, 0, len(isDepot))
	newDepot = append(newDepot, isDepot[:posA]...)
	newDepot = append(newDepot, depotB...)
	newDepot = append(newDepot, isDepot[posA+lenA:posB]...)
	newDepot = append(newDepot, depotA...)
	newDepot = append(newDepot, isDepot[posB+lenB:]...)

	return newStops, newDepot, true
}

// exchangeWithinRoute returns a clone of sol with the window of length p at
// posA swapped against the window of length q at posB, both in the same
// route, or (nil, false) if the windows overlap or touch a reload depot.
func exchangeWithinRoute(sol *solution.Solution, routeIdx, posA, p, posB, q int) (*solution.Solution, bool) {
	r := sol.Routes[routeIdx]
	if !windowFits(len(r.Stops), posA, p) || !windowFits(len(r.Stops), posB, q) {
		return nil, false
	}
	if windowHasReload(r.IsDepot, posA, p) || windowHasReload(r.IsDepot, posB, q) {
		return nil, false
	}
	newStops, newDepot, ok := spliceWindows(r.Stops, r.IsDepot, posA, p, posB, q)
	if !ok {
		return nil, false
	}

	cand := sol.Clone()
	cr := cand.Routes[routeIdx]
	cr.Stops, cr.IsDepot = newStops, newDepot
	cr.MarkDirty()
	return cand, true
}

// exchangeAcrossRoutes returns a clone of sol with A's window of length p at
// posA swapped against B's window of length q at posB, A and B distinct
// routes, or (nil, false) if either window touches a reload depot.
func exchangeAcrossRoutes(sol *solution.Solution, aIdx, posA, p, bIdx, posB, q int) (*solution.Solution, bool) {
	a := sol.Routes[aIdx]
	b := sol.Routes[bIdx]
	if !windowFits(len(a.Stops), posA, p) || !windowFits(len(b.Stops), posB, q) {
		return nil, false
	}
	if windowHasReload(a.IsDepot, posA, p) || windowHasReload(b.IsDepot, posB, q) {
		return nil, false
	}

	contentA := append([]model.LocationIndex(nil), a.Stops[posA:posA+p]...)
	depotA := append([]bool(nil), a.IsDepot[posA:posA+p]...)
	contentB := append([]model.LocationIndex(nil), b.Stops[posB:posB+q]...)
	depotB := append([]bool(nil), b.IsDepot[posB:posB+q]...)

	newA := make([]model.LocationIndex, 0, len(a.Stops)-p+q)
	newA = append(newA, a.Stops[:posA]...)
	newA = append(newA, contentB...)
	newA = append(newA, a.Stops[posA+p:]...)

	newADepot := make([]bool, 0, len(a.IsDepot)-p+q)
	newADepot = append(newADepot, a.IsDepot[:posA]...)
	newADepot = append(newADepot, depotB...)
	newADepot = append(newADepot, a.IsDepot[posA+p:]...)

	newB := make([]model.LocationIndex, 0, len(b.Stops)-q+p)
	newB = append(newB, b.Stops[:posB]...)
	newB = append(newB, contentA...)
	newB = append(newB, b.Stops[posB+q:]...)

	newBDepot := make([]bool, 0, len(b.IsDepot)-q+p)
	newBDepot = append(newBDepot, b.IsDepot[:posB]...)
	newBDepot = append(newBDepot, depotA...)
	newBDepot = append(newBDepot, b.IsDepot[posB+q:]...)

	cand := sol.Clone()
	cand.Routes[aIdx].Stops, cand.Routes[aIdx].IsDepot = newA, newADepot
	cand.Routes[bIdx].Stops, cand.Routes[bIdx].IsDepot = newB, newBDepot
	cand.Routes[aIdx].MarkDirty()
	cand.Routes[bIdx].MarkDirty()
	return cand, true
}

// tryExchange attempts Exchange(p, q): the p-client block starting at u's
// position traded against the q-client block starting at v's position,
// same route or across routes. Returns (nil, false) when the geometry is
// invalid (out of bounds, overlapping, touches a reload depot).
func tryExchange(sol *solution.Solution, aIdx, posA, p, bIdx, posB, q int) (*solution.Solution, bool) {
	if p == 0 && q == 0 {
		return nil, false
	}
	if aIdx == bIdx {
		return exchangeWithinRoute(sol, aIdx, posA, p, posB, q)
	}
	return exchangeAcrossRoutes(sol, aIdx, posA, p, bIdx, posB, q)
}
