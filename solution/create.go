package solution

import (
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/rng"
)

// CreateSolutionFromRoutes wraps routes as a Solution after checking every
// structural invariant (ValidateInvariants). routes is taken by reference,
// not copied; callers should not mutate it afterwards except through the
// returned Solution.
func CreateSolutionFromRoutes(pd *model.ProblemData, routes []*Route) (*Solution, error) {
	sol := &Solution{pd: pd, Routes: routes}
	if err := sol.ValidateInvariants(); err != nil {
		return nil, err
	}
	return sol, nil
}

// CreateRandomSolution builds a starting-point Solution by shuffling
// clients with a seeded rng.Generator and greedily assigning each to a
// randomly chosen (or newly dispatched) vehicle route, respecting
// mutually-exclusive and same-vehicle group membership as it goes so the
// result already satisfies ValidateInvariants (capacity/duration/distance/
// time-window feasibility is not attempted here; that is local search's
// job). Optional clients are included with 50% probability, independently.
func CreateRandomSolution(pd *model.ProblemData, seed uint64) *Solution {
	gen := rng.New(seed)
	sol := NewSolution(pd)

	numTypes := pd.NumVehicleTypes()
	routesByType := make([][]*Route, numTypes)

	groupVehicleID := make(map[int]string)
	mutexVisited := make(map[int]bool)

	pickRouteFor := func(wantVehicleID string) *Route {
		if wantVehicleID != "" {
			for t := 0; t < numTypes; t++ {
				for _, r := range routesByType[t] {
					if r.VehicleType().VehicleID == wantVehicleID {
						return r
					}
				}
			}
		}
		for tries := 0; tries < numTypes*2; tries++ {
			t := int(gen.Randint(uint32(numTypes)))
			vt := pd.VehicleType(t)
			if len(routesByType[t]) < vt.NumAvailable {
				r := NewRoute(pd, t, len(routesByType[t]))
				routesByType[t] = append(routesByType[t], r)
				sol.AddRoute(r)
				return r
			}
			if len(routesByType[t]) > 0 {
				return routesByType[t][gen.Randint(uint32(len(routesByType[t])))]
			}
		}
		return nil
	}

	order := make([]int, pd.NumClients())
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := int(gen.Randint(uint32(i + 1)))
		order[i], order[j] = order[j], order[i]
	}

	assign := func(ci int) {
		c := pd.Client(ci)
		wantVehicleID := ""
		if c.SameVehicleGroup >= 0 {
			wantVehicleID = groupVehicleID[c.SameVehicleGroup]
		}
		r := pickRouteFor(wantVehicleID)
		if r == nil {
			return
		}
		r.Append(pd.ClientLocation(ci), false)
		if c.SameVehicleGroup >= 0 {
			groupVehicleID[c.SameVehicleGroup] = r.VehicleType().VehicleID
		}
		if c.MutexGroup >= 0 {
			mutexVisited[c.MutexGroup] = true
		}
	}

	for _, ci := range order {
		c := pd.Client(ci)
		if c.MutexGroup >= 0 && mutexVisited[c.MutexGroup] {
			continue
		}
		if c.Optional && gen.Rand() < 0.5 {
			continue
		}
		assign(ci)
	}

	for _, g := range pd.MutexGroups() {
		if !g.Required {
			continue
		}
		satisfied := false
		for _, m := range g.Members {
			if _, at := sol.locationRoute(m); at >= 0 {
				satisfied = true
				break
			}
		}
		if !satisfied && len(g.Members) > 0 {
			assign(int(g.Members[0]) - pd.NumDepots())
		}
	}

	return sol
}
