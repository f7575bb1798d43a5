package solution

import (
	"fmt"

	"github.com/routeforge/vrpcore/model"
)

// Solution is a candidate answer to a ProblemData: a list of dispatched
// Routes. Construction is cheap (CreateRandomSolution, CreateSolutionFromRoutes)
// and Clone is a shallow-per-route copy, so candidate generation during
// search never mutates a Solution another goroutine or caller still holds.
type Solution struct {
	pd     *model.ProblemData
	Routes []*Route
}

// NewSolution returns an empty Solution (no dispatched routes) borrowing pd.
func NewSolution(pd *model.ProblemData) *Solution {
	return &Solution{pd: pd}
}

// ProblemData returns the instance this solution was built against.
func (s *Solution) ProblemData() *model.ProblemData { return s.pd }

// Clone returns a deep-enough copy: a new Routes slice of cloned *Route
// values, safe to mutate independently of s.
func (s *Solution) Clone() *Solution {
	cp := &Solution{pd: s.pd, Routes: make([]*Route, len(s.Routes))}
	for i, r := range s.Routes {
		cp.Routes[i] = r.Clone()
	}
	return cp
}

// AddRoute appends a dispatched route.
func (s *Solution) AddRoute(r *Route) { s.Routes = append(s.Routes, r) }

// RemoveRouteAt removes the route at index i.
func (s *Solution) RemoveRouteAt(i int) {
	s.Routes = append(s.Routes[:i], s.Routes[i+1:]...)
}

// NumRoutes returns the number of dispatched routes.
func (s *Solution) NumRoutes() int { return len(s.Routes) }

// VisitedClients returns the set of client location indices appearing in
// any route (reload-depot stops excluded).
func (s *Solution) VisitedClients() map[model.LocationIndex]bool {
	visited := make(map[model.LocationIndex]bool)
	for _, r := range s.Routes {
		for _, loc := range r.Stops {
			if !s.pd.IsDepot(loc) {
				visited[loc] = true
			}
		}
	}
	return visited
}

// IsComplete reports whether every client, required or optional, is
// visited by some route.
func (s *Solution) IsComplete() bool {
	visited := s.VisitedClients()
	return len(visited) == s.pd.NumClients()
}

// IsFeasible reports whether every route respects its vehicle type's hard
// limits (zero time warp, zero excess load in every dimension, zero excess
// distance, overtime within MaxOvertime, no forbidden edge traversed) and
// every structural group invariant holds. Capacity/duration/distance/
// time-window violations are legal in an intermediate Solution; they
// simply make it infeasible until resolved.
func (s *Solution) IsFeasible() bool {
	for _, r := range s.Routes {
		if r.TimeWarp() != 0 || r.ExcessDistance() != 0 || r.UsesForbiddenEdge() {
			return false
		}
		for _, exc := range r.ExcessLoad() {
			if exc != 0 {
				return false
			}
		}
		if r.Overtime() > r.VehicleType().MaxOvertime {
			return false
		}
	}
	return s.ValidateInvariants() == nil
}

// locationRoute returns the route containing loc and its position within
// it, or (nil, -1) if loc is not visited by any route.
func (s *Solution) locationRoute(loc model.LocationIndex) (*Route, int) {
	for _, r := range s.Routes {
		for i, stop := range r.Stops {
			if stop == loc {
				return r, i
			}
		}
	}
	return nil, -1
}

// ValidateInvariants checks every structural invariant (no client visited
// twice, every required client visited, mutex/same-vehicle groups
// respected) in a single pass over every route's stops, using a
// visited-marking array indexed by client rather than a membership scan
// per client. Returns the first violation found, nil if none.
func (s *Solution) ValidateInvariants() error {
	numClients := s.pd.NumClients()
	numDepots := s.pd.NumDepots()
	seen := make([]uint8, numClients)

	for ri, r := range s.Routes {
		if r.vehicleTypeIdx < 0 || r.vehicleTypeIdx >= s.pd.NumVehicleTypes() {
			return fmt.Errorf("route %d: %w", ri, ErrUnknownVehicleType)
		}
		for _, loc := range r.Stops {
			if s.pd.IsDepot(loc) {
				continue
			}
			idx := int(loc) - numDepots
			if seen[idx] != 0 {
				return fmt.Errorf("client %d: %w", idx, ErrDuplicateClient)
			}
			seen[idx] = 1
		}
	}

	for ci := 0; ci < numClients; ci++ {
		if s.pd.Client(ci).Required() && seen[ci] == 0 {
			return fmt.Errorf("client %d: %w", ci, ErrMissingRequiredClient)
		}
	}

	for gi, g := range s.pd.MutexGroups() {
		count := 0
		for _, m := range g.Members {
			if seen[int(m)-numDepots] != 0 {
				count++
			}
		}
		if count > 1 || (g.Required && count != 1) {
			return fmt.Errorf("mutex group %d: %w", gi, ErrMutexGroupViolation)
		}
	}

	typeCounts := make(map[int]int)
	for _, r := range s.Routes {
		typeCounts[r.vehicleTypeIdx]++
	}
	for idx, n := range typeCounts {
		if n > s.pd.VehicleType(idx).NumAvailable {
			return fmt.Errorf("vehicle type %d: %w", idx, ErrTooManyRoutes)
		}
	}

	for gi, g := range s.pd.SameVehicleGroups() {
		var vehicleID string
		haveOne := false
		for _, m := range g.Members {
			if seen[int(m)-numDepots] == 0 {
				continue
			}
			r, _ := s.locationRoute(m)
			if r == nil {
				continue
			}
			id := r.VehicleType().VehicleID
			if !haveOne {
				vehicleID, haveOne = id, true
				continue
			}
			if id != vehicleID {
				return fmt.Errorf("same-vehicle group %d: %w", gi, ErrSameVehicleGroupViolation)
			}
		}
	}

	return nil
}
