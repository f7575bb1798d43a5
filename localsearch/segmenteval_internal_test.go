package localsearch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpcore/costeval"
	"github.com/routeforge/vrpcore/matrix"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/solution"
)

// windowedRouteInstance builds a 5-client single-route instance with
// asymmetric travel times and tight, staggered time windows, so 2-opt
// reversals actually move time warp and wait time, not just distance.
func windowedRouteInstance(t *testing.T) *model.ProblemData {
	t.Helper()
	depot := model.Depot{Window: model.TimeWindow{Early: 0, Late: model.Infinity}}
	clients := make([]model.Client, 5)
	for i := range clients {
		clients[i] = model.Client{
			Delivery: []int64{1}, Pickup: []int64{int64(i % 2)},
			ServiceTime: int64(i + 1),
			Window:      model.TimeWindow{Early: int64(i * 3), Late: int64(i*3 + 5)},
			MutexGroup:  -1, SameVehicleGroup: -1,
		}
	}
	vehicle := model.VehicleType{
		Capacity: []int64{5}, MaxDuration: 50, MaxDistance: 40,
		StartDepot: 0, EndDepot: 0, Profile: 0, NumAvailable: 1, VehicleID: "v",
		UnitDistanceCost: 3, UnitDurationCost: 2, OvertimeUnitCost: 7,
	}

	n := 6
	dist, err := matrix.NewDense(n)
	require.NoError(t, err)
	dur, err := matrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// Asymmetric: i->j costs differently from j->i so a 2-opt
			// reversal actually changes which direction each edge is
			// charged in, not just which stops are adjacent.
			require.NoError(t, dist.Set(i, j, int64(2+i+2*j)))
			require.NoError(t, dur.Set(i, j, int64(1+i+j)))
		}
	}
	pd, err := model.NewProblemData([]model.Depot{depot}, clients, []model.VehicleType{vehicle}, []*matrix.Dense{dist}, []*matrix.Dense{dur}, nil, nil)
	require.NoError(t, err)
	return pd
}

// TestTwoOptCandidate_MatchesEagerEvaluation checks that the segment-priced
// delta from twoOptCandidate agrees exactly with pricing the same reversal
// by the eager clone-and-rebuild path (tryTwoOpt + PenalisedCost), across
// every valid (i, j) pair of a multi-client route with asymmetric edges and
// tight time windows.
func TestTwoOptCandidate_MatchesEagerEvaluation(t *testing.T) {
	pd := windowedRouteInstance(t)
	r := solution.NewRoute(pd, 0, 0)
	for _, loc := range []model.LocationIndex{1, 2, 3, 4, 5} {
		r.Append(loc, false)
	}
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)

	eval, err := costeval.NewCostEvaluator([]int64{4}, 5, 6)
	require.NoError(t, err)
	currentCost := eval.PenalisedCost(sol)

	n := sol.Routes[0].Len()
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			mc, ok := twoOptCandidate(sol, eval, currentCost, 0, i, j)
			require.True(t, ok)

			eagerCand, applied := tryTwoOpt(sol, 0, i, j)
			require.True(t, applied)
			wantDelta := eval.PenalisedCost(eagerCand) - currentCost

			require.Equalf(t, wantDelta, mc.delta, "i=%d j=%d", i, j)

			gotCand := mc.apply()
			require.Equal(t, eagerCand.Routes[0].Stops, gotCand.Routes[0].Stops)
		}
	}
}

// TestTwoOptCandidate_FallsBackWithReloadDepot checks that a route
// containing a mid-route reload depot is still priced correctly (via the
// eager fallback path, since the segment builder here assumes one trip).
func TestTwoOptCandidate_FallsBackWithReloadDepot(t *testing.T) {
	pd := windowedRouteInstance(t)
	r := solution.NewRoute(pd, 0, 0)
	r.Append(1, false)
	r.Append(0, true) // mid-route reload at the depot location
	r.Append(2, false)
	r.Append(3, false)
	r.Append(4, false)
	r.Append(5, false)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)

	eval, err := costeval.NewCostEvaluator([]int64{4}, 5, 6)
	require.NoError(t, err)
	currentCost := eval.PenalisedCost(sol)

	mc, ok := twoOptCandidate(sol, eval, currentCost, 0, 0, 2)
	require.True(t, ok)

	eagerCand, applied := tryTwoOpt(sol, 0, 0, 2)
	require.True(t, applied)
	require.Equal(t, eval.PenalisedCost(eagerCand)-currentCost, mc.delta)
}

// TestTwoOptCandidate_RejectsForbiddenEdge checks that a reversal which
// would traverse a matrix.ForbiddenEdge is reported as not worth
// materialising, without ever calling apply.
func TestTwoOptCandidate_RejectsForbiddenEdge(t *testing.T) {
	// ProblemData is immutable, so build a dedicated instance with one
	// ForbiddenEdge-valued entry rather than mutating an existing matrix.
	depot := model.Depot{Window: model.TimeWindow{Early: 0, Late: model.Infinity}}
	clients := make([]model.Client, 3)
	for i := range clients {
		clients[i] = model.Client{
			Delivery: []int64{1}, Pickup: []int64{0},
			Window: model.TimeWindow{Early: 0, Late: model.Infinity}, MutexGroup: -1, SameVehicleGroup: -1,
		}
	}
	vehicle := model.VehicleType{
		Capacity: []int64{10}, MaxDuration: model.Infinity, MaxDistance: model.Infinity,
		StartDepot: 0, EndDepot: 0, Profile: 0, NumAvailable: 1, VehicleID: "v",
	}
	n := 4
	dist, err := matrix.NewDense(n)
	require.NoError(t, err)
	dur, err := matrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			require.NoError(t, dist.Set(i, j, 1))
			require.NoError(t, dur.Set(i, j, 1))
		}
	}
	require.NoError(t, dist.Set(3, 2, matrix.ForbiddenEdge)) // reversing [1,2,3] to [3,2,1] traverses 3->2
	pd2, err := model.NewProblemData([]model.Depot{depot}, clients, []model.VehicleType{vehicle}, []*matrix.Dense{dist}, []*matrix.Dense{dur}, nil, nil)
	require.NoError(t, err)

	r := solution.NewRoute(pd2, 0, 0)
	r.Append(1, false)
	r.Append(2, false)
	r.Append(3, false)
	sol, err := solution.CreateSolutionFromRoutes(pd2, []*solution.Route{r})
	require.NoError(t, err)

	eval, err := costeval.NewCostEvaluator([]int64{1}, 1, 1)
	require.NoError(t, err)
	currentCost := eval.PenalisedCost(sol)

	_, ok := twoOptCandidate(sol, eval, currentCost, 0, 0, 2)
	require.False(t, ok, "reversal traverses a forbidden edge and must be rejected")
}
