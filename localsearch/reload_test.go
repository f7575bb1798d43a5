package localsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpcore/costeval"
	"github.com/routeforge/vrpcore/localsearch"
	"github.com/routeforge/vrpcore/matrix"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/neighbourhood"
	"github.com/routeforge/vrpcore/solution"
)

// buildReloadInstance returns a depot (also a reload depot) and two
// clients each demanding 60 against a 100-capacity single-trip vehicle:
// neither client fits alongside the other in one trip, but each fits
// alone, so a mid-route reload is the only way to serve both with one
// vehicle.
func buildReloadInstance(t *testing.T) *model.ProblemData {
	t.Helper()
	coords := []model.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}
	depots := []model.Depot{{Coord: coords[0], Window: model.TimeWindow{Early: 0, Late: model.Infinity}}}
	clients := []model.Client{
		{Coord: coords[1], Delivery: []int64{60}, Pickup: []int64{0}, Window: model.TimeWindow{Early: 0, Late: model.Infinity}, MutexGroup: -1, SameVehicleGroup: -1},
		{Coord: coords[2], Delivery: []int64{60}, Pickup: []int64{0}, Window: model.TimeWindow{Early: 0, Late: model.Infinity}, MutexGroup: -1, SameVehicleGroup: -1},
	}
	vehicles := []model.VehicleType{{
		Capacity: []int64{100}, MaxDuration: model.Infinity, MaxDistance: model.Infinity,
		StartDepot: 0, EndDepot: 0, Profile: 0, NumAvailable: 1, VehicleID: "truck",
		ReloadDepots: []model.LocationIndex{0}, MaxReloads: 5,
	}}

	n := len(coords)
	dist, err := matrix.NewDense(n)
	require.NoError(t, err)
	dur, err := matrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := coords[i].X - coords[j].X
			if dx < 0 {
				dx = -dx
			}
			require.NoError(t, dist.Set(i, j, dx))
			require.NoError(t, dur.Set(i, j, dx))
		}
	}
	pd, err := model.NewProblemData(depots, clients, vehicles, []*matrix.Dense{dist}, []*matrix.Dense{dur}, nil, nil)
	require.NoError(t, err)
	return pd
}

func TestImprove_InsertsReloadToClearCapacityExcess(t *testing.T) {
	pd := buildReloadInstance(t)
	r := solution.NewRoute(pd, 0, 0)
	r.Append(1, false)
	r.Append(2, false)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)
	require.False(t, sol.IsFeasible(), "both clients in one trip exceeds capacity before local search")

	nb, err := neighbourhood.ComputeNeighbours(pd, neighbourhood.DefaultNeighbourhoodParams())
	require.NoError(t, err)
	eval, err := costeval.NewCostEvaluator([]int64{1000}, 1, 1)
	require.NoError(t, err)

	improved := localsearch.Improve(sol, nb, eval, localsearch.DefaultParams())
	require.Equal(t, 2, improved.Routes[0].NumTrips())
	require.True(t, improved.IsFeasible())
}
