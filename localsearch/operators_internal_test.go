package localsearch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpcore/matrix"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/solution"
)

// twoRouteInstance returns four optional clients, so a test may leave some
// of them unrouted and still build a valid Solution.
func twoRouteInstance(t *testing.T) *model.ProblemData {
	t.Helper()
	depots := []model.Depot{{Window: model.TimeWindow{Early: 0, Late: model.Infinity}}}
	clients := make([]model.Client, 4)
	for i := range clients {
		clients[i] = model.Client{
			Delivery: []int64{1}, Pickup: []int64{0}, Optional: true,
			Window: model.TimeWindow{Early: 0, Late: model.Infinity}, MutexGroup: -1, SameVehicleGroup: -1,
		}
	}
	vehicles := []model.VehicleType{{
		Capacity: []int64{100}, MaxDuration: model.Infinity, MaxDistance: model.Infinity,
		StartDepot: 0, EndDepot: 0, Profile: 0, NumAvailable: 2, VehicleID: "v",
	}}
	n := 5
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
	pd, err := model.NewProblemData(depots, clients, vehicles, []*matrix.Dense{dist}, []*matrix.Dense{dur}, nil, nil)
	require.NoError(t, err)
	return pd
}

func TestTrySwapTails(t *testing.T) {
	pd := twoRouteInstance(t)
	a := solution.NewRoute(pd, 0, 0)
	a.Append(1, false)
	a.Append(2, false)
	b := solution.NewRoute(pd, 0, 1)
	b.Append(3, false)
	b.Append(4, false)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{a, b})
	require.NoError(t, err)

	cand, ok := trySwapTails(sol, 0, 1, 1, 1)
	require.True(t, ok)
	require.Equal(t, []model.LocationIndex{1, 4}, cand.Routes[0].Stops)
	require.Equal(t, []model.LocationIndex{3, 2}, cand.Routes[1].Stops)
	// Original is untouched.
	require.Equal(t, []model.LocationIndex{1, 2}, sol.Routes[0].Stops)
}

func TestTryRelocateStar_RequiresEmptyTarget(t *testing.T) {
	pd := twoRouteInstance(t)
	a := solution.NewRoute(pd, 0, 0)
	a.Append(1, false)
	a.Append(2, false)
	b := solution.NewRoute(pd, 0, 1)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{a, b})
	require.NoError(t, err)

	cand, ok := tryRelocateStar(sol, 0, 1)
	require.True(t, ok)
	require.True(t, cand.Routes[0].Empty())
	require.Equal(t, []model.LocationIndex{1, 2}, cand.Routes[1].Stops)

	_, ok = tryRelocateStar(sol, 1, 0)
	require.False(t, ok, "source route is empty, nothing to relocate")
}

func TestTrySwapStar(t *testing.T) {
	pd := twoRouteInstance(t)
	a := solution.NewRoute(pd, 0, 0)
	a.Append(1, false)
	b := solution.NewRoute(pd, 0, 1)
	b.Append(2, false)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{a, b})
	require.NoError(t, err)

	cand, ok := trySwapStar(sol, 0, 0, 1, 0)
	require.True(t, ok)
	require.Equal(t, []model.LocationIndex{2}, cand.Routes[0].Stops)
	require.Equal(t, []model.LocationIndex{1}, cand.Routes[1].Stops)
}

func TestTryTwoOpt_Reverses(t *testing.T) {
	pd := twoRouteInstance(t)
	r := solution.NewRoute(pd, 0, 0)
	r.Append(1, false)
	r.Append(2, false)
	r.Append(3, false)
	r.Append(4, false)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)

	cand, ok := tryTwoOpt(sol, 0, 1, 2)
	require.True(t, ok)
	require.Equal(t, []model.LocationIndex{1, 3, 2, 4}, cand.Routes[0].Stops)
}
