package perturb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpcore/matrix"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/perturb"
	"github.com/routeforge/vrpcore/rng"
	"github.com/routeforge/vrpcore/solution"
)

// buildLineInstance returns a depot and n clients laid out 1 unit apart on
// a line, all with wide-open windows, so distances are trivially predictable.
func buildLineInstance(t *testing.T, n int) *model.ProblemData {
	t.Helper()
	depots := []model.Depot{{Window: model.TimeWindow{Early: 0, Late: model.Infinity}}}
	clients := make([]model.Client, n)
	for i := range clients {
		clients[i] = model.Client{
			Delivery: []int64{1}, Pickup: []int64{0},
			Window: model.TimeWindow{Early: 0, Late: model.Infinity}, MutexGroup: -1, SameVehicleGroup: -1,
		}
	}
	vehicles := []model.VehicleType{{
		Capacity: []int64{100}, MaxDuration: model.Infinity, MaxDistance: model.Infinity,
		StartDepot: 0, EndDepot: 0, Profile: 0, NumAvailable: 2, VehicleID: "v",
	}}
	total := n + 1
	dist, err := matrix.NewDense(total)
	require.NoError(t, err)
	dur, err := matrix.NewDense(total)
	require.NoError(t, err)
	for i := 0; i < total; i++ {
		for j := 0; j < total; j++ {
			if i == j {
				continue
			}
			d := i - j
			if d < 0 {
				d = -d
			}
			require.NoError(t, dist.Set(i, j, int64(d)))
			require.NoError(t, dur.Set(i, j, int64(d)))
		}
	}
	pd, err := model.NewProblemData(depots, clients, vehicles, []*matrix.Dense{dist}, []*matrix.Dense{dur}, nil, nil)
	require.NoError(t, err)
	return pd
}

func TestPerturbationManager_ShuffleStaysWithinBounds(t *testing.T) {
	mgr, err := perturb.NewPerturbationManager(perturb.PerturbationParams{Min: 3, Max: 7})
	require.NoError(t, err)
	gen := rng.New(1)
	for i := 0; i < 200; i++ {
		mgr.Shuffle(gen)
		require.GreaterOrEqual(t, mgr.Count(), 3)
		require.LessOrEqual(t, mgr.Count(), 7)
	}
}

func TestPerturbationManager_ConstantWhenMinEqualsMax(t *testing.T) {
	mgr, err := perturb.NewPerturbationManager(perturb.PerturbationParams{Min: 5, Max: 5})
	require.NoError(t, err)
	gen := rng.New(1)
	for i := 0; i < 20; i++ {
		mgr.Shuffle(gen)
		require.Equal(t, 5, mgr.Count())
	}
}

func TestPerturbationParams_RejectsInvalidBounds(t *testing.T) {
	_, err := perturb.NewPerturbationManager(perturb.PerturbationParams{Min: 0, Max: 5})
	require.Error(t, err)
	_, err = perturb.NewPerturbationManager(perturb.PerturbationParams{Min: 6, Max: 5})
	require.Error(t, err)
}

func TestRuin_RemovesAndReinsertsExactCount(t *testing.T) {
	pd := buildLineInstance(t, 6)
	r := solution.NewRoute(pd, 0, 0)
	for i := 1; i <= 6; i++ {
		r.Append(model.LocationIndex(i), false)
	}
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)

	gen := rng.New(42)
	cand := perturb.Ruin(sol, gen, 3)

	require.Equal(t, 6, len(cand.Routes[0].Stops), "every removed client comes back via cheapest insertion")
	require.True(t, cand.IsComplete())

	// Original untouched.
	require.Equal(t, 6, len(sol.Routes[0].Stops))
}

func TestRuin_CountClampedToVisitedSize(t *testing.T) {
	pd := buildLineInstance(t, 2)
	r := solution.NewRoute(pd, 0, 0)
	r.Append(1, false)
	r.Append(2, false)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)

	gen := rng.New(7)
	cand := perturb.Ruin(sol, gen, 50)
	require.Equal(t, 2, len(cand.Routes[0].Stops))
}

func TestRuin_NoVisitedClientsIsNoop(t *testing.T) {
	pd := buildLineInstance(t, 2)
	r := solution.NewRoute(pd, 0, 0)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)

	gen := rng.New(1)
	cand := perturb.Ruin(sol, gen, 5)
	require.True(t, cand.Routes[0].Empty())
}

func TestRuin_IsDeterministicGivenSameSeed(t *testing.T) {
	pd := buildLineInstance(t, 6)
	build := func() *solution.Solution {
		r := solution.NewRoute(pd, 0, 0)
		for i := 1; i <= 6; i++ {
			r.Append(model.LocationIndex(i), false)
		}
		sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
		require.NoError(t, err)
		return sol
	}

	a := perturb.Ruin(build(), rng.New(99), 4)
	b := perturb.Ruin(build(), rng.New(99), 4)
	require.Equal(t, a.Routes[0].Stops, b.Routes[0].Stops)
}

func TestRouteSwap_SwapsWindowsBetweenTwoRoutes(t *testing.T) {
	pd := buildLineInstance(t, 4)
	a := solution.NewRoute(pd, 0, 0)
	a.Append(1, false)
	a.Append(2, false)
	b := solution.NewRoute(pd, 0, 1)
	b.Append(3, false)
	b.Append(4, false)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{a, b})
	require.NoError(t, err)

	gen := rng.New(3)
	cand, ok := perturb.RouteSwap(sol, gen)
	require.True(t, ok)
	require.NoError(t, cand.ValidateInvariants())

	// Original routes are untouched.
	require.Equal(t, []model.LocationIndex{1, 2}, sol.Routes[0].Stops)
	require.Equal(t, []model.LocationIndex{3, 4}, sol.Routes[1].Stops)
}

func TestRouteSwap_SingleRouteIsNoop(t *testing.T) {
	pd := buildLineInstance(t, 2)
	r := solution.NewRoute(pd, 0, 0)
	r.Append(1, false)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)

	gen := rng.New(1)
	cand, ok := perturb.RouteSwap(sol, gen)
	require.False(t, ok)
	require.Same(t, sol, cand)
}

func TestPerturbationManager_PerturbFallsBackToRuinWithOneRoute(t *testing.T) {
	pd := buildLineInstance(t, 4)
	r := solution.NewRoute(pd, 0, 0)
	for i := 1; i <= 4; i++ {
		r.Append(model.LocationIndex(i), false)
	}
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)

	mgr, err := perturb.NewPerturbationManager(perturb.PerturbationParams{Min: 2, Max: 2})
	require.NoError(t, err)
	gen := rng.New(5)
	cand := mgr.Perturb(sol, gen)
	require.Equal(t, 4, len(cand.Routes[0].Stops))
}
