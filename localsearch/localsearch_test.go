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

// buildCrossedRouteInstance returns a depot at the origin of a 10x10 square,
// with three clients at its other corners and one at its centre, and a
// vehicle charged one unit per unit of distance, so that a single route
// visiting them in "crossed" order (1,3,2,4) is strictly costlier than the
// uncrossed tour 2-opt should discover.
func buildCrossedRouteInstance(t *testing.T) *model.ProblemData {
	t.Helper()

	coords := []model.Coord{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 5, Y: 5}}
	depots := []model.Depot{{Coord: coords[0], Window: model.TimeWindow{Early: 0, Late: model.Infinity}}}
	clients := make([]model.Client, 4)
	for i := 0; i < 4; i++ {
		clients[i] = model.Client{
			Coord: coords[i+1], Delivery: []int64{1}, Pickup: []int64{0},
			Window: model.TimeWindow{Early: 0, Late: model.Infinity}, MutexGroup: -1, SameVehicleGroup: -1,
		}
	}
	vehicles := []model.VehicleType{{
		Capacity: []int64{100}, MaxDuration: model.Infinity, MaxDistance: model.Infinity,
		StartDepot: 0, EndDepot: 0, Profile: 0, NumAvailable: 1, VehicleID: "v1",
		UnitDistanceCost: 1,
	}}

	n := 5
	dist, err := matrix.NewDense(n)
	require.NoError(t, err)
	dur, err := matrix.NewDense(n)
	require.NoError(t, err)
	allCoords := []model.Coord{coords[0], coords[1], coords[2], coords[3], coords[4]}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := allCoords[i].X - allCoords[j].X
			dy := allCoords[i].Y - allCoords[j].Y
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			d := dx + dy
			require.NoError(t, dist.Set(i, j, d))
			require.NoError(t, dur.Set(i, j, d))
		}
	}

	pd, err := model.NewProblemData(depots, clients, vehicles, []*matrix.Dense{dist}, []*matrix.Dense{dur}, nil, nil)
	require.NoError(t, err)
	return pd
}

func TestImprove_UncrossesRouteViaTwoOpt(t *testing.T) {
	pd := buildCrossedRouteInstance(t)

	r := solution.NewRoute(pd, 0, 0)
	// Visit order 1,3,2,4: a crossed tour (the 1->3 leg cuts across the square).
	r.Append(1, false)
	r.Append(3, false)
	r.Append(2, false)
	r.Append(4, false)
	sol, err := solution.CreateSolutionFromRoutes(pd, []*solution.Route{r})
	require.NoError(t, err)

	nb, err := neighbourhood.ComputeNeighbours(pd, neighbourhood.DefaultNeighbourhoodParams())
	require.NoError(t, err)
	eval, err := costeval.NewCostEvaluator([]int64{0}, 1, 1)
	require.NoError(t, err)

	before := eval.PenalisedCost(sol)
	improved := localsearch.Improve(sol, nb, eval, localsearch.DefaultParams())
	after := eval.PenalisedCost(improved)

	require.LessOrEqual(t, after, before)
	require.Less(t, after, before, "2-opt should strictly shorten a visibly crossed tour")
}

func TestImprove_NeverWorsensCost(t *testing.T) {
	pd := buildCrossedRouteInstance(t)
	sol := solution.CreateRandomSolution(pd, 123)

	nb, err := neighbourhood.ComputeNeighbours(pd, neighbourhood.DefaultNeighbourhoodParams())
	require.NoError(t, err)
	eval, err := costeval.NewCostEvaluator([]int64{0}, 1, 1)
	require.NoError(t, err)

	before := eval.PenalisedCost(sol)
	improved := localsearch.Improve(sol, nb, eval, localsearch.DefaultParams())
	after := eval.PenalisedCost(improved)

	require.LessOrEqual(t, after, before)
}

func TestImprove_FirstImprovingAlsoNeverWorsens(t *testing.T) {
	pd := buildCrossedRouteInstance(t)
	sol := solution.CreateRandomSolution(pd, 7)

	nb, err := neighbourhood.ComputeNeighbours(pd, neighbourhood.DefaultNeighbourhoodParams())
	require.NoError(t, err)
	eval, err := costeval.NewCostEvaluator([]int64{0}, 1, 1)
	require.NoError(t, err)

	params := localsearch.DefaultParams()
	params.BestImproving = false

	before := eval.PenalisedCost(sol)
	improved := localsearch.Improve(sol, nb, eval, params)
	after := eval.PenalisedCost(improved)

	require.LessOrEqual(t, after, before)
}
