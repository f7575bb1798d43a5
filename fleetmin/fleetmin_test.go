package fleetmin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/vrpcore/fleetmin"
	"github.com/routeforge/vrpcore/ils"
	"github.com/routeforge/vrpcore/matrix"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/stopcrit"
)

// buildLineInstance returns a depot and n unit-demand clients on a line,
// one vehicle type of the given capacity and numAvailable.
func buildLineInstance(t *testing.T, n int, capacity int64, numAvailable int) *model.ProblemData {
	t.Helper()
	depots := []model.Depot{{Window: model.TimeWindow{Early: 0, Late: model.Infinity}}}
	clients := make([]model.Client, n)
	for i := range clients {
		clients[i] = model.Client{
			Coord: model.Coord{X: int64(i + 1), Y: 0}, Delivery: []int64{1}, Pickup: []int64{0},
			Window: model.TimeWindow{Early: 0, Late: model.Infinity}, MutexGroup: -1, SameVehicleGroup: -1,
		}
	}
	vehicles := []model.VehicleType{{
		Capacity: []int64{capacity}, MaxDuration: model.Infinity, MaxDistance: model.Infinity,
		StartDepot: 0, EndDepot: 0, Profile: 0, NumAvailable: numAvailable, VehicleID: "v",
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

func defaultSolveOpts(pd *model.ProblemData) ils.SolveOptions {
	opts := ils.DefaultSolveOptions(pd.LoadDim())
	opts.Seed = 1
	opts.StoppingCriterion = stopcrit.MaxIterations(15)
	return opts
}

func TestMinimise_RejectsMultipleVehicleTypes(t *testing.T) {
	pd := buildLineInstance(t, 4, 10, 2)
	vehicles := append(pd.VehicleTypes(), pd.VehicleType(0))
	pd2, err := model.NewProblemData(pd.Depots(), pd.Clients(), vehicles, pd.DistMatrices(), pd.DurMatrices(), nil, nil)
	require.NoError(t, err)

	_, err = fleetmin.Minimise(context.Background(), pd2, defaultSolveOpts(pd2))
	require.Error(t, err)
}

func TestMinimise_RejectsOptionalClients(t *testing.T) {
	pd := buildLineInstance(t, 2, 10, 2)
	clients := pd.Clients()
	clients[0].Optional = true
	pd2, err := model.NewProblemData(pd.Depots(), clients, pd.VehicleTypes(), pd.DistMatrices(), pd.DurMatrices(), nil, nil)
	require.NoError(t, err)

	_, err = fleetmin.Minimise(context.Background(), pd2, defaultSolveOpts(pd2))
	require.Error(t, err)
}

func TestMinimise_NeverGoesBelowLowerBound(t *testing.T) {
	// 6 unit-demand clients, capacity 10 per vehicle: lower bound is 1.
	pd := buildLineInstance(t, 6, 10, 4)
	vt, err := fleetmin.Minimise(context.Background(), pd, defaultSolveOpts(pd))
	require.NoError(t, err)
	require.GreaterOrEqual(t, vt.NumAvailable, 1)
	require.LessOrEqual(t, vt.NumAvailable, 4)
}

func TestMinimise_StartsAtOrBelowInputFleetSize(t *testing.T) {
	pd := buildLineInstance(t, 6, 10, 3)
	vt, err := fleetmin.Minimise(context.Background(), pd, defaultSolveOpts(pd))
	require.NoError(t, err)
	require.LessOrEqual(t, vt.NumAvailable, 3)
}
