package fleetmin

import (
	"context"

	"github.com/routeforge/vrpcore/ils"
	"github.com/routeforge/vrpcore/model"
)

// Minimise finds the smallest fleet size that still serves pd's clients
// completely and feasibly. pd must have exactly one vehicle type and no
// optional clients; otherwise Minimise returns a *model.ConfigurationError
// without attempting to solve anything.
//
// solveOpts configures each resolve attempt (the caller's stopping
// criterion, penalties, neighbourhood, and perturbation parameters);
// ils.Solve validates all of it again on every attempt. solveOpts.Seed is
// reused unchanged
// across every attempt so the shrink loop is itself deterministic for a
// given seed.
//
// Returns the smallest VehicleType.NumAvailable value for which pd could
// still be solved to a complete, feasible Solution, decrementing one
// vehicle at a time from the input's NumAvailable until either the load
// lower bound is reached or one more reduction makes the instance
// unsolvable within solveOpts' stopping criterion.
func Minimise(ctx context.Context, pd *model.ProblemData, solveOpts ils.SolveOptions) (model.VehicleType, error) {
	if pd.NumVehicleTypes() != 1 {
		return model.VehicleType{}, model.NewConfigurationError("fleetmin", "requires exactly one vehicle type, got %d", pd.NumVehicleTypes())
	}
	for _, c := range pd.Clients() {
		if c.Optional {
			return model.VehicleType{}, model.NewConfigurationError("fleetmin", "requires no optional clients")
		}
	}

	vt := pd.VehicleType(0)
	bound := lowerBound(pd, vt)

	bestPD := pd
	bestVT := vt

	for bestVT.NumAvailable > int(bound) {
		candidatePD, candidateVT, err := withReducedFleet(bestPD, bestVT)
		if err != nil {
			return bestVT, err
		}

		result, err := ils.Solve(ctx, candidatePD, solveOpts)
		if err != nil {
			return bestVT, err
		}
		if ctx.Err() != nil {
			return bestVT, nil
		}
		if !result.Best.IsComplete() || !result.Best.IsFeasible() {
			break
		}

		bestPD, bestVT = candidatePD, candidateVT
	}

	return bestVT, nil
}

// withReducedFleet returns a ProblemData identical to pd except vehicle
// type 0's NumAvailable is one less, and that reduced VehicleType.
func withReducedFleet(pd *model.ProblemData, vt model.VehicleType) (*model.ProblemData, model.VehicleType, error) {
	reduced := vt
	reduced.NumAvailable--

	vehicleTypes := []model.VehicleType{reduced}
	newPD, err := model.NewProblemData(
		pd.Depots(), pd.Clients(), vehicleTypes,
		pd.DistMatrices(), pd.DurMatrices(),
		pd.MutexGroups(), pd.SameVehicleGroups(),
	)
	if err != nil {
		return nil, model.VehicleType{}, err
	}
	return newPD, reduced, nil
}
