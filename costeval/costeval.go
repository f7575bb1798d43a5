package costeval

import (
	"github.com/routeforge/vrpcore/matrix"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/solution"
)

// CostEvaluator holds the penalty weights a search folds into a solution's
// penalised cost: a per-load-dimension penalty, a time-warp penalty, and a
// distance penalty. Values are fixed at construction; a CostEvaluator is
// safe to share read-only across concurrent evaluations.
type CostEvaluator struct {
	loadPenalties []int64
	twPenalty     int64
	distPenalty   int64
}

// NewCostEvaluator validates and constructs a CostEvaluator. Creation fails
// if any penalty (including any component of loadPenalties) is negative.
func NewCostEvaluator(loadPenalties []int64, twPenalty, distPenalty int64) (*CostEvaluator, error) {
	for i, p := range loadPenalties {
		if p < 0 {
			return nil, model.NewConfigurationError("costeval", "load_penalties[%d] must be >= 0, got %d", i, p)
		}
	}
	if twPenalty < 0 {
		return nil, model.NewConfigurationError("costeval", "tw_penalty must be >= 0, got %d", twPenalty)
	}
	if distPenalty < 0 {
		return nil, model.NewConfigurationError("costeval", "dist_penalty must be >= 0, got %d", distPenalty)
	}
	return &CostEvaluator{
		loadPenalties: append([]int64(nil), loadPenalties...),
		twPenalty:     twPenalty,
		distPenalty:   distPenalty,
	}, nil
}

// PenalisedCost computes the weighted sum of every cost and penalty term
// across sol's routes: dispatch, distance, duration, overtime, and reload
// costs, minus collected prizes, plus load/time-warp/distance penalties.
// Always finite; never collapses to the infeasibility sentinel regardless
// of how badly sol violates its limits. The route terms are combined
// through matrix.AddSaturating/MulSaturating so a pathological route (a
// huge distance times a large unit cost, say) clamps instead of wrapping
// into a negative total; collected prizes are then subtracted with plain
// int64 subtraction.
func (e *CostEvaluator) PenalisedCost(sol *solution.Solution) int64 {
	pd := sol.ProblemData()
	var total int64

	for _, r := range sol.Routes {
		if r.Empty() {
			continue
		}
		total = matrix.AddSaturating(total, e.RouteCost(r.VehicleType(), r.Distance(), r.Duration(), r.TimeWarp(), r.ExcessDistance(), r.Overtime(), r.FixedCost(), r.ReloadCost(), r.ExcessLoad()))
	}

	for loc := range sol.VisitedClients() {
		total -= pd.ClientAt(loc).Prize
	}

	return total
}

// RouteCost prices one route's contribution to PenalisedCost directly from
// its aggregate values (distance, duration, time warp, excess distance,
// overtime, fixed/reload cost, per-dimension excess load) instead of from a
// *solution.Route. A local-search operator that evaluates a candidate
// splice via segment merges can call this with the merged aggregates to
// price the candidate without ever materialising a full Route or Solution.
func (e *CostEvaluator) RouteCost(vt model.VehicleType, distance, duration, timeWarp, excessDistance, overtime, fixedCost, reloadCost int64, excessLoad []int64) int64 {
	var total int64
	total = matrix.AddSaturating(total, fixedCost)
	total = matrix.AddSaturating(total, matrix.MulSaturating(vt.UnitDistanceCost, distance))
	total = matrix.AddSaturating(total, matrix.MulSaturating(vt.UnitDurationCost, duration))
	total = matrix.AddSaturating(total, matrix.MulSaturating(vt.OvertimeUnitCost, overtime))
	total = matrix.AddSaturating(total, reloadCost)
	total = matrix.AddSaturating(total, matrix.MulSaturating(e.twPenalty, timeWarp))
	total = matrix.AddSaturating(total, matrix.MulSaturating(e.distPenalty, excessDistance))
	for d, exc := range excessLoad {
		total = matrix.AddSaturating(total, matrix.MulSaturating(e.loadPenalties[d], exc))
	}
	return total
}

// Cost returns PenalisedCost(sol) if sol is feasible, otherwise
// model.InfeasibleCostFloor: any value at or above that threshold signals
// infeasibility to a caller comparing costs.
func (e *CostEvaluator) Cost(sol *solution.Solution) int64 {
	if !sol.IsFeasible() {
		return model.InfeasibleCostFloor
	}
	return e.PenalisedCost(sol)
}
