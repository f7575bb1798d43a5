package ils

import (
	"github.com/routeforge/vrpcore/localsearch"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/neighbourhood"
	"github.com/routeforge/vrpcore/perturb"
	"github.com/routeforge/vrpcore/stopcrit"
)

// SolveOptions configures one Solve call. LoadPenalties must have length
// pd.LoadDim(); all three penalty fields and the neighbourhood/perturbation
// parameters are validated up front so a misconfiguration is reported
// before any search work happens (the same eager-validate discipline
// costeval.NewCostEvaluator and neighbourhood.NeighbourhoodParams.Validate
// already use).
type SolveOptions struct {
	Seed uint64

	NeighbourhoodParams neighbourhood.NeighbourhoodParams
	LocalSearchParams   localsearch.Params
	PerturbationParams  perturb.PerturbationParams

	LoadPenalties   []int64
	TimeWarpPenalty int64
	DistancePenalty int64

	// StoppingCriterion is required; Solve returns a ConfigurationError if
	// it is nil.
	StoppingCriterion stopcrit.Criterion

	// CollectStats enables per-iteration statistics recording in
	// Result.Stats. Disable for a long run where only the final best
	// Solution matters, to avoid accumulating one record per iteration.
	CollectStats bool
}

// DefaultSolveOptions returns reasonable defaults for an instance with the
// given load dimension: default neighbourhood and perturbation parameters,
// exhaustive best-improving local search, zero load/time-warp/distance
// penalties (callers with soft constraints should set these explicitly),
// and no stopping criterion (the caller must set one).
func DefaultSolveOptions(loadDim int) SolveOptions {
	return SolveOptions{
		NeighbourhoodParams: neighbourhood.DefaultNeighbourhoodParams(),
		LocalSearchParams:   localsearch.DefaultParams(),
		PerturbationParams:  perturb.DefaultPerturbationParams(),
		LoadPenalties:       make([]int64, loadDim),
	}
}

// validate checks SolveOptions against pd, returning a *model.ConfigurationError
// for the first problem found.
func (o SolveOptions) validate(pd *model.ProblemData) error {
	if len(o.LoadPenalties) != pd.LoadDim() {
		return model.NewConfigurationError("ils", "load penalties length %d, want %d", len(o.LoadPenalties), pd.LoadDim())
	}
	for d, p := range o.LoadPenalties {
		if p < 0 {
			return model.NewConfigurationError("ils", "load penalty[%d] must be >= 0, got %d", d, p)
		}
	}
	if o.TimeWarpPenalty < 0 {
		return model.NewConfigurationError("ils", "time-warp penalty must be >= 0, got %d", o.TimeWarpPenalty)
	}
	if o.DistancePenalty < 0 {
		return model.NewConfigurationError("ils", "distance penalty must be >= 0, got %d", o.DistancePenalty)
	}
	if err := o.NeighbourhoodParams.Validate(); err != nil {
		return err
	}
	if err := o.PerturbationParams.Validate(); err != nil {
		return err
	}
	if o.StoppingCriterion == nil {
		return model.NewConfigurationError("ils", "StoppingCriterion is required")
	}
	return nil
}
