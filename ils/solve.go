package ils

import (
	"context"
	"time"

	"github.com/routeforge/vrpcore/costeval"
	"github.com/routeforge/vrpcore/localsearch"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/neighbourhood"
	"github.com/routeforge/vrpcore/perturb"
	"github.com/routeforge/vrpcore/rng"
	"github.com/routeforge/vrpcore/solution"
)

// Solve runs the iterated-local-search loop to completion against pd: build
// an initial Solution, then repeatedly perturb the incumbent, re-optimise,
// and accept on improvement until opts.StoppingCriterion fires. ctx is
// threaded into every localsearch.Run call so a cancelled or
// deadline-exceeded context stops a mid-iteration operator sweep promptly,
// in addition to opts.StoppingCriterion being polled once per outer
// iteration.
//
// The initial Solution comes from solution.CreateRandomSolution, the only
// constructor that can place required clients into routes at all —
// LocalSearch's operators rearrange or remove already-placed stops, they
// never insert a required client into an empty route — and that assignment
// is then handed to LocalSearch to polish before the perturb loop begins.
// See DESIGN.md for why this construction strategy was chosen.
func Solve(ctx context.Context, pd *model.ProblemData, opts SolveOptions) (*Result, error) {
	if err := opts.validate(pd); err != nil {
		return nil, err
	}

	eval, err := costeval.NewCostEvaluator(opts.LoadPenalties, opts.TimeWarpPenalty, opts.DistancePenalty)
	if err != nil {
		return nil, err
	}
	nb, err := neighbourhood.ComputeNeighbours(pd, opts.NeighbourhoodParams)
	if err != nil {
		return nil, err
	}
	mgr, err := perturb.NewPerturbationManager(opts.PerturbationParams)
	if err != nil {
		return nil, err
	}

	gen := rng.New(opts.Seed)
	initial := solution.CreateRandomSolution(pd, opts.Seed)
	best := localsearch.Run(ctx, initial, nb, eval, opts.LocalSearchParams)

	start := time.Now()
	var stats []StatRecord
	iter := 0

	for {
		elapsed := time.Since(start)
		if opts.StoppingCriterion.ShouldStop(iter, elapsed, eval.Cost(best)) {
			break
		}
		if ctx.Err() != nil {
			break
		}

		currentCost := eval.Cost(best)
		currentFeasible := best.IsFeasible()

		candidate := mgr.Perturb(best, gen)
		candidate = localsearch.Run(ctx, candidate, nb, eval, opts.LocalSearchParams)
		candidateCost := eval.Cost(candidate)
		candidateFeasible := candidate.IsFeasible()

		if candidateFeasible && candidateCost < currentCost {
			best = candidate
		}
		mgr.Shuffle(gen)
		iter++

		if opts.CollectStats {
			stats = append(stats, StatRecord{
				CurrentCost: currentCost, CurrentFeasible: currentFeasible,
				CandidateCost: candidateCost, CandidateFeasible: candidateFeasible,
				BestCost: eval.Cost(best), BestFeasible: best.IsFeasible(),
				RuntimeSeconds: time.Since(start).Seconds(),
			})
		}
	}

	return &Result{Best: best, Stats: stats, NumIterations: iter, Runtime: time.Since(start)}, nil
}
