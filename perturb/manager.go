package perturb

import (
	"github.com/routeforge/vrpcore/rng"
	"github.com/routeforge/vrpcore/solution"
)

// PerturbationManager owns the current Ruin batch size and redraws it from
// PerturbationParams on demand. With Min == Max the count is constant;
// Shuffle still draws from (and advances) the generator but always yields
// Min.
type PerturbationManager struct {
	params PerturbationParams
	count  int
}

// NewPerturbationManager validates params and seeds count at params.Min.
func NewPerturbationManager(params PerturbationParams) (*PerturbationManager, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &PerturbationManager{params: params, count: params.Min}, nil
}

// Count returns the current number-of-perturbations draw.
func (m *PerturbationManager) Count() int { return m.count }

// Shuffle redraws Count uniformly from [Min, Max] using gen.
func (m *PerturbationManager) Shuffle(gen *rng.Generator) {
	span := uint32(m.params.Max - m.params.Min + 1)
	m.count = m.params.Min + int(gen.Randint(span))
}

// Perturb selects one of the two restart operators with equal probability
// and applies it to sol: Ruin with the manager's current Count, or
// Route-swap. Route-swap is a no-op on a Solution with fewer than two
// dispatched routes, in which case Perturb falls back to Ruin so every call
// actually perturbs sol.
func (m *PerturbationManager) Perturb(sol *solution.Solution, gen *rng.Generator) *solution.Solution {
	if gen.Randint(2) == 0 {
		return Ruin(sol, gen, m.count)
	}
	if cand, ok := RouteSwap(sol, gen); ok {
		return cand
	}
	return Ruin(sol, gen, m.count)
}
