package perturb

import "github.com/routeforge/vrpcore/model"

// PerturbationParams bounds Ruin's batch size k, drawn uniformly from
// [Min, Max] each call to PerturbationManager.Shuffle.
type PerturbationParams struct {
	Min int
	Max int
}

// DefaultPerturbationParams returns the reference [1, 25] range.
func DefaultPerturbationParams() PerturbationParams {
	return PerturbationParams{Min: 1, Max: 25}
}

// Validate rejects Min <= 0 or Min > Max.
func (p PerturbationParams) Validate() error {
	if p.Min <= 0 {
		return model.NewConfigurationError("perturb", "min must be > 0, got %d", p.Min)
	}
	if p.Min > p.Max {
		return model.NewConfigurationError("perturb", "min (%d) must be <= max (%d)", p.Min, p.Max)
	}
	return nil
}
