package neighbourhood

import "github.com/routeforge/vrpcore/model"

// NeighbourhoodParams configures ComputeNeighbours. Defaults match the
// reference values: weight_wait_time=0.2, weight_time_warp=1.0,
// num_neighbours=60, symmetric_proximity=true, symmetric_neighbours=false.
type NeighbourhoodParams struct {
	WeightWaitTime      float64
	WeightTimeWarp      float64
	NumNeighbours       int
	SymmetricProximity  bool
	SymmetricNeighbours bool
}

// DefaultNeighbourhoodParams returns the reference parameter set.
func DefaultNeighbourhoodParams() NeighbourhoodParams {
	return NeighbourhoodParams{
		WeightWaitTime:      0.2,
		WeightTimeWarp:      1.0,
		NumNeighbours:       60,
		SymmetricProximity:  true,
		SymmetricNeighbours: false,
	}
}

// Validate rejects a non-positive NumNeighbours or a negative weight.
func (p NeighbourhoodParams) Validate() error {
	if p.NumNeighbours <= 0 {
		return model.NewConfigurationError("neighbourhood", "num_neighbours must be > 0, got %d", p.NumNeighbours)
	}
	if p.WeightWaitTime < 0 {
		return model.NewConfigurationError("neighbourhood", "weight_wait_time must be >= 0, got %f", p.WeightWaitTime)
	}
	if p.WeightTimeWarp < 0 {
		return model.NewConfigurationError("neighbourhood", "weight_time_warp must be >= 0, got %f", p.WeightTimeWarp)
	}
	return nil
}
