package fleetmin

import "github.com/routeforge/vrpcore/model"

// ceilDiv returns ceil(a/b) for non-negative a and positive b, 0 if b <= 0
// and a == 0, or a very large sentinel if b <= 0 and a > 0 (no finite
// number of trips of a zero-capacity vehicle can ever carry positive
// demand, so no reduction below the current fleet size is safe).
func ceilDiv(a, b int64) int64 {
	if b <= 0 {
		if a == 0 {
			return 0
		}
		return 1 << 32
	}
	return (a + b - 1) / b
}

// lowerBound computes a lower bound on the number of vehicles of vt needed
// to serve pd's clients: per load dimension d, the vehicle
// count implied by total delivery demand and, separately, by total pickup
// demand, against an effective per-vehicle capacity of
// (vt.MaxReloads+1)*vt.Capacity[d] (multi-trip vehicles refill at each
// reload). The overall bound is the maximum across every dimension and
// both demand kinds.
func lowerBound(pd *model.ProblemData, vt model.VehicleType) int64 {
	loadDim := pd.LoadDim()
	sumDelivery := make([]int64, loadDim)
	sumPickup := make([]int64, loadDim)
	for _, c := range pd.Clients() {
		for d := 0; d < loadDim; d++ {
			sumDelivery[d] += c.Delivery[d]
			sumPickup[d] += c.Pickup[d]
		}
	}

	trips := int64(vt.MaxReloads + 1)
	var bound int64
	for d := 0; d < loadDim; d++ {
		effCap := vt.Capacity[d] * trips
		if b := ceilDiv(sumDelivery[d], effCap); b > bound {
			bound = b
		}
		if b := ceilDiv(sumPickup[d], effCap); b > bound {
			bound = b
		}
	}
	if bound < 1 {
		bound = 1
	}
	return bound
}
