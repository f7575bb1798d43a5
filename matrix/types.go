package matrix

// ForbiddenEdge is the sentinel distance/duration value (2^44) marking an
// edge that must never be traversed (used to encode backhaul precedence and
// similar hard forbidden moves). Any edge carrying this value forces
// infeasibility of a route using it, but must never overflow accumulation.
const ForbiddenEdge int64 = 1 << 44

// SaturationLimit is the ceiling every accumulator derived from matrix
// entries clamps to; it is comfortably above any sum of real-world
// instance sizes times ForbiddenEdge but well below int64's own overflow
// point, so repeated additions never wrap.
const SaturationLimit int64 = 1 << 62

// AddSaturating adds b to a, clamping the result to SaturationLimit instead
// of overflowing. Both a and b are assumed non-negative, which holds for
// every quantity (distance, duration, load) this solver accumulates.
func AddSaturating(a, b int64) int64 {
	sum := a + b
	if sum < a || sum < b || sum > SaturationLimit {
		return SaturationLimit
	}
	return sum
}

// MulSaturating multiplies a unit cost by a non-negative quantity, clamping
// to SaturationLimit instead of wrapping. Both arguments are assumed
// non-negative; a raw int64 multiply here could otherwise overflow into a
// negative number well before either operand approaches SaturationLimit on
// its own (e.g. a unit cost applied to a ForbiddenEdge-sized distance).
func MulSaturating(unitCost, quantity int64) int64 {
	if unitCost == 0 || quantity == 0 {
		return 0
	}
	if unitCost > SaturationLimit/quantity {
		return SaturationLimit
	}
	return unitCost * quantity
}
