package segment

import "github.com/routeforge/vrpcore/matrix"

// LoadSegment summarises delivery and pickup demand for one load dimension
// over a contiguous route chunk, including the maximum instantaneous load
// the vehicle must carry while traversing it.
//
// MaxLoad is the peak of: (demand still aboard waiting to be delivered to a
// location further along the chunk) + (demand already picked up earlier in
// the chunk, riding along until the end depot). Tracking it this way — via
// Delivery, Pickup, and MaxLoad alone — is what makes Merge an O(1),
// associative composition: the peak load inside a merged chunk is either the
// left piece's peak (with the right piece's full delivery still to come
// aboard) or the right piece's peak (with the left piece's full pickup
// already aboard), whichever is larger.
type LoadSegment struct {
	Delivery int64
	Pickup   int64
	MaxLoad  int64
}

// NewLoadSegment returns the base segment for a single location demanding
// `delivery` dropped off and `pickup` collected there.
func NewLoadSegment(delivery, pickup int64) LoadSegment {
	max := delivery
	if pickup > max {
		max = pickup
	}
	return LoadSegment{Delivery: delivery, Pickup: pickup, MaxLoad: max}
}

// MergeLoad appends b after a (no edge argument: load has no travel-time
// analogue). Associative by construction — see the MaxLoad comment above.
func MergeLoad(a, b LoadSegment) LoadSegment {
	left := matrix.AddSaturating(a.MaxLoad, b.Delivery)
	right := matrix.AddSaturating(a.Pickup, b.MaxLoad)
	max := left
	if right > max {
		max = right
	}
	return LoadSegment{
		Delivery: matrix.AddSaturating(a.Delivery, b.Delivery),
		Pickup:   matrix.AddSaturating(a.Pickup, b.Pickup),
		MaxLoad:  max,
	}
}

// ExcessLoad reports how far MaxLoad exceeds capacity, or 0 if not exceeded.
func (l LoadSegment) ExcessLoad(capacity int64) int64 {
	if l.MaxLoad <= capacity {
		return 0
	}
	return l.MaxLoad - capacity
}

// WithInitialLoad prepends `initial` units already aboard at the very start
// of the route (a vehicle's InitialLoad) to segment l, which must be the
// segment for the whole route. It is equivalent to
// MergeLoad(NewLoadSegment(0, initial), l) but avoids allocating the
// zero-delivery base segment at every call site.
func (l LoadSegment) WithInitialLoad(initial int64) LoadSegment {
	if initial == 0 {
		return l
	}
	return MergeLoad(LoadSegment{Pickup: initial, MaxLoad: initial}, l)
}
