package solution

import (
	"github.com/routeforge/vrpcore/matrix"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/segment"
)

// StopSchedule records the service window actually used at one explicit
// stop (a client visit or a reload depot visit) during Route.rebuild. The
// implicit start/end depot visits do not get a StopSchedule entry.
type StopSchedule struct {
	Location     model.LocationIndex
	Trip         int
	StartService int64
	EndService   int64
}

// Route is one vehicle's ordered sequence of visits: a dispatch of a single
// VehicleType instance, numbered by VehicleInstance among that type's
// NumAvailable copies so that same-vehicle-group and fleet-minimisation
// bookkeeping can tell two routes of the same type apart.
//
// Stops holds client and reload-depot location indices only; the start and
// end depot of the route are implicit (taken from the VehicleType) and are
// never present in Stops. IsDepot is a parallel slice marking which Stops
// entries are mid-route reload depots rather than clients — the tagged
// two-slice shape keeps the hot path over Stops branch-free for the common
// case (no reloads) and avoids a pointer-chasing stop node per visit.
type Route struct {
	pd              *model.ProblemData
	vehicleTypeIdx  int
	vehicleInstance int

	Stops   []model.LocationIndex
	IsDepot []bool

	dirty   bool
	version int

	distance       int64
	duration       int64
	timeWarp       int64
	excessDistance int64
	forbiddenEdge  bool
	deliveryLoad   []int64
	pickupLoad     []int64
	excessLoad     []int64
	fixedCost      int64
	reloadCost     int64
	serviceTime    int64
	waitTime       int64
	schedule       []StopSchedule
}

// NewRoute returns an empty route dispatching the vehicleInstance-th copy
// (0-based, < VehicleType(vehicleTypeIdx).NumAvailable) of vehicle type
// vehicleTypeIdx.
func NewRoute(pd *model.ProblemData, vehicleTypeIdx, vehicleInstance int) *Route {
	return &Route{pd: pd, vehicleTypeIdx: vehicleTypeIdx, vehicleInstance: vehicleInstance, dirty: true}
}

// VehicleTypeIndex returns the index of this route's vehicle type.
func (r *Route) VehicleTypeIndex() int { return r.vehicleTypeIdx }

// VehicleInstance returns which copy of the vehicle type this route dispatches.
func (r *Route) VehicleInstance() int { return r.vehicleInstance }

// VehicleType returns this route's full vehicle type record.
func (r *Route) VehicleType() model.VehicleType { return r.pd.VehicleType(r.vehicleTypeIdx) }

// Len returns the number of explicit stops (clients plus reload depots).
func (r *Route) Len() int { return len(r.Stops) }

// Empty reports whether the route dispatches no vehicle (no stops at all).
func (r *Route) Empty() bool { return len(r.Stops) == 0 }

// NumTrips returns the number of trips the route is partitioned into by its
// reload-depot visits: one trip if there are none, one more per reload.
func (r *Route) NumTrips() int {
	trips := 1
	for _, d := range r.IsDepot {
		if d {
			trips++
		}
	}
	return trips
}

// InsertAt splices loc into the route at position pos (0 <= pos <= Len()).
func (r *Route) InsertAt(pos int, loc model.LocationIndex, isReload bool) {
	r.Stops = append(r.Stops, 0)
	copy(r.Stops[pos+1:], r.Stops[pos:])
	r.Stops[pos] = loc

	r.IsDepot = append(r.IsDepot, false)
	copy(r.IsDepot[pos+1:], r.IsDepot[pos:])
	r.IsDepot[pos] = isReload

	r.dirty = true
	r.version++
}

// Append inserts loc at the end of the route.
func (r *Route) Append(loc model.LocationIndex, isReload bool) {
	r.InsertAt(len(r.Stops), loc, isReload)
}

// RemoveAt deletes and returns the stop at position pos.
func (r *Route) RemoveAt(pos int) model.LocationIndex {
	loc := r.Stops[pos]
	r.Stops = append(r.Stops[:pos], r.Stops[pos+1:]...)
	r.IsDepot = append(r.IsDepot[:pos], r.IsDepot[pos+1:]...)
	r.dirty = true
	r.version++
	return loc
}

// MarkDirty forces the next aggregate access to rebuild cached aggregates.
// Callers that mutate Stops/IsDepot directly (rather than through
// InsertAt/Append/RemoveAt) must call this themselves.
func (r *Route) MarkDirty() { r.dirty = true; r.version++ }

// Version returns a counter that increases on every structural mutation
// (InsertAt, RemoveAt, MarkDirty). Local search uses it to skip
// re-evaluating a route+client pair that has not changed since it was last
// tested.
func (r *Route) Version() int { return r.version }

// Clone returns an independent copy of r. Cached aggregates are copied
// as-is when clean, so a clone of an already-rebuilt route costs one set of
// slice copies and no recomputation.
func (r *Route) Clone() *Route {
	cp := &Route{
		pd:              r.pd,
		vehicleTypeIdx:  r.vehicleTypeIdx,
		vehicleInstance: r.vehicleInstance,
		Stops:           append([]model.LocationIndex(nil), r.Stops...),
		IsDepot:         append([]bool(nil), r.IsDepot...),
		dirty:           r.dirty,
		version:         r.version,
	}
	if !r.dirty {
		cp.distance = r.distance
		cp.duration = r.duration
		cp.timeWarp = r.timeWarp
		cp.excessDistance = r.excessDistance
		cp.forbiddenEdge = r.forbiddenEdge
		cp.fixedCost = r.fixedCost
		cp.reloadCost = r.reloadCost
		cp.serviceTime = r.serviceTime
		cp.waitTime = r.waitTime
		cp.deliveryLoad = append([]int64(nil), r.deliveryLoad...)
		cp.pickupLoad = append([]int64(nil), r.pickupLoad...)
		cp.excessLoad = append([]int64(nil), r.excessLoad...)
		cp.schedule = append([]StopSchedule(nil), r.schedule...)
	}
	return cp
}

func (r *Route) ensure() {
	if r.dirty {
		r.rebuild()
		r.dirty = false
	}
}

// Distance returns the total travelled distance, including the legs to and
// from the implicit start/end depot.
func (r *Route) Distance() int64 { r.ensure(); return r.distance }

// Duration returns the total elapsed time: travel plus wait plus service,
// start depot to end depot.
func (r *Route) Duration() int64 { r.ensure(); return r.duration }

// TimeWarp returns the accumulated lateness pushed back in time to keep the
// schedule nominally consistent.
func (r *Route) TimeWarp() int64 { r.ensure(); return r.timeWarp }

// ExcessDistance returns how far Distance exceeds the vehicle type's
// MaxDistance (0 if within bounds or MaxDistance is model.Infinity).
func (r *Route) ExcessDistance() int64 { r.ensure(); return r.excessDistance }

// UsesForbiddenEdge reports whether the route traverses any edge carrying
// matrix.ForbiddenEdge, regardless of MaxDistance: a forbidden edge makes a
// route infeasible on its own, not merely as a contributor to excess
// distance.
func (r *Route) UsesForbiddenEdge() bool { r.ensure(); return r.forbiddenEdge }

// DeliveryLoad returns, per load dimension, the total delivery demand
// served by the route (summed across all trips).
func (r *Route) DeliveryLoad() []int64 { r.ensure(); return r.deliveryLoad }

// PickupLoad returns, per load dimension, the total pickup demand collected
// by the route (summed across all trips).
func (r *Route) PickupLoad() []int64 { r.ensure(); return r.pickupLoad }

// ExcessLoad returns, per load dimension, the sum over all trips of how far
// that trip's peak instantaneous load exceeded vehicle capacity.
func (r *Route) ExcessLoad() []int64 { r.ensure(); return r.excessLoad }

// FixedCost returns the vehicle type's fixed dispatch cost if the route is
// non-empty, else 0.
func (r *Route) FixedCost() int64 { r.ensure(); return r.fixedCost }

// ReloadCost returns the sum of per-visit reload costs for this route's
// reload-depot stops.
func (r *Route) ReloadCost() int64 { r.ensure(); return r.reloadCost }

// ServiceTime returns the total service time spent at depots and clients.
func (r *Route) ServiceTime() int64 { r.ensure(); return r.serviceTime }

// WaitTime returns the total time spent waiting for a time window to open.
func (r *Route) WaitTime() int64 { r.ensure(); return r.waitTime }

// CheapestInsertionPos finds the gap in Stops (0..Len()) whose insertion of
// loc adds the least travelled distance, measured against the route's own
// profile and (for the empty-route or boundary cases) its start/end depot.
// Used by cheapest-insertion reinsertion (ruin-and-recreate) and by
// local-search operators that need a concrete insertion point to evaluate.
func (r *Route) CheapestInsertionPos(loc model.LocationIndex) (pos int, deltaDistance int64) {
	vt := r.VehicleType()
	profile := vt.Profile
	pd := r.pd

	prev := vt.StartDepot
	best := int64(-1)
	bestPos := 0
	for i := 0; i <= len(r.Stops); i++ {
		next := vt.EndDepot
		if i < len(r.Stops) {
			next = r.Stops[i]
		}
		delta := matrix.AddSaturating(pd.Distance(profile, prev, loc), pd.Distance(profile, loc, next))
		delta -= pd.Distance(profile, prev, next)
		if best < 0 || delta < best {
			best, bestPos = delta, i
		}
		if i < len(r.Stops) {
			prev = r.Stops[i]
		}
	}
	return bestPos, best
}

// Schedule returns the per-stop service timeline computed by the last
// rebuild, one entry per explicit stop in route order.
func (r *Route) Schedule() []StopSchedule { r.ensure(); return r.schedule }

// Overtime returns how far Duration exceeds the vehicle type's MaxDuration
// (0 if within bounds or MaxDuration is model.Infinity).
func (r *Route) Overtime() int64 {
	vt := r.VehicleType()
	d := r.Duration()
	if vt.MaxDuration >= model.Infinity || d <= vt.MaxDuration {
		return 0
	}
	return d - vt.MaxDuration
}

func locationSchedule(pd *model.ProblemData, loc model.LocationIndex) (serviceTime int64, window model.TimeWindow, releaseTime int64) {
	if pd.IsDepot(loc) {
		d := pd.Depot(loc)
		return d.ServiceTime, d.Window, 0
	}
	c := pd.ClientAt(loc)
	return c.ServiceTime, c.Window, c.ReleaseTime
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// rebuild recomputes every cached aggregate in one linear pass over Stops,
// by forward-simulating the route's schedule: at each stop, arrival is
// last-departure plus travel time, wait absorbs an early arrival, and any
// late arrival becomes time warp while the simulated clock still advances
// as though service started on arrival (time warp is bookkeeping, not a
// clock rewind). Load is tracked per trip (reset at every reload depot and
// at the end of the route) so capacity excess is charged per trip, matching
// a reload replenishing the vehicle.
func (r *Route) rebuild() {
	pd := r.pd
	vt := pd.VehicleType(r.vehicleTypeIdx)
	loadDim := pd.LoadDim()

	r.deliveryLoad = make([]int64, loadDim)
	r.pickupLoad = make([]int64, loadDim)
	r.excessLoad = make([]int64, loadDim)
	r.schedule = r.schedule[:0]
	r.distance, r.duration, r.timeWarp, r.excessDistance = 0, 0, 0, 0
	r.fixedCost, r.reloadCost, r.serviceTime, r.waitTime = 0, 0, 0, 0
	r.forbiddenEdge = false

	if len(r.Stops) == 0 {
		return
	}

	r.fixedCost = vt.FixedCost

	startDepot := pd.Depot(vt.StartDepot)
	r.serviceTime = startDepot.ServiceTime
	clock := startDepot.Window.Early

	tripLoad := make([]segment.LoadSegment, loadDim)
	for d := 0; d < loadDim; d++ {
		if len(vt.InitialLoad) > 0 {
			tripLoad[d] = tripLoad[d].WithInitialLoad(vt.InitialLoad[d])
		}
	}

	tripIdx := 0
	finishTrip := func() {
		for d := 0; d < loadDim; d++ {
			r.deliveryLoad[d] = matrix.AddSaturating(r.deliveryLoad[d], tripLoad[d].Delivery)
			r.pickupLoad[d] = matrix.AddSaturating(r.pickupLoad[d], tripLoad[d].Pickup)
			r.excessLoad[d] = matrix.AddSaturating(r.excessLoad[d], tripLoad[d].ExcessLoad(vt.Capacity[d]))
			tripLoad[d] = segment.LoadSegment{}
		}
	}

	curLoc := vt.StartDepot
	visit := func(loc model.LocationIndex, isReload bool) {
		edgeDist := pd.Distance(vt.Profile, curLoc, loc)
		edgeDur := pd.Duration(vt.Profile, curLoc, loc)
		if edgeDist >= matrix.ForbiddenEdge || edgeDur >= matrix.ForbiddenEdge {
			r.forbiddenEdge = true
		}
		r.distance = matrix.AddSaturating(r.distance, edgeDist)

		serviceTime, window, releaseTime := locationSchedule(pd, loc)
		earliestStart := maxI64(window.Early, releaseTime)
		arrival := matrix.AddSaturating(clock, edgeDur)
		wait := maxI64(0, earliestStart-arrival)
		late := maxI64(0, arrival-window.Late)
		r.timeWarp = matrix.AddSaturating(r.timeWarp, late)
		r.waitTime = matrix.AddSaturating(r.waitTime, wait)

		serviceStart := matrix.AddSaturating(arrival, wait)
		serviceEnd := matrix.AddSaturating(serviceStart, serviceTime)
		r.duration = matrix.AddSaturating(r.duration, matrix.AddSaturating(edgeDur, matrix.AddSaturating(wait, serviceTime)))
		r.serviceTime = matrix.AddSaturating(r.serviceTime, serviceTime)

		if !pd.IsDepot(loc) {
			c := pd.ClientAt(loc)
			for d := 0; d < loadDim; d++ {
				tripLoad[d] = segment.MergeLoad(tripLoad[d], segment.NewLoadSegment(c.Delivery[d], c.Pickup[d]))
			}
		}

		r.schedule = append(r.schedule, StopSchedule{Location: loc, Trip: tripIdx, StartService: serviceStart, EndService: serviceEnd})

		if isReload {
			r.reloadCost = matrix.AddSaturating(r.reloadCost, pd.Depot(loc).ReloadCost)
			finishTrip()
			tripIdx++
		}

		clock = serviceEnd
		curLoc = loc
	}

	for i, loc := range r.Stops {
		visit(loc, r.IsDepot[i])
	}

	endDepot := pd.Depot(vt.EndDepot)
	edgeDist := pd.Distance(vt.Profile, curLoc, vt.EndDepot)
	edgeDur := pd.Duration(vt.Profile, curLoc, vt.EndDepot)
	if edgeDist >= matrix.ForbiddenEdge || edgeDur >= matrix.ForbiddenEdge {
		r.forbiddenEdge = true
	}
	r.distance = matrix.AddSaturating(r.distance, edgeDist)
	arrival := matrix.AddSaturating(clock, edgeDur)
	wait := maxI64(0, endDepot.Window.Early-arrival)
	late := maxI64(0, arrival-endDepot.Window.Late)
	r.timeWarp = matrix.AddSaturating(r.timeWarp, late)
	r.waitTime = matrix.AddSaturating(r.waitTime, wait)
	r.serviceTime = matrix.AddSaturating(r.serviceTime, endDepot.ServiceTime)
	r.duration = matrix.AddSaturating(r.duration, matrix.AddSaturating(edgeDur, matrix.AddSaturating(wait, endDepot.ServiceTime)))

	finishTrip()

	if vt.MaxDistance < model.Infinity {
		r.excessDistance = maxI64(0, r.distance-vt.MaxDistance)
	}
}
