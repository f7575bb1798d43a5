package model

// Infinity represents an unbounded time-window edge, max-distance, or
// max-duration attribute. The driver and cost evaluator must treat it as
// non-binding rather than a real value to accumulate against.
const Infinity int64 = 1<<63 - 1

// InfeasibleCostFloor is the smallest value solution_cost ever returns for
// an infeasible solution; any value at or above this threshold means
// "infeasible".
const InfeasibleCostFloor int64 = 1 << 61

// LocationIndex identifies a depot or client by its position in the combined
// location arena: depots occupy [0, NumDepots), clients occupy
// [NumDepots, NumDepots+NumClients).
type LocationIndex int32

// Coord is an integer 2D coordinate.
type Coord struct {
	X, Y int64
}

// TimeWindow is a closed interval [Early, Late]; Late == Infinity means
// unbounded.
type TimeWindow struct {
	Early, Late int64
}

// HasTimeWindow reports whether the window is anything other than
// fully unbounded, i.e. whether it can ever bind a route's schedule.
func (w TimeWindow) HasTimeWindow() bool {
	return w.Late < Infinity
}

// Depot is a fixed location usable as a vehicle start/end point or as a
// mid-route reload point.
type Depot struct {
	Coord          Coord
	Window         TimeWindow // optional; Late == Infinity means none
	ServiceTime    int64
	ReloadCost     int64
}

// Client is a location with delivery/pickup demand, a service duration, a
// time window, a release time, and optional grouping/optionality flags.
type Client struct {
	Coord       Coord
	Delivery    []int64 // length D, >= 0
	Pickup      []int64 // length D, >= 0
	ServiceTime int64
	Window      TimeWindow
	ReleaseTime int64

	// Optional, if true, marks the client as skippable in exchange for
	// forfeiting Prize (prize-collecting variant).
	Optional bool
	Prize    int64

	// MutexGroup, if >= 0, is the index into ProblemData.MutexGroups this
	// client belongs to. -1 means no mutually-exclusive group.
	MutexGroup int

	// SameVehicleGroup, if >= 0, is the index into
	// ProblemData.SameVehicleGroups this client belongs to. -1 means none.
	SameVehicleGroup int
}

// Required reports whether this client must appear in every feasible
// solution (the negation of Optional).
func (c Client) Required() bool { return !c.Optional }

// VehicleType describes one class of vehicle and how many are available.
//
// VehicleID names the physical vehicle a VehicleType entry belongs to, so
// that multiple VehicleType entries can represent distinct shifts of one
// physical vehicle without conflating identity with the EquivalenceGroup
// label. When a caller has no notion of multi-shift vehicles, VehicleID may
// simply be set to a value unique to this VehicleType.
type VehicleType struct {
	Capacity []int64 // length D, >= 0
	Shift    TimeWindow

	MaxDuration int64 // Infinity if unbounded
	MaxDistance int64 // Infinity if unbounded

	FixedCost        int64
	UnitDistanceCost int64
	UnitDurationCost int64

	MaxOvertime      int64
	OvertimeUnitCost int64

	StartDepot LocationIndex
	EndDepot   LocationIndex
	Profile    int

	ReloadDepots []LocationIndex
	MaxReloads   int

	InitialLoad []int64 // length D

	EquivalenceGroup string
	VehicleID        string

	NumAvailable int
}

// MutexGroup is a set of clients of which at most one (or, if Required,
// exactly one) may be visited.
type MutexGroup struct {
	Members  []LocationIndex
	Required bool
}

// SameVehicleGroup is a set of clients that, if visited, must all be
// assigned to routes belonging to the same physical vehicle (matched by
// VehicleType.VehicleID across that vehicle's possibly-many VehicleType
// entries and possibly-many routes/trips).
type SameVehicleGroup struct {
	Members []LocationIndex
}
