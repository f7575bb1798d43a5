package model

import "github.com/routeforge/vrpcore/matrix"

// ProblemData is the immutable Vehicle Routing Problem instance: depots,
// clients, vehicle types, one distance/duration matrix pair per profile, and
// client grouping constraints. Construct it with NewProblemData, which
// validates every structural invariant eagerly; a *ProblemData that
// survives construction is safe to share (read-only) across any number of
// concurrent solve calls.
type ProblemData struct {
	depots       []Depot
	clients      []Client
	vehicleTypes []VehicleType

	distMatrices []*matrix.Dense
	durMatrices  []*matrix.Dense

	mutexGroups       []MutexGroup
	sameVehicleGroups []SameVehicleGroup

	loadDim     int
	numProfiles int
}

// NewProblemData validates and constructs a ProblemData. depots, clients,
// and vehicleTypes must be non-empty. distMatrices and durMatrices must have
// one entry per profile referenced by any VehicleType, each shaped
// N×N where N == len(depots)+len(clients), with a zero diagonal and no
// negative entries. Returns *ValidationError on the first violation found,
// in the order depots/vehicles/clients presence, load-dimension agreement,
// matrix shape, then per-field checks.
func NewProblemData(
	depots []Depot,
	clients []Client,
	vehicleTypes []VehicleType,
	distMatrices []*matrix.Dense,
	durMatrices []*matrix.Dense,
	mutexGroups []MutexGroup,
	sameVehicleGroups []SameVehicleGroup,
) (*ProblemData, error) {
	if len(depots) == 0 {
		return nil, validationErrorf(ErrKindNoDepot, "instance has zero depots")
	}
	if len(vehicleTypes) == 0 {
		return nil, validationErrorf(ErrKindNoVehicleType, "instance has zero vehicle types")
	}
	if len(clients) == 0 {
		return nil, validationErrorf(ErrKindNoClient, "instance has zero clients")
	}

	loadDim := len(clients[0].Delivery)
	if loadDim == 0 {
		return nil, validationErrorf(ErrKindLoadDimensionMismatch, "client 0 has zero load dimensions")
	}

	pd := &ProblemData{
		depots:            append([]Depot(nil), depots...),
		clients:           append([]Client(nil), clients...),
		vehicleTypes:      append([]VehicleType(nil), vehicleTypes...),
		distMatrices:      distMatrices,
		durMatrices:       durMatrices,
		mutexGroups:       append([]MutexGroup(nil), mutexGroups...),
		sameVehicleGroups: append([]SameVehicleGroup(nil), sameVehicleGroups...),
		loadDim:           loadDim,
		numProfiles:       len(distMatrices),
	}

	if err := pd.validate(); err != nil {
		return nil, err
	}
	return pd, nil
}

// NumDepots returns the number of depots.
func (pd *ProblemData) NumDepots() int { return len(pd.depots) }

// NumClients returns the number of clients.
func (pd *ProblemData) NumClients() int { return len(pd.clients) }

// NumLocations returns NumDepots()+NumClients(), the matrix dimension N.
func (pd *ProblemData) NumLocations() int { return len(pd.depots) + len(pd.clients) }

// NumVehicleTypes returns the number of distinct vehicle types.
func (pd *ProblemData) NumVehicleTypes() int { return len(pd.vehicleTypes) }

// NumVehicles returns the total dispatchable fleet size: the sum of
// NumAvailable across all vehicle types.
func (pd *ProblemData) NumVehicles() int {
	total := 0
	for _, vt := range pd.vehicleTypes {
		total += vt.NumAvailable
	}
	return total
}

// LoadDim returns the shared load-vector dimension D.
func (pd *ProblemData) LoadDim() int { return pd.loadDim }

// NumProfiles returns the number of distance/duration matrix pairs.
func (pd *ProblemData) NumProfiles() int { return pd.numProfiles }

// Depot returns the depot at location index idx (idx must be < NumDepots()).
func (pd *ProblemData) Depot(idx LocationIndex) Depot { return pd.depots[idx] }

// ClientAt returns the client at the given location index (idx must be in
// [NumDepots(), NumLocations())).
func (pd *ProblemData) ClientAt(idx LocationIndex) Client {
	return pd.clients[int(idx)-len(pd.depots)]
}

// Client returns the client by its 0-based client index (not location index).
func (pd *ProblemData) Client(clientIdx int) Client { return pd.clients[clientIdx] }

// IsDepot reports whether idx refers to a depot rather than a client.
func (pd *ProblemData) IsDepot(idx LocationIndex) bool { return int(idx) < len(pd.depots) }

// ClientLocation converts a 0-based client index into its location index.
func (pd *ProblemData) ClientLocation(clientIdx int) LocationIndex {
	return LocationIndex(len(pd.depots) + clientIdx)
}

// VehicleType returns the vehicle type by index.
func (pd *ProblemData) VehicleType(idx int) VehicleType { return pd.vehicleTypes[idx] }

// VehicleTypes returns all vehicle types.
func (pd *ProblemData) VehicleTypes() []VehicleType { return pd.vehicleTypes }

// MutexGroups returns all mutually-exclusive groups.
func (pd *ProblemData) MutexGroups() []MutexGroup { return pd.mutexGroups }

// SameVehicleGroups returns all same-vehicle groups.
func (pd *ProblemData) SameVehicleGroups() []SameVehicleGroup { return pd.sameVehicleGroups }

// Depots returns all depots.
func (pd *ProblemData) Depots() []Depot { return pd.depots }

// Clients returns all clients.
func (pd *ProblemData) Clients() []Client { return pd.clients }

// DistMatrices returns the distance matrix for every profile, indexed by
// profile number.
func (pd *ProblemData) DistMatrices() []*matrix.Dense { return pd.distMatrices }

// DurMatrices returns the duration matrix for every profile, indexed by
// profile number.
func (pd *ProblemData) DurMatrices() []*matrix.Dense { return pd.durMatrices }

// Distance returns the distance from `from` to `to` under the given profile.
func (pd *ProblemData) Distance(profile int, from, to LocationIndex) int64 {
	return pd.distMatrices[profile].MustAt(int(from), int(to))
}

// Duration returns the travel duration from `from` to `to` under the given profile.
func (pd *ProblemData) Duration(profile int, from, to LocationIndex) int64 {
	return pd.durMatrices[profile].MustAt(int(from), int(to))
}

// HasTimeWindows reports whether any client has a finite time window, i.e.
// whether time-warp bookkeeping can ever be non-trivial for this instance.
func (pd *ProblemData) HasTimeWindows() bool {
	for _, c := range pd.clients {
		if c.Window.HasTimeWindow() {
			return true
		}
	}
	return false
}

// ClientCentroid returns the mean (X, Y) of all client coordinates, depots
// excluded. Returns (0, 0) if there are no clients (never the case for a
// validated ProblemData).
func (pd *ProblemData) ClientCentroid() Coord {
	if len(pd.clients) == 0 {
		return Coord{}
	}
	var sx, sy int64
	for _, c := range pd.clients {
		sx += c.Coord.X
		sy += c.Coord.Y
	}
	n := int64(len(pd.clients))
	return Coord{X: sx / n, Y: sy / n}
}
