package model

import "github.com/routeforge/vrpcore/matrix"

// validate runs every structural check against pd, in a fixed order so
// error precedence is deterministic across callers.
func (pd *ProblemData) validate() error {
	if err := pd.validateLoadDimensions(); err != nil {
		return err
	}
	if err := pd.validateMatrices(); err != nil {
		return err
	}
	if err := pd.validateDepots(); err != nil {
		return err
	}
	if err := pd.validateClients(); err != nil {
		return err
	}
	if err := pd.validateVehicleTypes(); err != nil {
		return err
	}
	if err := pd.validateGroups(); err != nil {
		return err
	}
	return nil
}

func (pd *ProblemData) validateLoadDimensions() error {
	for i, c := range pd.clients {
		if len(c.Delivery) != pd.loadDim {
			return validationErrorf(ErrKindLoadDimensionMismatch,
				"client %d delivery has %d dimensions, want %d", i, len(c.Delivery), pd.loadDim)
		}
		if len(c.Pickup) != pd.loadDim {
			return validationErrorf(ErrKindLoadDimensionMismatch,
				"client %d pickup has %d dimensions, want %d", i, len(c.Pickup), pd.loadDim)
		}
	}
	for i, vt := range pd.vehicleTypes {
		if len(vt.Capacity) != pd.loadDim {
			return validationErrorf(ErrKindLoadDimensionMismatch,
				"vehicle type %d capacity has %d dimensions, want %d", i, len(vt.Capacity), pd.loadDim)
		}
		if vt.InitialLoad != nil && len(vt.InitialLoad) != pd.loadDim {
			return validationErrorf(ErrKindLoadDimensionMismatch,
				"vehicle type %d initial load has %d dimensions, want %d", i, len(vt.InitialLoad), pd.loadDim)
		}
	}
	return nil
}

func (pd *ProblemData) validateMatrices() error {
	if len(pd.distMatrices) != pd.numProfiles || len(pd.durMatrices) != pd.numProfiles {
		return validationErrorf(ErrKindProfileCount,
			"have %d distance and %d duration matrices for %d profiles",
			len(pd.distMatrices), len(pd.durMatrices), pd.numProfiles)
	}
	n := pd.NumLocations()
	for p := 0; p < pd.numProfiles; p++ {
		for _, m := range []*matrix.Dense{pd.distMatrices[p], pd.durMatrices[p]} {
			if err := matrix.ValidateSquare(m); err != nil || m.Size() != n {
				return validationErrorf(ErrKindMatrixShape,
					"profile %d matrix is not %d×%d", p, n, n)
			}
			if err := matrix.ValidateZeroDiagonal(m); err != nil {
				return validationErrorf(ErrKindMatrixDiagonal, "profile %d: %v", p, err)
			}
			if err := matrix.ValidateNonNegative(m); err != nil {
				return validationErrorf(ErrKindMatrixShape, "profile %d: %v", p, err)
			}
		}
	}
	return nil
}

func (pd *ProblemData) validateDepots() error {
	for i, d := range pd.depots {
		if d.ServiceTime < 0 {
			return validationErrorf(ErrKindNegativeServiceDuration, "depot %d has negative service time", i)
		}
		if d.Window.Late < d.Window.Early {
			return validationErrorf(ErrKindTimeWindow, "depot %d: tw_late < tw_early", i)
		}
	}
	return nil
}

func (pd *ProblemData) validateClients() error {
	for i, c := range pd.clients {
		if c.ServiceTime < 0 {
			return validationErrorf(ErrKindNegativeServiceDuration, "client %d has negative service time", i)
		}
		for d, v := range c.Delivery {
			if v < 0 {
				return validationErrorf(ErrKindNegativeLoad, "client %d delivery[%d] is negative", i, d)
			}
		}
		for d, v := range c.Pickup {
			if v < 0 {
				return validationErrorf(ErrKindNegativeLoad, "client %d pickup[%d] is negative", i, d)
			}
		}
		if c.Window.Late < c.Window.Early {
			return validationErrorf(ErrKindTimeWindow, "client %d: tw_late < tw_early", i)
		}
		if c.ReleaseTime > c.Window.Late {
			return validationErrorf(ErrKindReleaseTime, "client %d: release_time > tw_late", i)
		}
	}
	return nil
}

func (pd *ProblemData) validateVehicleTypes() error {
	numDepots := pd.NumDepots()
	for i, vt := range pd.vehicleTypes {
		if vt.NumAvailable == 0 {
			return validationErrorf(ErrKindNumAvailable, "vehicle type %d has num_available == 0", i)
		}
		for d, v := range vt.Capacity {
			if v < 0 {
				return validationErrorf(ErrKindNegativeCapacity, "vehicle type %d capacity[%d] is negative", i, d)
			}
		}
		if int(vt.StartDepot) < 0 || int(vt.StartDepot) >= numDepots {
			return validationErrorf(ErrKindInvalidDepotIndex, "vehicle type %d start depot %d out of range", i, vt.StartDepot)
		}
		if int(vt.EndDepot) < 0 || int(vt.EndDepot) >= numDepots {
			return validationErrorf(ErrKindInvalidDepotIndex, "vehicle type %d end depot %d out of range", i, vt.EndDepot)
		}
		if vt.Profile < 0 || vt.Profile >= pd.numProfiles {
			return validationErrorf(ErrKindInvalidProfile, "vehicle type %d profile %d out of range", i, vt.Profile)
		}
		for _, rd := range vt.ReloadDepots {
			if int(rd) < 0 || int(rd) >= numDepots {
				return validationErrorf(ErrKindInvalidReloadDepot, "vehicle type %d reload depot %d out of range", i, rd)
			}
		}
	}
	return nil
}

func (pd *ProblemData) validateGroups() error {
	numDepots := pd.NumDepots()
	numLocations := pd.NumLocations()
	for gi, g := range pd.mutexGroups {
		for _, m := range g.Members {
			if int(m) < numDepots || int(m) >= numLocations {
				return validationErrorf(ErrKindInvalidGroup, "mutex group %d references non-client location %d", gi, m)
			}
		}
	}
	for gi, g := range pd.sameVehicleGroups {
		for _, m := range g.Members {
			if int(m) < numDepots || int(m) >= numLocations {
				return validationErrorf(ErrKindInvalidGroup, "same-vehicle group %d references non-client location %d", gi, m)
			}
		}
	}
	return nil
}
