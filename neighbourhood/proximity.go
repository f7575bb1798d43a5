package neighbourhood

import "github.com/routeforge/vrpcore/model"

// expectedWaitAndWarp estimates the waiting time and time warp a vehicle
// would accrue travelling directly from client i to client j: it assumes
// the vehicle departs i at i's window opening (plus i's service time) and
// measures the gap against j's window.
func expectedWaitAndWarp(pd *model.ProblemData, profile int, i, j model.LocationIndex) (wait, warp float64) {
	ci := pd.ClientAt(i)
	cj := pd.ClientAt(j)

	depart := ci.Window.Early
	if depart == model.Infinity {
		depart = 0
	}
	depart += ci.ServiceTime

	arrival := depart + pd.Duration(profile, i, j)

	early := cj.Window.Early
	if arrival < early {
		wait = float64(early - arrival)
	}
	if cj.Window.Late < model.Infinity && arrival > cj.Window.Late {
		warp = float64(arrival - cj.Window.Late)
	}
	return wait, warp
}

// proximity computes proximity(i, j) under one profile: distance plus
// weighted expected wait and time warp, minus j's prize.
func proximity(pd *model.ProblemData, params NeighbourhoodParams, profile int, i, j model.LocationIndex) float64 {
	dist := float64(pd.Distance(profile, i, j))
	wait, warp := expectedWaitAndWarp(pd, profile, i, j)
	prize := float64(pd.ClientAt(j).Prize)
	return dist + params.WeightWaitTime*wait + params.WeightTimeWarp*warp - prize
}

// minProximityAcrossProfiles returns the element-wise minimum of
// proximity(i, j) over every profile declared on pd.
func minProximityAcrossProfiles(pd *model.ProblemData, params NeighbourhoodParams, i, j model.LocationIndex) float64 {
	best := proximity(pd, params, 0, i, j)
	for p := 1; p < pd.NumProfiles(); p++ {
		if v := proximity(pd, params, p, i, j); v < best {
			best = v
		}
	}
	return best
}
