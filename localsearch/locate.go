package localsearch

import (
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/solution"
)

// locate finds loc's current route and position within sol. Unvisited
// (skipped optional) clients return found=false.
func locate(sol *solution.Solution, loc model.LocationIndex) (routeIdx, pos int, found bool) {
	for ri, r := range sol.Routes {
		for pi, s := range r.Stops {
			if s == loc {
				return ri, pi, true
			}
		}
	}
	return 0, 0, false
}
