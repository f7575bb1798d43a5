package neighbourhood

import "github.com/routeforge/vrpcore/model"

// Neighbours holds a static, per-client candidate list built by
// ComputeNeighbours. It does not change for the duration of a search, so it
// can be shared read-only across every goroutine a driver spawns.
type Neighbours struct {
	pd    *model.ProblemData
	lists [][]model.LocationIndex // indexed by client index, not location index
}

// Of returns the candidate neighbours of client clientIdx, ordered by
// increasing proximity (best first).
func (n *Neighbours) Of(clientIdx int) []model.LocationIndex {
	return n.lists[clientIdx]
}

// ComputeNeighbours builds a bounded candidate list for every client in pd:
// proximity blends distance with expected wait time, expected time warp,
// and prize, minimised across profiles when more than one is declared.
// Depots never appear as, or receive, neighbours.
func ComputeNeighbours(pd *model.ProblemData, params NeighbourhoodParams) (*Neighbours, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	numClients := pd.NumClients()
	numDepots := pd.NumDepots()

	prox := make([][]float64, numClients)
	for i := range prox {
		prox[i] = make([]float64, numClients)
	}
	for i := 0; i < numClients; i++ {
		li := pd.ClientLocation(i)
		for j := 0; j < numClients; j++ {
			if i == j {
				continue
			}
			prox[i][j] = minProximityAcrossProfiles(pd, params, li, pd.ClientLocation(j))
		}
	}

	if params.SymmetricProximity {
		for i := 0; i < numClients; i++ {
			for j := i + 1; j < numClients; j++ {
				avg := (prox[i][j] + prox[j][i]) / 2
				prox[i][j], prox[j][i] = avg, avg
			}
		}
	}

	lists := make([][]model.LocationIndex, numClients)
	present := make([]map[model.LocationIndex]bool, numClients)
	for i := 0; i < numClients; i++ {
		row := prox[i]
		cands := selectTopK(params.NumNeighbours, func(yield func(candidate)) {
			for j := 0; j < numClients; j++ {
				if j == i {
					continue
				}
				yield(candidate{loc: pd.ClientLocation(j), prox: row[j]})
			}
		})

		lists[i] = make([]model.LocationIndex, len(cands))
		present[i] = make(map[model.LocationIndex]bool, len(cands))
		for k, c := range cands {
			lists[i][k] = c.loc
			present[i][c.loc] = true
		}
	}

	if params.SymmetricNeighbours {
		for i := 0; i < numClients; i++ {
			li := pd.ClientLocation(i)
			for _, loc := range lists[i] {
				j := int(loc) - numDepots
				if !present[j][li] {
					lists[j] = append(lists[j], li)
					present[j][li] = true
				}
			}
		}
	}

	return &Neighbours{pd: pd, lists: lists}, nil
}
