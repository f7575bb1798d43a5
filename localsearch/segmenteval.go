package localsearch

import (
	"github.com/routeforge/vrpcore/matrix"
	"github.com/routeforge/vrpcore/model"
	"github.com/routeforge/vrpcore/segment"
)

// twoOptSegments caches the per-position prefix and suffix concatenation
// segments of a single-trip route (no in-route reload depot), letting any
// 2-opt reversal of Stops[i:j+1] be priced by merging three pieces — the
// unchanged prefix, the reversed middle, the unchanged suffix — rather than
// re-simulating the whole route. Built once per candidate route; evaluate
// is then O(j-i) per (i, j) pair instead of O(n) per candidate.
type twoOptSegments struct {
	pd      *model.ProblemData
	vt      model.VehicleType
	profile int
	stops   []model.LocationIndex
	loadDim int

	distPrefix []segment.DistanceSegment
	durPrefix  []segment.DurationSegment
	loadPrefix [][]segment.LoadSegment // [dim][position]

	distSuffix []segment.DistanceSegment
	durSuffix  []segment.DurationSegment
	loadSuffix [][]segment.LoadSegment
}

// buildTwoOptSegments returns (nil, false) if stops contains a reload depot:
// the segment-merge load tracking here assumes a single trip with no
// mid-route reset, so such a route falls back to the eager clone-and-rebuild
// evaluation path instead.
func buildTwoOptSegments(pd *model.ProblemData, vt model.VehicleType, stops []model.LocationIndex, isDepot []bool) (*twoOptSegments, bool) {
	for _, d := range isDepot {
		if d {
			return nil, false
		}
	}

	n := len(stops)
	loadDim := pd.LoadDim()
	ts := &twoOptSegments{pd: pd, vt: vt, profile: vt.Profile, stops: stops, loadDim: loadDim}

	ts.distPrefix = make([]segment.DistanceSegment, n+1)
	ts.durPrefix = make([]segment.DurationSegment, n+1)
	ts.loadPrefix = make([][]segment.LoadSegment, loadDim)
	for d := range ts.loadPrefix {
		ts.loadPrefix[d] = make([]segment.LoadSegment, n+1)
	}
	for k := 1; k <= n; k++ {
		loc := stops[k-1]
		bd, bu := ts.baseDist(), ts.baseDur(loc)
		if k == 1 {
			ts.distPrefix[k], ts.durPrefix[k] = bd, bu
			for d := 0; d < loadDim; d++ {
				ts.loadPrefix[d][k] = ts.baseLoad(loc, d)
			}
			continue
		}
		prevLoc := stops[k-2]
		ed := pd.Distance(vt.Profile, prevLoc, loc)
		eu := pd.Duration(vt.Profile, prevLoc, loc)
		ts.distPrefix[k] = segment.MergeDistance(ed, ts.distPrefix[k-1], bd)
		ts.durPrefix[k] = segment.MergeDuration(eu, ts.durPrefix[k-1], bu)
		for d := 0; d < loadDim; d++ {
			ts.loadPrefix[d][k] = segment.MergeLoad(ts.loadPrefix[d][k-1], ts.baseLoad(loc, d))
		}
	}

	ts.distSuffix = make([]segment.DistanceSegment, n+1)
	ts.durSuffix = make([]segment.DurationSegment, n+1)
	ts.loadSuffix = make([][]segment.LoadSegment, loadDim)
	for d := range ts.loadSuffix {
		ts.loadSuffix[d] = make([]segment.LoadSegment, n+1)
	}
	for k := n - 1; k >= 0; k-- {
		loc := stops[k]
		bd, bu := ts.baseDist(), ts.baseDur(loc)
		if k == n-1 {
			ts.distSuffix[k], ts.durSuffix[k] = bd, bu
			for d := 0; d < loadDim; d++ {
				ts.loadSuffix[d][k] = ts.baseLoad(loc, d)
			}
			continue
		}
		nextLoc := stops[k+1]
		ed := pd.Distance(vt.Profile, loc, nextLoc)
		eu := pd.Duration(vt.Profile, loc, nextLoc)
		ts.distSuffix[k] = segment.MergeDistance(ed, bd, ts.distSuffix[k+1])
		ts.durSuffix[k] = segment.MergeDuration(eu, bu, ts.durSuffix[k+1])
		for d := 0; d < loadDim; d++ {
			ts.loadSuffix[d][k] = segment.MergeLoad(ts.baseLoad(loc, d), ts.loadSuffix[d][k+1])
		}
	}

	return ts, true
}

func (ts *twoOptSegments) baseDist() segment.DistanceSegment { return segment.NewDistanceSegment() }

func (ts *twoOptSegments) baseDur(loc model.LocationIndex) segment.DurationSegment {
	c := ts.pd.ClientAt(loc)
	return segment.NewDurationSegment(c.ServiceTime, c.Window.Early, c.Window.Late, c.ReleaseTime)
}

func (ts *twoOptSegments) baseLoad(loc model.LocationIndex, dim int) segment.LoadSegment {
	c := ts.pd.ClientAt(loc)
	return segment.NewLoadSegment(c.Delivery[dim], c.Pickup[dim])
}

// evaluate prices the reversal of Stops[i:j+1] (0 <= i < j < len(stops)):
// the full route's distance, duration, accumulated time warp, per-dimension
// excess load, and whether any edge it reads here — the reversed middle
// edges, the junction edges to the prefix and suffix, and the start- and
// end-depot edges — carries matrix.ForbiddenEdge. Edges inside the
// unchanged prefix and suffix are not checked.
func (ts *twoOptSegments) evaluate(i, j int) (distance, duration, timeWarp int64, excessLoad []int64, forbidden bool) {
	n := len(ts.stops)
	pd, vt, profile := ts.pd, ts.vt, ts.profile

	midDist, midDur := ts.baseDist(), ts.baseDur(ts.stops[j])
	midLoad := make([]segment.LoadSegment, ts.loadDim)
	for d := range midLoad {
		midLoad[d] = ts.baseLoad(ts.stops[j], d)
	}
	for t := j - 1; t >= i; t-- {
		ed := pd.Distance(profile, ts.stops[t+1], ts.stops[t])
		eu := pd.Duration(profile, ts.stops[t+1], ts.stops[t])
		if ed >= matrix.ForbiddenEdge || eu >= matrix.ForbiddenEdge {
			forbidden = true
		}
		midDist = segment.MergeDistance(ed, midDist, ts.baseDist())
		midDur = segment.MergeDuration(eu, midDur, ts.baseDur(ts.stops[t]))
		for d := range midLoad {
			midLoad[d] = segment.MergeLoad(midLoad[d], ts.baseLoad(ts.stops[t], d))
		}
	}

	totalDist, totalDur, totalLoad := midDist, midDur, midLoad
	firstLoc, lastLoc := ts.stops[j], ts.stops[i]

	if i > 0 {
		ed := pd.Distance(profile, ts.stops[i-1], ts.stops[j])
		eu := pd.Duration(profile, ts.stops[i-1], ts.stops[j])
		if ed >= matrix.ForbiddenEdge || eu >= matrix.ForbiddenEdge {
			forbidden = true
		}
		totalDist = segment.MergeDistance(ed, ts.distPrefix[i], totalDist)
		totalDur = segment.MergeDuration(eu, ts.durPrefix[i], totalDur)
		for d := range totalLoad {
			totalLoad[d] = segment.MergeLoad(ts.loadPrefix[d][i], totalLoad[d])
		}
		firstLoc = ts.stops[0]
	}

	if j+1 < n {
		ed := pd.Distance(profile, ts.stops[i], ts.stops[j+1])
		eu := pd.Duration(profile, ts.stops[i], ts.stops[j+1])
		if ed >= matrix.ForbiddenEdge || eu >= matrix.ForbiddenEdge {
			forbidden = true
		}
		totalDist = segment.MergeDistance(ed, totalDist, ts.distSuffix[j+1])
		totalDur = segment.MergeDuration(eu, totalDur, ts.durSuffix[j+1])
		for d := range totalLoad {
			totalLoad[d] = segment.MergeLoad(totalLoad[d], ts.loadSuffix[d][j+1])
		}
		lastLoc = ts.stops[n-1]
	}

	startEdgeDist := pd.Distance(profile, vt.StartDepot, firstLoc)
	startEdgeDur := pd.Duration(profile, vt.StartDepot, firstLoc)
	endEdgeDist := pd.Distance(profile, lastLoc, vt.EndDepot)
	endEdgeDur := pd.Duration(profile, lastLoc, vt.EndDepot)
	if startEdgeDist >= matrix.ForbiddenEdge || startEdgeDur >= matrix.ForbiddenEdge ||
		endEdgeDist >= matrix.ForbiddenEdge || endEdgeDur >= matrix.ForbiddenEdge {
		forbidden = true
	}

	startDepot := pd.Depot(vt.StartDepot)
	endDepot := pd.Depot(vt.EndDepot)
	startSeg := segment.NewDurationSegment(startDepot.ServiceTime, startDepot.Window.Early, startDepot.Window.Late, 0)
	endSeg := segment.NewDurationSegment(endDepot.ServiceTime, endDepot.Window.Early, endDepot.Window.Late, 0)

	fullDur := segment.MergeDuration(startEdgeDur, startSeg, segment.MergeDuration(endEdgeDur, totalDur, endSeg))
	fullDist := matrix.AddSaturating(matrix.AddSaturating(startEdgeDist, totalDist.Distance), endEdgeDist)

	excessLoad = make([]int64, ts.loadDim)
	for d := 0; d < ts.loadDim; d++ {
		initial := int64(0)
		if d < len(vt.InitialLoad) {
			initial = vt.InitialLoad[d]
		}
		excessLoad[d] = totalLoad[d].WithInitialLoad(initial).ExcessLoad(vt.Capacity[d])
	}

	return fullDist, fullDur.Duration, fullDur.TimeWarp, excessLoad, forbidden
}
