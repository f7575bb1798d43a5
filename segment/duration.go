package segment

import "github.com/routeforge/vrpcore/matrix"

// DurationSegment summarises the schedule of a contiguous route chunk:
// elapsed duration (service plus waiting), accumulated time warp (lateness
// pushed back in time to keep the schedule consistent), and the feasible
// [StartEarly, StartLate] window for when the chunk may begin, given its own
// time windows and release times.
//
// Merge is associative but not commutative — see doc.go.
type DurationSegment struct {
	Duration    int64
	TimeWarp    int64
	StartEarly  int64
	StartLate   int64
	ReleaseTime int64

	// PrevEndLate is the latest time the segment immediately preceding this
	// one (in the route being assembled) may have ended; it is consumed,
	// not produced, by FinaliseFront/FinaliseBack.
	PrevEndLate int64
}

// NewDurationSegment returns the base segment for a single location visited
// for `serviceTime`, with feasible arrival window [windowEarly, windowLate]
// and the given release time. windowLate (and any other "no bound" value
// the caller passes) is clamped to matrix.SaturationLimit so later merges
// never have to subtract from an unclamped model.Infinity sentinel.
func NewDurationSegment(serviceTime, windowEarly, windowLate, releaseTime int64) DurationSegment {
	if windowLate > matrix.SaturationLimit {
		windowLate = matrix.SaturationLimit
	}
	return DurationSegment{
		Duration:    serviceTime,
		TimeWarp:    0,
		StartEarly:  windowEarly,
		StartLate:   windowLate,
		ReleaseTime: releaseTime,
		PrevEndLate: matrix.SaturationLimit,
	}
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// MergeDuration appends b after a, separated by travel time `edge`.
func MergeDuration(edge int64, a, b DurationSegment) DurationSegment {
	arrival := a.StartEarly + a.Duration - a.TimeWarp + edge

	twContribution := maxI64(0, arrival-b.StartLate)
	waitContribution := maxI64(0, b.StartEarly-arrival)

	duration := matrix.AddSaturating(matrix.AddSaturating(a.Duration, edge), matrix.AddSaturating(waitContribution, b.Duration))
	timeWarp := matrix.AddSaturating(matrix.AddSaturating(a.TimeWarp, b.TimeWarp), twContribution)

	shift := arrival - a.StartEarly
	startEarly := maxI64(a.StartEarly, b.StartEarly-shift)
	startLate := minI64(a.StartLate, b.StartLate-shift)
	if startEarly > startLate {
		startEarly = startLate
	}

	releaseTime := maxI64(a.ReleaseTime, b.ReleaseTime)
	if releaseTime > startLate {
		timeWarp = matrix.AddSaturating(timeWarp, releaseTime-startLate)
		startLate = releaseTime
		if startEarly > startLate {
			startEarly = startLate
		}
	}

	return DurationSegment{
		Duration:    duration,
		TimeWarp:    timeWarp,
		StartEarly:  startEarly,
		StartLate:   startLate,
		ReleaseTime: releaseTime,
		PrevEndLate: b.PrevEndLate,
	}
}

// TimeWarpWithCap returns TimeWarp inflated by any violation of a
// route-duration cap maxDuration (model.Infinity if unbounded): the amount by
// which Duration exceeds maxDuration is added on top of the schedule's own
// lateness warp.
func (d DurationSegment) TimeWarpWithCap(maxDuration int64) int64 {
	if d.Duration <= maxDuration {
		return d.TimeWarp
	}
	return matrix.AddSaturating(d.TimeWarp, d.Duration-maxDuration)
}

// FinaliseFront prepares d to be the first piece of an assembled route: no
// segment precedes it, so PrevEndLate is reset to "unconstrained".
//
// FinaliseBack prepares d to be the last piece of an assembled route. Both
// are intentionally identity transforms on the scheduling fields: Merge only
// ever narrows [StartEarly, StartLate] by intersection, so the window
// already correctly represents the feasible range for concatenation at
// either end — there is no extra constraint left to drop. See DESIGN.md.
func FinaliseFront(d DurationSegment) DurationSegment {
	d.PrevEndLate = matrix.SaturationLimit
	return d
}

// FinaliseBack prepares d to be the last piece of an assembled route.
// See FinaliseFront for why this is an identity transform on the scheduling
// fields.
func FinaliseBack(d DurationSegment) DurationSegment {
	return d
}
