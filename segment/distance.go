package segment

import "github.com/routeforge/vrpcore/matrix"

// DistanceSegment summarises the total travelled distance of a contiguous
// route chunk.
type DistanceSegment struct {
	Distance int64
}

// NewDistanceSegment returns the base segment for a single location: zero
// distance travelled (a segment of one stop has no internal edge).
func NewDistanceSegment() DistanceSegment {
	return DistanceSegment{}
}

// MergeDistance appends b after a, separated by an edge of length `edge`.
// Associative: MergeDistance(e1, a, MergeDistance(e2, b, c)) ==
// MergeDistance(e2, MergeDistance(e1, a, b), c).
func MergeDistance(edge int64, a, b DistanceSegment) DistanceSegment {
	return DistanceSegment{
		Distance: matrix.AddSaturating(matrix.AddSaturating(a.Distance, edge), b.Distance),
	}
}

// ExcessDistance reports how far Distance exceeds maxDistance (which may be
// model.Infinity, in which case this is always 0).
func (d DistanceSegment) ExcessDistance(maxDistance int64) int64 {
	if d.Distance <= maxDistance {
		return 0
	}
	return d.Distance - maxDistance
}
