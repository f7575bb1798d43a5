// Package segment implements the three concatenation-segment types —
// DistanceSegment, LoadSegment, DurationSegment — that let local search
// evaluate an arbitrary route splice (insertion, 2-opt, or-opt, swap-star)
// in O(1) by composing precomputed per-location segments instead of
// rescanning the route.
//
// Every Merge is associative but not commutative: merge(e1, A, merge(e2, B,
// C)) always equals merge(e2, merge(e1, A, B), C), but merge(A, B) is not in
// general merge(B, A) (order along the route matters). All arithmetic
// saturates at matrix.SaturationLimit so a ForbiddenEdge (2^44) traversal
// can never overflow an accumulator; an overflowing move is simply reported
// as very costly, never as a panic.
package segment
