// Package matrix provides the dense, integer-valued square matrices used by
// vrpcore to represent per-profile distance and duration tables.
//
// Unlike a general-purpose numeric matrix, every Dense here carries the
// solver's specific numeric policy: entries are int64, the diagonal must be
// exactly zero, and the sentinel ForbiddenEdge (2^44) marks an edge that may
// never be traversed. Dense never panics on user input; construction and
// mutation return sentinel errors so callers (model.NewProblemData in
// particular) can wrap them with operation context.
package matrix
