// Package solution implements Route and Solution: the mutable route
// representation a search step edits, and the read-only aggregate view a
// cost evaluator consumes.
//
// A Route caches its total distance, duration, time warp, per-dimension
// load, and per-trip schedule; any structural edit marks the route dirty,
// and the next aggregate access rebuilds it in a single linear pass, so a
// burst of edits between two reads never pays for more than one rebuild.
package solution
