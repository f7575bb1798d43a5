// Package ils implements the Iterated Local Search driver: build an initial
// Solution, then repeatedly perturb the incumbent, re-optimise with
// localsearch, and accept on improvement, until a stopcrit.Criterion fires.
// Solve's options and Result follow a validate-up-front, single-entry-point
// shape; per-iteration statistics are recorded by the ils/stats.go sub-file
// using encoding/csv for round-tripping, the one deliberate stdlib choice
// in this package (see DESIGN.md for why no third-party CSV library was
// wired in here).
package ils
