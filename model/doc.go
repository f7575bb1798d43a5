// Package model defines the immutable Vehicle Routing Problem instance:
// depots, clients, vehicle types, the distance/duration matrices that back
// them, and client grouping constraints.
//
// A ProblemData is built once via NewProblemData, validated eagerly, and
// never mutated afterwards — every downstream package (segment, solution,
// costeval, neighbourhood, localsearch, perturb, ils, fleetmin) borrows it by
// pointer for the lifetime of a solve call. There is no process-wide mutable
// state; two concurrent solves over the same *ProblemData are safe because
// neither writes to it.
//
// Validation failures are returned as *ValidationError rather than panicking;
// callers must not invoke the rest of the pipeline against an instance that
// failed validation.
package model
