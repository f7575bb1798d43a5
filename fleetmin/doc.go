// Package fleetmin finds the smallest fleet that still serves every client:
// given a single-vehicle-type, no-optional-client instance, repeatedly drop
// one vehicle from NumAvailable and re-solve, stopping once a load-based
// lower bound is hit or the reduced instance can no longer be solved
// feasibly. The shrink-and-retest loop repeatedly applies a candidate
// reduction, tests it, and stops the first time the test fails — the same
// shape as a minimum-spanning-tree builder's edge-acceptance loop,
// generalised from accepting edges to accepting a smaller fleet.
package fleetmin
