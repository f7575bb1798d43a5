// Package localsearch improves a Solution by repeatedly applying a fixed
// family of node and route operators — Exchange(p,q), 2-opt, Swap-star,
// Relocate-star, Swap-tails — restricted to candidate pairs drawn from a
// neighbourhood.Neighbours, until a full sweep yields no strictly
// improving move.
//
// Exchange, Swap-star, Relocate-star and Swap-tails moves are evaluated by
// cloning the affected route(s), applying the candidate splice, and letting
// Route's existing rebuild-on-access aggregates recompute the delta cost in
// O(route length). Building an Exchange candidate (see exchange.go) copies
// the route slices, so construction is linear too. 2-opt on a route with no
// in-route reload depot is instead priced by merging cached prefix, reversed
// middle and suffix segments (see segmenteval.go); a route with a reload
// depot falls back to clone-and-rebuild.
package localsearch
