// Package rng implements Generator, a deterministic, checkpointable
// pseudo-random source for the solver's stochastic operators (initial
// construction, ruin, route-swap, perturbation-count redraw).
//
// math/rand.Rand cannot serve this role: its internal state is not
// exported, so a solve cannot be suspended mid-run and resumed bit-for-bit
// elsewhere. Generator instead carries its full state as four uint32 words,
// read out by State and restored by FromState, and is always passed
// explicitly rather than hidden behind a
// package-level global, using xorshift128's compact array state so
// State/FromState are trivial value copies.
package rng
