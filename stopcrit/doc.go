// Package stopcrit implements the ILS driver's composable stopping
// criteria: max_iterations, max_runtime, no_improvement(k), target_cost,
// and the any/all combinators. A Criterion is polled once per outer
// iteration; the driver additionally threads a context.Context down into
// localsearch so a mid-iteration deadline can be noticed between operator
// sweeps rather than only between whole iterations.
package stopcrit
