// Package costeval turns a Solution's raw per-route statistics into a
// single scalar cost a search can compare. CostEvaluator holds the
// configurable penalty weights; PenalisedCost always returns a finite
// number, while Cost collapses to an infeasibility sentinel once any hard
// constraint is violated.
package costeval
