// Package perturb implements the two restart operators an iterated local
// search kicks the incumbent with between rounds of re-optimisation: Ruin
// (remove a random batch of clients, then cheapest-insertion them back) and
// Route-swap (swap two random sub-routes between two random routes).
// PerturbationManager owns the current number-of-perturbations draw and
// redraws it between outer ILS iterations via Shuffle.
package perturb
