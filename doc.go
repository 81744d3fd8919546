// Package lsopt is a parallel, elitist hill-climbing local-search optimizer
// over heterogeneous, conditionally-structured search spaces.
//
// A search space (core.SearchSpace) is a set of typed parameters — Real,
// Int, Categorical, Bool — optionally gated by Equals/AnyOf conditions on a
// parent parameter's value. candidate.Table stores a batch of candidate
// configurations column-wise, one typed slice plus an NA bitmap per
// parameter; repair.Row restores a row to the repair invariant (every
// active parameter concrete, every inactive parameter NA) after a mutation.
//
// hillclimb.Run drives n_searches independent walks for n_steps rounds:
// each step generates n_neighs mutated, repaired replicas per walk via
// neighbor.Generate, scores them through a caller-supplied objective.Func,
// and keeps the best replica per walk, restarting walks that stagnate for
// too long. dominance.IsDominated is a separate, unrelated utility for
// Pareto-dominance comparisons over a matrix of criteria scores.
//
//	go get github.com/katalvlaran/lsopt
package lsopt
