// Package dominance implements Pareto-dominance comparison over a matrix of
// criteria scores. It is a standalone utility, unrelated to the hill-climb
// search loop, exposed at the same module boundary as everything else a
// caller might want after running a multi-objective evaluation by hand.
//
// Matrix is a small local At(i, j)/Dims() interface rather than a dependency
// on a general-purpose matrix package — IsDominated only ever reads, never
// mutates or decomposes.
package dominance
