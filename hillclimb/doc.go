// Package hillclimb implements the parallel elitist hill-climb driver: it
// owns the population and neighbor tables, the global best, the stagnation
// counters, and the scoped RNG, and drives the generate/evaluate/replace
// loop once per step until the step budget is spent or the objective signals
// termination.
//
// Run is the module's single entry point; everything else in this package
// (Control, Option, Metrics, Best) exists to configure or report on one
// Run call.
package hillclimb
