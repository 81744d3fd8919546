// Package candidate implements the columnar Table that stores batches of
// candidate configurations against a core.SearchSpace: one typed column per
// parameter, plus a parallel NA bitmap per column so that "parameter
// inactive" never needs to be smuggled through a sentinel value in the
// typed column itself (e.g. NaN for Real, -1 for Categorical).
//
// Typed-column layout favors cache locality on large batches: one flat
// backing slice per kind, row-major addressing. Set bounds-checks its
// indices and returns a sentinel error; Get, IsNA and SetNA index directly
// and panic on an out-of-range cell.
//
// Table is the building block for both Population (the current walks) and
// the neighbor batch the hill-climb driver evaluates each step; both reuse
// the same Table type, distinguished only by row count and by whether a
// pop_y/stagnate_count side channel (Population) is attached.
package candidate
