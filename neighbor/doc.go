// Package neighbor implements the neighbor generator: it replicates a
// population's current configurations into a neighbor batch arranged in
// per-walk blocks, mutates exactly one active parameter per replica, and
// repairs each replica afterward (mutating a parent can deactivate or
// newly activate its dependents; repair.Row reconciles that).
//
// Complexity: O(n_searches * n_neighs * n_params) time; beyond the
// caller-supplied tables, each replica allocates one O(n_params) scratch
// slice of its active columns.
package neighbor
