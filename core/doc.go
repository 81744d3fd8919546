// Package core defines the search-space model shared by every other
// package in this module: parameters, their kinds and bounds, the
// hierarchical activation conditions between them, and the immutable
// SearchSpace that ties them together with a topologically sorted
// parameter order.
//
// A SearchSpace is built once (NewSearchSpace) and never mutated again.
// Construction is where the expensive validation happens — cycle
// detection in the dependency graph, condition-kind matching against the
// parent parameter, self-reference checks — so that every later call into
// the repair engine, the neighbor generator, or the hill-climb driver can
// assume a well-formed space and never needs to re-validate it.
//
//	core/     — SearchSpace, Parameter, Condition, Value
//	repair/   — per-row invariant enforcement (consumes ss.SortedConditions)
//	candidate/ — columnar storage typed against a SearchSpace
//
// This module declares a fresh dependency-graph model rather than reusing
// lvlath's general-purpose, thread-safe, mutable Graph type: a SearchSpace
// has at most a few dozen nodes, is built exactly once, and is read-only
// for the remainder of the process, so the locking and live-mutation
// machinery a general graph needs would be dead weight here (see
// DESIGN.md). The topological sort itself uses Kahn's algorithm with a
// FIFO-ordered ready queue for deterministic, insertion-order tie-breaking.
package core
