// Package repair implements the condition-aware repair procedure: given a
// row of a candidate.Table, it enforces that every parameter is NA iff some
// activation condition of it fails.
//
// Row walks ss.SortedConditions, which core.NewSearchSpace already grouped
// by dependent parameter in topological order, so by the time a parameter P
// is repaired every ancestor of P already holds its final (possibly NA)
// value for this row — P's conditions are evaluated against stable parent
// state, never a value that is itself about to be overwritten.
//
// REPAIR INVARIANT: after Row returns, cell(row, P) is NA iff some
// condition of P evaluates false on the row.
//
// Complexity: O(len(ss.SortedConditions)) time, O(1) memory.
package repair
