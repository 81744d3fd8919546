// errors.go — sentinel errors for the candidate package.
package candidate

import "errors"

// ErrRowOutOfRange indicates a row index outside [0, NRows()).
var ErrRowOutOfRange = errors.New("candidate: row index out of range")

// ErrColOutOfRange indicates a column index outside [0, NCols()).
var ErrColOutOfRange = errors.New("candidate: column index out of range")

// ErrKindMismatch indicates a Get/Set call supplied a core.Value whose Kind
// does not match the column's parameter kind.
var ErrKindMismatch = errors.New("candidate: value kind does not match column parameter kind")

// ErrMutateNA indicates Mutate was called on a cell that is currently NA.
// Violating that precondition is a program bug, not a recoverable input
// error, so production code should never hit this — Table.Mutate panics
// instead of returning it, but it is kept as a sentinel for tests that want
// to assert the panic's message via recover().
var ErrMutateNA = errors.New("candidate: Mutate called on NA cell")

// ErrSchemaMismatch indicates an externally supplied Table (e.g. the
// driver's initial population) has a row count or column kind layout that
// disagrees with the SearchSpace it is checked against.
var ErrSchemaMismatch = errors.New("candidate: schema mismatch with search space")
