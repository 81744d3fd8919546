// errors.go — sentinel errors for the core package.
//
// Error policy (matches the rest of this module):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Context is attached at the call site with fmt.Errorf("%w: ...", ErrX, ...).
package core

import (
	"errors"
	"fmt"
)

// ErrCyclicDependency indicates the parameter dependency graph (parent to
// dependent edges derived from Condition.ParentIndex -> Condition.ParamIndex)
// contains a cycle. Kahn's algorithm could not drain every node.
var ErrCyclicDependency = errors.New("core: cyclic parameter dependency")

// ErrUnknownParameter indicates FindParamIndex was called with a name that
// does not match any parameter in the SearchSpace.
var ErrUnknownParameter = errors.New("core: unknown parameter")

// ErrSelfCondition indicates a Condition whose ParamIndex equals its
// ParentIndex, which is never valid (a parameter cannot depend on itself).
var ErrSelfCondition = errors.New("core: condition parent equals param")

// ErrConditionKindMismatch indicates a Condition's right-hand-side values
// carry a Value.Kind that does not match the parent parameter's ParamKind.
var ErrConditionKindMismatch = errors.New("core: condition value kind mismatch")

// ErrEmptyAnyOf indicates an AnyOf condition was built with zero right-hand
// side values, which can never be satisfied and is almost certainly a bug
// at the call site rather than an intentionally-always-false condition.
var ErrEmptyAnyOf = errors.New("core: AnyOf condition has no values")

// ErrInvalidParameter indicates a Parameter's own declared attributes are
// malformed: Real/Int with upper < lower, or Categorical with zero levels.
var ErrInvalidParameter = errors.New("core: invalid parameter definition")

// ErrParamIndexOutOfRange indicates a Condition references a ParamIndex or
// ParentIndex outside [0, len(params)).
var ErrParamIndexOutOfRange = errors.New("core: condition parameter index out of range")

// errParam wraps ErrInvalidParameter with the offending parameter's name and
// the specific complaint.
func errParam(name, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidParameter, name, reason)
}
