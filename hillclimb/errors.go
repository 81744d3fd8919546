// errors.go — sentinel errors for the hillclimb package.
package hillclimb

import "errors"

// ErrInvalidControl indicates a Control field violates its documented
// constraint (NSearches >= 1, NNeighs >= 1, NSteps >= 0, MutSD > 0,
// StagnateMax >= 1). Detected at Run entry, before any RNG is acquired or
// any objective call is made.
var ErrInvalidControl = errors.New("hillclimb: invalid control")

// ErrSchemaViolation indicates the initial population's row count or column
// layout disagrees with the SearchSpace Run is given.
var ErrSchemaViolation = errors.New("hillclimb: initial population schema violation")
