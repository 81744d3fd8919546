package dominance

import "errors"

// ErrRaggedRows is returned by NewMatrix when the supplied rows do not all
// share the same length.
var ErrRaggedRows = errors.New("dominance: ragged rows")
