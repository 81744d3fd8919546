package hillclimb

import "github.com/katalvlaran/lsopt/candidate"

// Best is the global best configuration seen across all walks and steps, in
// the caller's original objective orientation.
type Best struct {
	Row candidate.Row
	Y   float64
}
