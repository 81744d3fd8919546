package repair

import (
	"math/rand"

	"github.com/katalvlaran/lsopt/candidate"
	"github.com/katalvlaran/lsopt/core"
)

// Row enforces the repair invariant for a single row of t, against ss.
// Conditions are processed in ss.SortedConditions order, grouped by
// dependent parameter; rng is consumed only for parameters that newly
// become active and were previously NA (one SetRandom call per such
// parameter, per candidate.Table.SetRandom's draw discipline).
func Row(ss *core.SearchSpace, t *candidate.Table, row int, rng *rand.Rand) {
	conds := ss.SortedConditions
	for i := 0; i < len(conds); {
		paramIdx := conds[i].ParamIndex

		allSatisfied := true
		j := i
		for j < len(conds) && conds[j].ParamIndex == paramIdx {
			parent := t.Get(row, conds[j].ParentIndex)
			if !conds[j].Satisfied(parent) {
				allSatisfied = false
			}
			j++
		}

		switch {
		case !allSatisfied:
			t.SetNA(row, paramIdx)
		case t.IsNA(row, paramIdx):
			t.SetRandom(row, paramIdx, rng)
		}

		i = j
	}
}
