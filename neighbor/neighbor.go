package neighbor

import (
	"math/rand"

	"github.com/katalvlaran/lsopt/candidate"
	"github.com/katalvlaran/lsopt/core"
	"github.com/katalvlaran/lsopt/repair"
)

// BlockStart returns the first neighbor row belonging to population row i,
// given nNeighs neighbors per walk.
func BlockStart(i, nNeighs int) int { return i * nNeighs }

// BlockEnd returns one past the last neighbor row belonging to population
// row i (exclusive), given nNeighs neighbors per walk.
func BlockEnd(i, nNeighs int) int { return (i + 1) * nNeighs }

// Generate fills neighs (sized pop.NRows()*nNeighs) with mutated, repaired
// replicas of pop's rows. Block i (rows BlockStart(i,nNeighs)..BlockEnd(i,nNeighs))
// holds nNeighs independent replicas of population row i.
//
// For each replica: the source row is copied whole (preserving NA), one
// currently-active column is chosen uniformly at random and mutated, then
// the row is repaired. A replica with no active column is copied but left
// unmutated (there is nothing to perturb).
func Generate(ss *core.SearchSpace, pop *candidate.Population, neighs *candidate.Table, nNeighs int, mutSD float64, rng *rand.Rand) {
	nSearches := pop.NRows()
	for i := 0; i < nSearches; i++ {
		for k := 0; k < nNeighs; k++ {
			row := BlockStart(i, nNeighs) + k
			neighs.CopyRow(row, pop.Table, i)

			active := activeColumns(neighs, row)
			if len(active) == 0 {
				continue
			}
			col := active[rng.Intn(len(active))]
			neighs.Mutate(row, col, mutSD, rng)
			repair.Row(ss, neighs, row, rng)
		}
	}
}

// activeColumns returns the indices of every non-NA column in t's given row.
func activeColumns(t *candidate.Table, row int) []int {
	active := make([]int, 0, t.NCols())
	for col := 0; col < t.NCols(); col++ {
		if !t.IsNA(row, col) {
			active = append(active, col)
		}
	}
	return active
}
