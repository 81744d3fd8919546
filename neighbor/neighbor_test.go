package neighbor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsopt/candidate"
	"github.com/katalvlaran/lsopt/core"
	"github.com/katalvlaran/lsopt/neighbor"
)

func TestGenerate_BlockLayoutAndRepairInvariant(t *testing.T) {
	ss, err := core.NewSearchSpace(
		[]core.Parameter{
			{Name: "a", Kind: core.Bool},
			{Name: "b", Kind: core.Real, Lower: 0, Upper: 1},
		},
		[]core.Condition{
			{ParamIndex: 1, ParentIndex: 0, Kind: core.CondEquals, RHS: []core.Value{core.BoolValue(true)}},
		},
	)
	require.NoError(t, err)

	nSearches, nNeighs := 3, 5
	pop := candidate.NewPopulation(candidate.NewTable(ss, nSearches))
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < nSearches; i++ {
		pop.SetRandomRow(i, rng)
		require.NoError(t, pop.Set(i, 0, core.BoolValue(true)))
		require.NoError(t, pop.Set(i, 1, core.RealValue(0.5)))
	}

	neighs := candidate.NewTable(ss, nSearches*nNeighs)
	neighbor.Generate(ss, pop, neighs, nNeighs, 0.1, rng)

	assert.Equal(t, nSearches*nNeighs, neighs.NRows())

	for i := 0; i < nSearches; i++ {
		for r := neighbor.BlockStart(i, nNeighs); r < neighbor.BlockEnd(i, nNeighs); r++ {
			// REPAIR INVARIANT: b is NA iff a's condition fails.
			aVal := neighs.Get(r, 0)
			bNA := neighs.IsNA(r, 1)
			if aVal.B {
				assert.False(t, bNA)
			} else {
				assert.True(t, bNA)
			}
		}
	}
}

func TestGenerate_MutatesExactlyOneColumnWhenFullyActive(t *testing.T) {
	ss, err := core.NewSearchSpace([]core.Parameter{
		{Name: "x1", Kind: core.Bool},
		{Name: "x2", Kind: core.Bool},
		{Name: "x3", Kind: core.Bool},
	}, nil)
	require.NoError(t, err)

	pop := candidate.NewPopulation(candidate.NewTable(ss, 1))
	rng := rand.New(rand.NewSource(2))
	pop.SetRandomRow(0, rng)

	neighs := candidate.NewTable(ss, 10)
	neighbor.Generate(ss, pop, neighs, 10, 0.1, rng)

	for r := 0; r < 10; r++ {
		diffs := 0
		for c := 0; c < 3; c++ {
			if neighs.Get(r, c).B != pop.Get(0, c).B {
				diffs++
			}
		}
		assert.Equal(t, 1, diffs, "exactly one column should differ from the source row")
	}
}
