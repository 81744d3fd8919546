package candidate_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsopt/candidate"
	"github.com/katalvlaran/lsopt/core"
)

func mustSpace(t *testing.T) *core.SearchSpace {
	t.Helper()
	ss, err := core.NewSearchSpace([]core.Parameter{
		{Name: "x1", Kind: core.Real, Lower: 0, Upper: 1},
		{Name: "x2", Kind: core.Int, Lower: 0, Upper: 10},
		{Name: "x3", Kind: core.Categorical, Levels: []string{"a", "b", "c"}},
		{Name: "x4", Kind: core.Bool},
	}, nil)
	require.NoError(t, err)
	return ss
}

func TestTable_DefaultsToNA(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			assert.True(t, tbl.IsNA(r, c))
		}
	}
}

func TestTable_SetGet(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 1)

	require.NoError(t, tbl.Set(0, 0, core.RealValue(0.25)))
	assert.False(t, tbl.IsNA(0, 0))
	assert.Equal(t, core.RealValue(0.25), tbl.Get(0, 0))

	err := tbl.Set(0, 0, core.IntValue(3))
	assert.ErrorIs(t, err, candidate.ErrKindMismatch)

	require.NoError(t, tbl.Set(0, 0, core.NA))
	assert.True(t, tbl.IsNA(0, 0))
}

func TestTable_SetRandom_Bounds(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 1)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		tbl.SetRandomRow(0, rng)

		v := tbl.Get(0, 0).R
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)

		iv := tbl.Get(0, 1).I
		assert.GreaterOrEqual(t, iv, int64(0))
		assert.LessOrEqual(t, iv, int64(10))

		cv := tbl.Get(0, 2).C
		assert.GreaterOrEqual(t, cv, 0)
		assert.Less(t, cv, 3)
	}
}

func TestTable_Mutate_RealClipped(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 1)
	require.NoError(t, tbl.Set(0, 0, core.RealValue(0.99)))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		tbl.Mutate(0, 0, 2.0, rng) // large sd to push against bounds often
		v := tbl.Get(0, 0).R
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestTable_Mutate_IntRounded(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 1)
	require.NoError(t, tbl.Set(0, 1, core.IntValue(5)))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		tbl.Mutate(0, 1, 0.3, rng)
		v := tbl.Get(0, 1).I
		assert.GreaterOrEqual(t, v, int64(0))
		assert.LessOrEqual(t, v, int64(10))
	}
}

func TestTable_Mutate_CategoricalAlwaysChanges(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 1)
	require.NoError(t, tbl.Set(0, 2, core.CatValue(1)))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		before := tbl.Get(0, 2).C
		tbl.Mutate(0, 2, 0.1, rng)
		after := tbl.Get(0, 2).C
		assert.NotEqual(t, before, after)
		assert.GreaterOrEqual(t, after, 0)
		assert.Less(t, after, 3)
	}
}

func TestTable_Mutate_CategoricalSingleLevelNoop(t *testing.T) {
	ss, err := core.NewSearchSpace([]core.Parameter{{Name: "k", Kind: core.Categorical, Levels: []string{"only"}}}, nil)
	require.NoError(t, err)
	tbl := candidate.NewTable(ss, 1)
	require.NoError(t, tbl.Set(0, 0, core.CatValue(0)))

	rng := rand.New(rand.NewSource(1))
	tbl.Mutate(0, 0, 0.1, rng)
	assert.Equal(t, 0, tbl.Get(0, 0).C)
}

func TestTable_Mutate_BoolFlips(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 1)
	require.NoError(t, tbl.Set(0, 3, core.BoolValue(true)))

	rng := rand.New(rand.NewSource(9))
	tbl.Mutate(0, 3, 0.1, rng)
	assert.False(t, tbl.Get(0, 3).B)
	tbl.Mutate(0, 3, 0.1, rng)
	assert.True(t, tbl.Get(0, 3).B)
}

func TestTable_Mutate_RealNonMutableRangeNoop(t *testing.T) {
	ss, err := core.NewSearchSpace([]core.Parameter{{Name: "x", Kind: core.Real, Lower: 1, Upper: 1 + 1e-9}}, nil)
	require.NoError(t, err)
	tbl := candidate.NewTable(ss, 1)
	require.NoError(t, tbl.Set(0, 0, core.RealValue(1.0)))

	rng := rand.New(rand.NewSource(1))
	tbl.Mutate(0, 0, 1.0, rng)
	assert.Equal(t, 1.0, tbl.Get(0, 0).R)
}

func TestTable_Mutate_PanicsOnNA(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 1)
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { tbl.Mutate(0, 0, 0.1, rng) })
}

func TestTable_CopyRow(t *testing.T) {
	ss := mustSpace(t)
	src := candidate.NewTable(ss, 1)
	require.NoError(t, src.Set(0, 0, core.RealValue(0.7)))
	src.SetNA(0, 1)

	dst := candidate.NewTable(ss, 1)
	dst.CopyRow(0, src, 0)

	assert.Equal(t, core.RealValue(0.7), dst.Get(0, 0))
	assert.True(t, dst.IsNA(0, 1))
}

func TestTable_RowRoundTrip(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 1)
	require.NoError(t, tbl.Set(0, 0, core.RealValue(0.5)))
	require.NoError(t, tbl.Set(0, 1, core.IntValue(4)))
	require.NoError(t, tbl.Set(0, 2, core.CatValue(2)))
	require.NoError(t, tbl.Set(0, 3, core.BoolValue(true)))

	row := tbl.RowAt(0)

	other := candidate.NewTable(ss, 1)
	other.SetRow(0, row)
	assert.Equal(t, tbl.RowAt(0), other.RowAt(0))
}

func TestPopulation_InitialScoresAreInf(t *testing.T) {
	ss := mustSpace(t)
	tbl := candidate.NewTable(ss, 4)
	pop := candidate.NewPopulation(tbl)
	for _, y := range pop.PopY {
		assert.True(t, math.IsInf(y, 1))
	}
	assert.Len(t, pop.Stagnate, 4)
}
