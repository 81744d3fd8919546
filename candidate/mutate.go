// mutate.go — random fill and single-cell mutation operators, with a fixed
// RNG draw discipline: SetRandomRow draws one value per column in column
// order; Mutate draws exactly one type-specific value (Gaussian for
// Real/Int via gonum's stat/distuv, an integer draw for Categorical and for
// Bool). The Bool draw is consumed even though the flip itself is
// deterministic, so that the RNG stream's shape does not depend on which
// parameter kind a caller happened to select. Two degenerate cases leave the
// cell unchanged without any draw: a Real/Int parameter whose range is
// NonMutable, and a Categorical parameter with a single level.
package candidate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lsopt/core"
)

// SetRandom draws a uniformly random in-domain value for cell(row, col) and
// writes it (clearing NA). Real: uniform on [lower,upper]. Int: uniform over
// the integers in [lower,upper]. Categorical: uniform over levels. Bool:
// uniform over {false,true}. Exactly one RNG draw is consumed.
func (t *Table) SetRandom(row, col int, rng *rand.Rand) {
	p := t.ss.Params[col]
	switch p.Kind {
	case core.Real:
		v := p.Lower + rng.Float64()*(p.Upper-p.Lower)
		_ = t.Set(row, col, core.RealValue(v))
	case core.Int:
		span := int64(p.Upper) - int64(p.Lower) + 1
		v := int64(p.Lower) + int64(rng.Int63n(span))
		_ = t.Set(row, col, core.IntValue(v))
	case core.Categorical:
		idx := rng.Intn(len(p.Levels))
		_ = t.Set(row, col, core.CatValue(idx))
	case core.Bool:
		v := rng.Intn(2) == 1
		_ = t.Set(row, col, core.BoolValue(v))
	}
}

// SetRandomRow applies SetRandom to every column of row, in column order.
func (t *Table) SetRandomRow(row int, rng *rand.Rand) {
	for col := range t.cols {
		t.SetRandom(row, col, rng)
	}
}

// Mutate perturbs the current value of a non-NA cell in place. Precondition:
// the cell is not NA; Mutate panics otherwise. A caller mutating an NA cell
// is a program bug, not a recoverable input error, and the check is O(1), so
// it is asserted unconditionally rather than guarded behind a debug build.
func (t *Table) Mutate(row, col int, mutSD float64, rng *rand.Rand) {
	if t.IsNA(row, col) {
		panic(ErrMutateNA)
	}
	p := t.ss.Params[col]
	switch p.Kind {
	case core.Real:
		t.mutateReal(row, col, p, mutSD, rng)
	case core.Int:
		t.mutateInt(row, col, p, mutSD, rng)
	case core.Categorical:
		t.mutateCategorical(row, col, p, rng)
	case core.Bool:
		t.mutateBool(row, col, rng)
	}
}

func (t *Table) mutateReal(row, col int, p core.Parameter, mutSD float64, rng *rand.Rand) {
	if p.NonMutable() {
		return
	}
	noise := distuv.Normal{Mu: 0, Sigma: mutSD, Src: rng}.Rand()
	v := t.cols[col].real[row] + (p.Upper-p.Lower)*noise
	t.cols[col].real[row] = clip(v, p.Lower, p.Upper)
}

func (t *Table) mutateInt(row, col int, p core.Parameter, mutSD float64, rng *rand.Rand) {
	if p.NonMutable() {
		return
	}
	noise := distuv.Normal{Mu: 0, Sigma: mutSD, Src: rng}.Rand()
	v := float64(t.cols[col].ints[row]) + (p.Upper-p.Lower)*noise
	v = math.Round(v)
	v = clip(v, p.Lower, p.Upper)
	t.cols[col].ints[row] = int64(v)
}

func (t *Table) mutateCategorical(row, col int, p core.Parameter, rng *rand.Rand) {
	nLevels := len(p.Levels)
	if nLevels == 1 {
		return
	}
	current := t.cols[col].cats[row]
	draw := rng.Intn(nLevels - 1) // shift trick: uniform on the n-1 other levels
	if draw >= current {
		draw++
	}
	t.cols[col].cats[row] = draw
}

func (t *Table) mutateBool(row, col int, rng *rand.Rand) {
	_ = rng.Intn(2) // consume one draw to keep the per-kind draw count fixed
	t.cols[col].bools[row] = !t.cols[col].bools[row]
}

func clip(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
