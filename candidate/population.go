package candidate

import "math"

// Population is a Table of height n_searches paired with each walk's
// current score (in minimize orientation) and its consecutive
// non-improving step count.
type Population struct {
	*Table
	PopY     []float64
	Stagnate []int32
}

// NewPopulation wraps an existing Table (already sized to n_searches rows)
// as a Population. PopY starts at +Inf for every walk (no walk has been
// scored yet); Stagnate starts at zero.
func NewPopulation(table *Table) *Population {
	nSearches := table.NRows()
	popY := make([]float64, nSearches)
	for i := range popY {
		popY[i] = math.Inf(1)
	}
	return &Population{
		Table:    table,
		PopY:     popY,
		Stagnate: make([]int32, nSearches),
	}
}
