// table.go — the columnar Table type: one typed column per parameter plus a
// parallel NA bitmap, addressed (row, col) like matrix.Dense.
package candidate

import (
	"fmt"

	"github.com/katalvlaran/lsopt/core"
)

// column holds one parameter's data as a typed, flat slice (only the field
// matching the parameter's kind is allocated) plus a parallel NA bitmap.
type column struct {
	kind core.ParamKind
	real []float64
	ints []int64
	cats []int
	bools []bool
	na   []bool
}

func newColumn(p core.Parameter, nRows int) column {
	c := column{kind: p.Kind, na: make([]bool, nRows)}
	switch p.Kind {
	case core.Real:
		c.real = make([]float64, nRows)
	case core.Int:
		c.ints = make([]int64, nRows)
	case core.Categorical:
		c.cats = make([]int, nRows)
	case core.Bool:
		c.bools = make([]bool, nRows)
	}
	for i := range c.na {
		c.na[i] = true
	}
	return c
}

// Table is a columnar batch of candidate configurations against a fixed
// core.SearchSpace. Every cell starts NA; rows are filled in by SetRandom,
// SetRandomRow, or repair.Row.
type Table struct {
	ss    *core.SearchSpace
	nRows int
	cols  []column
}

// NewTable allocates a Table of nRows rows against ss, every cell NA.
func NewTable(ss *core.SearchSpace, nRows int) *Table {
	cols := make([]column, len(ss.Params))
	for i, p := range ss.Params {
		cols[i] = newColumn(p, nRows)
	}
	return &Table{ss: ss, nRows: nRows, cols: cols}
}

// SearchSpace returns the SearchSpace this Table is typed against.
func (t *Table) SearchSpace() *core.SearchSpace { return t.ss }

// NRows returns the number of rows.
func (t *Table) NRows() int { return t.nRows }

// NCols returns the number of columns (== len(SearchSpace().Params)).
func (t *Table) NCols() int { return len(t.cols) }

func (t *Table) checkBounds(row, col int) error {
	if row < 0 || row >= t.nRows {
		return fmt.Errorf("%w: row=%d nRows=%d", ErrRowOutOfRange, row, t.nRows)
	}
	if col < 0 || col >= len(t.cols) {
		return fmt.Errorf("%w: col=%d nCols=%d", ErrColOutOfRange, col, len(t.cols))
	}
	return nil
}

// IsNA reports whether cell(row, col) is NA.
func (t *Table) IsNA(row, col int) bool {
	return t.cols[col].na[row]
}

// SetNA marks cell(row, col) as NA.
func (t *Table) SetNA(row, col int) {
	t.cols[col].na[row] = true
}

// Get reads cell(row, col) as a core.Value. Returns core.NA if the cell is NA.
func (t *Table) Get(row, col int) core.Value {
	c := &t.cols[col]
	if c.na[row] {
		return core.NA
	}
	switch c.kind {
	case core.Real:
		return core.RealValue(c.real[row])
	case core.Int:
		return core.IntValue(c.ints[row])
	case core.Categorical:
		return core.CatValue(c.cats[row])
	case core.Bool:
		return core.BoolValue(c.bools[row])
	default:
		return core.NA
	}
}

// Set writes a typed, non-NA value into cell(row, col). Passing core.NA is
// equivalent to SetNA. Returns ErrRowOutOfRange or ErrColOutOfRange for a
// cell outside the table, and ErrKindMismatch if v's kind does not match
// the column's parameter kind.
func (t *Table) Set(row, col int, v core.Value) error {
	if err := t.checkBounds(row, col); err != nil {
		return err
	}
	if v.IsNA() {
		t.SetNA(row, col)
		return nil
	}
	c := &t.cols[col]
	switch c.kind {
	case core.Real:
		if v.Kind != core.KindReal {
			return ErrKindMismatch
		}
		c.real[row] = v.R
	case core.Int:
		if v.Kind != core.KindInt {
			return ErrKindMismatch
		}
		c.ints[row] = v.I
	case core.Categorical:
		if v.Kind != core.KindCat {
			return ErrKindMismatch
		}
		c.cats[row] = v.C
	case core.Bool:
		if v.Kind != core.KindBool {
			return ErrKindMismatch
		}
		c.bools[row] = v.B
	}
	c.na[row] = false
	return nil
}

// MatchesSchema reports whether t's columns agree with ss's parameters in
// count and per-column kind, returning ErrSchemaMismatch naming the first
// disagreement if not. Table itself trusts its schema unconditionally once
// built (NewTable always derives cols from a SearchSpace's Params, so the two
// can never drift); this check exists for Tables a caller builds elsewhere
// and hands in to be validated against a SearchSpace before use.
func (t *Table) MatchesSchema(ss *core.SearchSpace) error {
	if len(t.cols) != len(ss.Params) {
		return fmt.Errorf("%w: %d columns, want %d", ErrSchemaMismatch, len(t.cols), len(ss.Params))
	}
	for i, p := range ss.Params {
		if t.cols[i].kind != p.Kind {
			return fmt.Errorf("%w: column %d is %v, want %v", ErrSchemaMismatch, i, t.cols[i].kind, p.Kind)
		}
	}
	return nil
}

// Row is a snapshot of one Table row as a plain slice of Values, used for
// GlobalBest and for handing a single row to callers outside the Table's
// columnar storage.
type Row []core.Value

// RowAt returns a Row snapshot of t's row at the given index.
func (t *Table) RowAt(row int) Row {
	out := make(Row, len(t.cols))
	for col := range t.cols {
		out[col] = t.Get(row, col)
	}
	return out
}

// SetRow writes a Row snapshot into t's row at the given index.
func (t *Table) SetRow(row int, r Row) {
	for col, v := range r {
		_ = t.Set(row, col, v)
	}
}

// CopyRow copies src's row srcRow into t's row dstRow, cell for cell,
// preserving NA. t and src must share the same SearchSpace shape (same
// number and kind of columns); this is not re-validated per call since both
// Population and the neighbor batch are always built from the same
// SearchSpace.
func (t *Table) CopyRow(dstRow int, src *Table, srcRow int) {
	for col := range t.cols {
		sc := &src.cols[col]
		dc := &t.cols[col]
		dc.na[dstRow] = sc.na[srcRow]
		if sc.na[srcRow] {
			continue
		}
		switch dc.kind {
		case core.Real:
			dc.real[dstRow] = sc.real[srcRow]
		case core.Int:
			dc.ints[dstRow] = sc.ints[srcRow]
		case core.Categorical:
			dc.cats[dstRow] = sc.cats[srcRow]
		case core.Bool:
			dc.bools[dstRow] = sc.bools[srcRow]
		}
	}
}
