package dominance

import "fmt"

// Matrix is a read-only row-major view over criteria scores: Dims() returns
// (d, n) where d is the number of criteria (rows) and n is the number of
// points (columns).
type Matrix interface {
	// Dims returns (rows, cols) == (number of criteria, number of points).
	Dims() (rows, cols int)
	// At returns the score of criterion i for point j.
	At(i, j int) float64
}

// Dense is the straightforward Matrix implementation: a flat row-major
// slice.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewMatrix builds a Dense from rows, one slice per criterion. Every row
// must have the same length (the number of points); ErrRaggedRows is
// returned otherwise.
func NewMatrix(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return &Dense{rows: len(rows), cols: cols, data: data}, nil
}

// Dims returns (rows, cols).
func (m *Dense) Dims() (int, int) { return m.rows, m.cols }

// At returns the element at (i, j). No bounds checking: IsDominated is the
// only caller and always stays within Dims().
func (m *Dense) At(i, j int) float64 { return m.data[i*m.cols+j] }

// dominatesSign compares points a and b (each of length d, one entry per
// criterion, lower-is-better) and returns:
//
//	 1 if a dominates b (a <= b in every criterion, strictly < in at least one)
//	-1 if b dominates a
//	 0 if neither dominates the other
//
// A single pass accumulates "b cannot dominate a" (bFlag, set when
// a[k] < b[k]) and "a cannot dominate b" (aFlag, set when b[k] < a[k]); the
// result is bFlag - aFlag cast back to -1/0/1. The loop never short-circuits
// once both flags are set, since a full scan over d criteria is cheap enough
// not to bother.
func dominatesSign(a, b []float64) int {
	aFlag, bFlag := false, false
	for k := range a {
		if a[k] < b[k] {
			bFlag = true
		} else if b[k] < a[k] {
			aFlag = true
		}
	}
	switch {
	case bFlag && !aFlag:
		return 1
	case aFlag && !bFlag:
		return -1
	default:
		return 0
	}
}

// IsDominated reports, for each point (column) in p, whether some other
// point dominates it under minimization (lower is better in every
// criterion, strictly lower in at least one). The result has length
// p.Dims() cols.
//
// Every pair of not-yet-dominated columns is compared once; as soon as a
// column is marked dominated it is skipped as both the outer and inner loop
// variable, so the total work is O(n^2 * d) in the worst case (no point
// dominates any other) but considerably less whenever dominance is found
// early.
func IsDominated(p Matrix) []bool {
	d, n := p.Dims()
	dominated := make([]bool, n)
	col := func(j int) []float64 {
		v := make([]float64, d)
		for i := 0; i < d; i++ {
			v[i] = p.At(i, j)
		}
		return v
	}

	for i := 0; i < n; i++ {
		if dominated[i] {
			continue
		}
		ci := col(i)
		for j := i + 1; j < n; j++ {
			if dominated[j] {
				continue
			}
			switch dominatesSign(ci, col(j)) {
			case 1:
				dominated[j] = true
			case -1:
				dominated[i] = true
			}
		}
	}
	return dominated
}
