package gf2m

import (
	"fmt"

	"github.com/flpborba/rankpke/rankerr"
)

// Identity returns the n x n identity matrix over the field.
func (f *Field) Identity(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make(Vector, n)
		m[i][i] = One
	}
	return m
}

// Transpose returns the transpose of m.
func (f *Field) Transpose(m Matrix) Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make(Matrix, cols)
	for j := 0; j < cols; j++ {
		out[j] = make(Vector, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// MatAdd returns a+b element-wise. a and b must have identical dimensions.
func (f *Field) MatAdd(a, b Matrix) Matrix {
	out := make(Matrix, a.Rows())
	for i := range a {
		out[i] = f.VecAdd(a[i], b[i])
	}
	return out
}

// MatEqual reports whether a and b hold the same entries.
func (f *Field) MatEqual(a, b Matrix) bool {
	if a.Rows() != b.Rows() {
		return false
	}
	for i := range a {
		if !f.VecEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// MatMul returns the product a*b. a must have as many columns as b has rows.
func (f *Field) MatMul(a, b Matrix) Matrix {
	out := make(Matrix, a.Rows())
	for i := range a {
		out[i] = f.VecMatMul(a[i], b)
	}
	return out
}

// Submatrix returns the rows [r0,r1) and columns [c0,c1) of m, copied.
func (f *Field) Submatrix(m Matrix, r0, r1, c0, c1 int) Matrix {
	out := make(Matrix, r1-r0)
	for i := r0; i < r1; i++ {
		row := make(Vector, c1-c0)
		copy(row, m[i][c0:c1])
		out[i-r0] = row
	}
	return out
}

// Augment returns the horizontal concatenation [a|b]; a and b must have the
// same number of rows.
func (f *Field) Augment(a, b Matrix) Matrix {
	out := make(Matrix, a.Rows())
	for i := range a {
		row := make(Vector, 0, len(a[i])+len(b[i]))
		row = append(row, a[i]...)
		row = append(row, b[i]...)
		out[i] = row
	}
	return out
}

// clone returns a deep copy of m.
func (f *Field) clone(m Matrix) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append(Vector(nil), row...)
	}
	return out
}

// RowReduce performs Gauss-Jordan elimination on a copy of m, taking as
// pivot in each column the first remaining row with a non-zero entry and
// swapping rows as needed, and returns the reduced matrix together with
// the rank found and the sequence of pivot columns (one per independent
// row, in row order).
//
// This single routine backs MatRank, Inverse and the Gabidulin decoder's
// null-space solve: one generic elimination core reused by several call
// sites rather than duplicated ad hoc loops.
func (f *Field) RowReduce(m Matrix) (reduced Matrix, rank int, pivots []int) {
	work := f.clone(m)
	rows, cols := work.Rows(), work.Cols()

	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if !f.IsZero(work[r][col]) {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue
		}

		work[pivotRow], work[sel] = work[sel], work[pivotRow]

		inv, err := f.Inv(work[pivotRow][col])
		if err != nil {
			continue // unreachable: pivot was checked non-zero above
		}
		for c := 0; c < cols; c++ {
			work[pivotRow][c] = f.Mul(work[pivotRow][c], inv)
		}

		for r := 0; r < rows; r++ {
			if r == pivotRow || f.IsZero(work[r][col]) {
				continue
			}
			factor := work[r][col]
			for c := 0; c < cols; c++ {
				work[r][c] = f.Add(work[r][c], f.Mul(factor, work[pivotRow][c]))
			}
		}

		pivots = append(pivots, col)
		pivotRow++
	}

	return work, pivotRow, pivots
}

// MatRank returns the rank of m over F_{2^m} (i.e. its rank as a linear map,
// not the rank-metric weight; see Rank for the latter).
func (f *Field) MatRank(m Matrix) int {
	_, rank, _ := f.RowReduce(m)
	return rank
}

// Inverse returns the inverse of the square matrix m. It fails with
// rankerr.ErrParameter if m is not square or not invertible.
func (f *Field) Inverse(m Matrix) (Matrix, error) {
	n := m.Rows()
	if m.Cols() != n {
		return nil, fmt.Errorf("gf2m.Field.Inverse: matrix is %dx%d, not square: %w", n, m.Cols(), rankerr.ErrParameter)
	}

	aug := f.Augment(m, f.Identity(n))
	reduced, rank, pivots := f.RowReduce(aug)
	if rank != n || (n > 0 && pivots[n-1] >= n) {
		return nil, fmt.Errorf("gf2m.Field.Inverse: matrix is singular: %w", rankerr.ErrParameter)
	}

	return f.Submatrix(reduced, 0, n, n, 2*n), nil
}
