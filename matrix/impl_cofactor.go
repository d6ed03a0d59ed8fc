// SPDX-License-Identifier: MIT
// Package matrix - Laplace (cofactor) expansion kernels.
//
// Purpose:
//   - Determinant by recursive expansion along the first row.
//   - Minor, Cofactor, CofactorMatrix, Adjoint and Inverse built on it.
//
// Determinism & Policy:
//   - Fixed expansion order (row 0, columns ascending); same inputs give
//     bit-identical results.
//   - No pivoting, no memoization, no decomposition: Determinant is O(n!) in
//     the matrix order. This is a known limitation; keep n small.
//   - Singularity is exact: only a determinant of exactly 0.0 is singular.

package matrix

import "fmt"

// IsSquare reports whether Rows == Cols.
// Returns ErrOutOfBounds if a dimension is negative, which a constructed
// Dense never has; the guard is kept for hand-built values.
// Complexity: O(1).
func (m *Dense) IsSquare() (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if m.r < 0 || m.c < 0 {
		return false, fmt.Errorf("IsSquare(%d,%d): %w", m.r, m.c, ErrOutOfBounds)
	}

	return m.r == m.c, nil
}

// IsSingular reports whether m is square and its determinant is exactly 0.0.
// A non-square matrix is not singular (it has no determinant at all).
// Complexity: O(n!) for square input.
func (m *Dense) IsSingular() (bool, error) {
	square, err := m.IsSquare()
	if err != nil {
		return false, matrixErrorf(opSingular, err)
	}
	if !square {
		return false, nil
	}

	return det(m.data, m.r) == 0, nil
}

// Determinant returns det(m) by cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - 1×1: the sole element.
//   - n×n: Σ_i m[0][i] * Cofactor(0, i).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (not square).
//
// Complexity:
//   - Time O(n!), Space O(n^2) across the recursion (one scratch minor per level).
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(m.data, m.r), nil
}

// Minor returns the determinant of the (n-1)×(n-1) submatrix obtained by
// deleting row r and column c (remaining entries keep their relative order).
//
// Errors:
//   - ErrInvalidDimensions if m is not square, or is 1×1 (the submatrix would be empty).
//   - ErrOutOfBounds if (r, c) is not an element of m.
//
// Complexity:
//   - Time O((n-1)!), Space O(n^2).
func (m *Dense) Minor(r, c int) (float64, error) {
	if err := m.validateExpansion(r, c); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return minorAt(m.data, m.r, r, c), nil
}

// Cofactor returns the signed minor (-1)^(r+c) * Minor(r, c).
// Errors: same as Minor.
func (m *Dense) Cofactor(r, c int) (float64, error) {
	if err := m.validateExpansion(r, c); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return paritySign(r+c) * minorAt(m.data, m.r, r, c), nil
}

// CofactorMatrix returns the same-shape matrix of cofactors, entry [i][j]
// being Cofactor(i, j) of the original matrix.
// MAIN DESCRIPTION:
//   - Results are written into a fresh buffer, so no entry is ever computed
//     from an already-replaced value.
//   - A 1×1 matrix yields [[1]], the determinant of the empty submatrix.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (not square).
//
// Complexity:
//   - Time O(n^2 * (n-1)!), Space O(n^2).
func (m *Dense) CofactorMatrix() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactorMat, err)
	}
	n := m.r
	if n == 1 {
		return NewScalar(1), nil
	}

	res := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = paritySign(i+j) * minorAt(m.data, n, i, j)
		}
	}

	return res, nil
}

// Adjoint returns the adjugate: the transpose of CofactorMatrix.
// Errors: ErrNilMatrix, ErrInvalidDimensions (not square).
func (m *Dense) Adjoint() (*Dense, error) {
	cof, err := m.CofactorMatrix()
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return cof.T(), nil
}

// Inverse returns Adjoint() scaled by 1/Determinant().
// Implementation:
//   - Stage 1: validate square.
//   - Stage 2: compute det; exactly 0.0 means singular.
//   - Stage 3: every adjugate entry is multiplied by the reciprocal 1/det.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions for non-square input.
//   - ErrInvalidDimensions and ErrSingular (both match errors.Is) for singular input.
//
// Complexity:
//   - Time O(n^2 * (n-1)!), Space O(n^2).
func (m *Dense) Inverse() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d := det(m.data, m.r)
	if d == 0 {
		return nil, fmt.Errorf("%s: %w: %w", opInverse, ErrInvalidDimensions, ErrSingular)
	}
	adj, err := m.Adjoint()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return adj.Scale(1 / d), nil
}

// Identity returns the size×size identity matrix (1.0 on i == j, 0.0 elsewhere).
// Errors: ErrInvalidDimensions for size <= 0, from NewDense.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(size int) (*Dense, error) {
	id, err := NewDense(size, size)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < size; i++ {
		id.data[i*size+i] = 1
	}

	return id, nil
}

// validateExpansion checks the shared preconditions of Minor and Cofactor.
func (m *Dense) validateExpansion(r, c int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateIndex(m, r, c); err != nil {
		return err
	}
	if m.r == 1 {
		// Deleting the only row and column leaves a 0×0 matrix.
		return fmt.Errorf("submatrix 0x0: %w", ErrInvalidDimensions)
	}

	return nil
}

// paritySign returns (-1)^k for k >= 0.
func paritySign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// det expands an n×n row-major buffer along its first row.
// The scratch submatrix is reused across columns: each recursive call has
// finished with it before the next column overwrites it.
func det(data []float64, n int) float64 {
	if n == 1 {
		return data[0]
	}

	sub := make([]float64, (n-1)*(n-1))
	sum := ZeroSum
	for i := 0; i < n; i++ {
		submatrixInto(sub, data, n, 0, i)
		sum += data[i] * (paritySign(i) * det(sub, n-1))
	}

	return sum
}

// minorAt returns det of data with row r and column c removed; requires n >= 2.
func minorAt(data []float64, n, r, c int) float64 {
	sub := make([]float64, (n-1)*(n-1))
	submatrixInto(sub, data, n, r, c)

	return det(sub, n-1)
}

// submatrixInto copies the n×n buffer src into dst, skipping row r and column c.
// len(dst) must be (n-1)*(n-1).
func submatrixInto(dst, src []float64, n, r, c int) {
	var i, j int
	k := 0
	for i = 0; i < n; i++ {
		if i == r {
			continue
		}
		for j = 0; j < n; j++ {
			if j == c {
				continue
			}
			dst[k] = src[i*n+j]
			k++
		}
	}
}
