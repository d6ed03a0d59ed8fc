// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction, matrix
// multiplication, scalar scaling, transpose and exact equality on Dense.
// All binary operations perform strict fail-fast validation before
// allocating and return clear errors on dimension mismatches.
//
// Purpose:
//   - Define the canonical arithmetic kernels and their in-place forms.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Operands are never mutated by the binary forms; results are fresh Dense values.
//   - In-place forms compute the binary result first and only then replace the
//     receiver, so a failing call leaves the receiver untouched.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for inner products and expansions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opAddInPlace  = "AddInPlace"
	opSubInPlace  = "SubInPlace"
	opMulInPlace  = "MulInPlace"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opCofactorMat = "CofactorMatrix"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
	opIdentity    = "Identity"
	opSingular    = "IsSingular"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is.
//   - Keeps human-readable operation prefixes (e.g., "Mul: ...").
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: ValidateSameShape(m, b) before any allocation.
//   - Stage 2: Clone m, then one flat loop adding b.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrInvalidDimensions (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Add(b *Dense) (*Dense, error) {
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return addShaped(m, b), nil
}

// Sub computes C = A - B as A + (B × -1).
// The negated right operand goes through the Add kernel.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrInvalidDimensions (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (one temporary for -B).
func (m *Dense) Sub(b *Dense) (*Dense, error) {
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return addShaped(m, b.Scale(-1)), nil
}

// addShaped is the Add kernel; a and b must already share one shape.
func addShaped(a, b *Dense) *Dense {
	res := a.Clone() // result starts as a copy of the left operand
	for idx := range res.data {
		res.data[idx] += b.data[idx] // deterministic 0..n-1
	}

	return res
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; each entry accumulates from ZeroSum in k order.
//
// Behavior highlights:
//   - No zero-skipping: 0 × ±Inf yields NaN exactly as the plain inner product does.
//   - The receiver may be passed as b (m.Mul(m)); the result never aliases either operand.
//
// Inputs:
//   - m: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrInvalidDimensions (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(m.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int // loop iterators
		rowA, rowR int // row offsets into m and res
		acc        float64
	)
	for i = 0; i < m.r; i++ {
		rowA = i * m.c
		rowR = i * res.c
		for j = 0; j < b.c; j++ {
			acc = ZeroSum
			for k = 0; k < m.c; k++ {
				acc += m.data[rowA+k] * b.data[k*b.c+j]
			}
			res.data[rowR+j] = acc
		}
	}

	return res, nil
}

// Scale returns a new matrix with every element multiplied by alpha.
// Always succeeds for a constructed matrix; a nil receiver yields nil.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) *Dense {
	if m == nil {
		return nil
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res
}

// T returns a new cols×rows matrix with res[j][i] = m[i][j].
// No dimension constraint; a nil receiver yields nil.
// Complexity: O(r*c).
func (m *Dense) T() *Dense {
	if m == nil {
		return nil
	}
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// AddInPlace is m = m + b. On error m is unchanged.
func (m *Dense) AddInPlace(b *Dense) error {
	res, err := m.Add(b)
	if err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	m.adopt(res)

	return nil
}

// SubInPlace is m = m - b. On error m is unchanged.
func (m *Dense) SubInPlace(b *Dense) error {
	res, err := m.Sub(b)
	if err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	m.adopt(res)

	return nil
}

// MulInPlace is m = m × b; the shape of m becomes m.Rows() × b.Cols().
// On error m is unchanged.
func (m *Dense) MulInPlace(b *Dense) error {
	res, err := m.Mul(b)
	if err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	m.adopt(res)

	return nil
}

// ScaleInPlace is m = m × alpha.
func (m *Dense) ScaleInPlace(alpha float64) {
	if m == nil {
		return
	}
	m.adopt(m.Scale(alpha))
}

// Equal reports whether m and b have the same shape and every pair of
// corresponding elements compares equal under exact float64 ==.
// MAIN DESCRIPTION:
//   - No epsilon: 0.1+0.2 is not Equal to 0.3, and NaN is never equal to NaN
//     except when a matrix is compared with itself.
//
// Behavior highlights:
//   - m.Equal(m) short-circuits to true.
//   - Differently shaped matrices are unequal.
//   - nil equals only nil.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func (m *Dense) Equal(b *Dense) bool {
	if m == b {
		return true
	}
	if m == nil || b == nil {
		return false
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for idx, v := range m.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// NotEqual is the logical negation of Equal.
func (m *Dense) NotEqual(b *Dense) bool { return !m.Equal(b) }
