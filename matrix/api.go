// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin package-level entry points mirroring the Dense methods,
//     for call sites that read better as functions (Sum(a, b), Det(m)).
//   - Avoid any logic duplication; each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.r)
}

// ---------- Arithmetic ----------

// Sum is a + b. See (*Dense).Add.
func Sum(a, b *Dense) (*Dense, error) { return a.Add(b) }

// Diff is a - b, computed as a + (b × -1). See (*Dense).Sub.
func Diff(a, b *Dense) (*Dense, error) { return a.Sub(b) }

// Product is the matrix product a × b. See (*Dense).Mul.
func Product(a, b *Dense) (*Dense, error) { return a.Mul(b) }

// ScaleBy returns alpha*m. See (*Dense).Scale.
// Errors: ErrNilMatrix.
func ScaleBy(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Scale(alpha), nil
}

// Transpose returns mᵀ. See (*Dense).T.
// Errors: ErrNilMatrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.T(), nil
}

// Equal reports exact, shape-aware equality. See (*Dense).Equal.
func Equal(a, b *Dense) bool { return a.Equal(b) }

// ---------- Cofactor algebra ----------

// Det is an alias for (*Dense).Determinant.
// Complexity: O(n!).
func Det(m *Dense) (float64, error) { return m.Determinant() }

// Adjugate is an alias for (*Dense).Adjoint.
func Adjugate(m *Dense) (*Dense, error) { return m.Adjoint() }

// InverseOf is an alias for (*Dense).Inverse (adjugate / determinant).
func InverseOf(m *Dense) (*Dense, error) { return m.Inverse() }
