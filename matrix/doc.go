// SPDX-License-Identifier: MIT

// Package matrix provides a dense, arbitrary-size float64 matrix with
// bounds-checked access and cofactor-expansion algebra.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix that exclusively owns a single flat buffer
//     (offset = i*cols + j). Every constructor that receives external values
//     copies them; Clone and Assign deep-copy.
//   - Arithmetic: Add, Sub, Mul, Scale, T and their in-place forms
//     (AddInPlace, SubInPlace, MulInPlace, ScaleInPlace).
//   - Exact equality (Equal/NotEqual); differently shaped matrices are unequal.
//   - Laplace expansion: Determinant, Minor, Cofactor, CofactorMatrix,
//     Adjoint and Inverse (adjugate scaled by 1/det).
//
// Errors are package-level sentinels (ErrOutOfBounds, ErrInvalidDimensions,
// ErrSingular, ErrNilMatrix) wrapped with the failing operation; match them
// with errors.Is. No method panics on user input.
//
// Determinant and Inverse run in factorial time in the matrix order: there is
// no pivoting and no decomposition. Use them on small matrices only.
//
// The package performs no formatting and no I/O; see matrix/format for text
// rendering over the read-only Matrix interface.
package matrix
