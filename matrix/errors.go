// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// operation context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still use errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> singularity.

var (
	// ErrOutOfBounds indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Ref) MUST return this, not panic.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrInvalidDimensions signals a violated shape precondition: non-positive
	// rows/cols at allocation, ragged or short source buffers, Add/Sub of
	// different shapes, Mul with a.Cols != b.Rows, determinant/minor/cofactor of
	// a non-square matrix, and inversion of a singular matrix.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrSingular is matched, together with ErrInvalidDimensions, when Inverse
	// refuses a square matrix whose determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
