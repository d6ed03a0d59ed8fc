// SPDX-License-Identifier: MIT

// Package matrix: read-only Matrix interface consumed by collaborators
// (formatters, exporters). *Dense is the only implementation in this module.
package matrix

// Matrix is the read-only view of a two-dimensional float64 array.
// Collaborators that render or export values depend on this interface
// instead of *Dense so they cannot mutate the matrix.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
