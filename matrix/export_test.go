// SPDX-License-Identifier: MIT
// Package matrix: export selected internals for black-box tests.
// Compiled only under go test, so matrix_test can reach states the public
// constructors never produce.

package matrix

// NewRawDenseForTest builds a Dense with arbitrary, unvalidated dimensions.
// The backing buffer is zeroed and sized rows*cols when both are positive,
// empty otherwise.
func NewRawDenseForTest(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, max(rows, 0)*max(cols, 0))}
}
