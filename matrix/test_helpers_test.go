// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep all data integer-valued where exact equality is asserted.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense ALLOCATES an r×c zero *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows ...[]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustIdentity builds I_n or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	id, err := matrix.Identity(n)
	require.NoError(tb, err)

	return id
}

// fillInts fills m with small integers from a fixed seed so products and
// determinants stay exact in float64.
func fillInts(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, float64(rng.Intn(19)-9))) // values in [-9, 9]
		}
	}
}

// requireEqualDense asserts exact equality and reports both matrices on failure.
func requireEqualDense(tb testing.TB, want, got *matrix.Dense) {
	tb.Helper()
	require.Truef(tb, want.Equal(got), "want %v\ngot  %v", dump(tb, want), dump(tb, got))
}

// dump returns the row slices of m for failure messages.
func dump(tb testing.TB, m *matrix.Dense) [][]float64 {
	tb.Helper()
	if m == nil {
		return nil
	}
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out[i][j] = v
		}
	}

	return out
}

// demoMatrix is the 3×3 reference scenario with det 22.
func demoMatrix(tb testing.TB) *matrix.Dense {
	return mustRows(tb,
		[]float64{1, 2, 3},
		[]float64{0, 4, 5},
		[]float64{1, 0, 6},
	)
}
