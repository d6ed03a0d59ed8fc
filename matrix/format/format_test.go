// SPDX-License-Identifier: MIT
package format_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/katalvlaran/cofactor/matrix/format"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestStringOutput checks the row-bracket layout.
func TestStringOutput(t *testing.T) {
	m := mustRows(t, []float64{1, 2}, []float64{3, 4})
	s, err := format.String(m)
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", s)

	s, err = format.String(mustRows(t, []float64{0.5, -1e21}))
	require.NoError(t, err)
	require.Equal(t, "[0.5, -1e+21]\n", s)
}

func TestAligned(t *testing.T) {
	m := mustRows(t, []float64{24, 5, -4}, []float64{-12, 3, 2})

	s, err := format.Aligned(m, 0) // fit widest cell ("-12")
	require.NoError(t, err)
	require.Equal(t, " 24   5  -4\n-12   3   2\n", s)

	s, err = format.Aligned(m, 5)
	require.NoError(t, err)
	require.Equal(t, "   24     5    -4\n  -12     3     2\n", s)

	s, err = format.Aligned(m, 1) // narrower than a cell never truncates
	require.NoError(t, err)
	require.Equal(t, "24 5 -4\n-12 3 2\n", s)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.Write(&buf, matrix.NewScalar(7), 0))
	require.Equal(t, "7\n", buf.String())
}

func TestNilMatrix(t *testing.T) {
	_, err := format.String(nil)
	require.ErrorIs(t, err, format.ErrNilMatrix)
	_, err = format.Aligned(nil, 0)
	require.ErrorIs(t, err, format.ErrNilMatrix)

	var typed *matrix.Dense
	require.NotPanics(t, func() {
		_, err = format.String(typed)
	})
	require.ErrorIs(t, err, format.ErrNilMatrix)
	require.NotPanics(t, func() {
		err = format.Write(&bytes.Buffer{}, typed, 0)
	})
	require.ErrorIs(t, err, format.ErrNilMatrix)
}

// failingReader reports a shape it cannot serve.
type failingReader struct{}

func (failingReader) Rows() int { return 1 }
func (failingReader) Cols() int { return 1 }
func (failingReader) At(int, int) (float64, error) {
	return 0, matrix.ErrOutOfBounds
}

func TestAccessErrorsPropagate(t *testing.T) {
	_, err := format.String(failingReader{})
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)

	err = format.Write(&bytes.Buffer{}, failingReader{}, 0)
	require.True(t, errors.Is(err, matrix.ErrOutOfBounds))
}
