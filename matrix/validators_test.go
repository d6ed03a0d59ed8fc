// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidators checks each central validator returns its sentinel.
func TestValidators(t *testing.T) {
	a := mustDense(t, 2, 3)
	sq := mustDense(t, 3, 3)

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(a))

	require.NoError(t, matrix.ValidateSameShape(a, mustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, sq), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateSameShape(nil, a), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(matrix.NewRawDenseForTest(2, -2)), matrix.ErrOutOfBounds)

	require.NoError(t, matrix.ValidateMulCompatible(a, sq))
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, a), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateIndex(a, 1, 2))
	require.ErrorIs(t, matrix.ValidateIndex(a, 2, 0), matrix.ErrOutOfBounds)
	require.ErrorIs(t, matrix.ValidateIndex(nil, 0, 0), matrix.ErrNilMatrix)
}
