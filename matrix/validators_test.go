package matrix_test

import (
	"testing"

	"github.com/sskutnik/deBOXER/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSymmetric(t *testing.T) {
	sym, err := matrix.FromRows([][]float64{{1, 2, 3}, {2, 4, 5}, {3, 5, 6}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.True(t, matrix.IsSymmetric(sym))

	asym, err := matrix.FromRows([][]float64{{1, 2}, {2.1, 1}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.2), "within tolerance")

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrNonSquare)

	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}
