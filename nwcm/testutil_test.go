package nwcm_test

import (
	"testing"

	"github.com/katalvlaran/tpsolve/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// cloneGrid deep-copies a grid so tests can compare inputs after a call.
func cloneGrid(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i := range src {
		out[i] = append([]float64(nil), src[i]...)
	}

	return out
}
