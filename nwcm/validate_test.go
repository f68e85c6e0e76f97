package nwcm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tpsolve/matrix"
	"github.com/katalvlaran/tpsolve/nwcm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_Empty rejects problems without sources or destinations.
func TestSolve_Empty(t *testing.T) {
	_, err := nwcm.Solve(nil, nil, []float64{1})
	assert.ErrorIs(t, err, nwcm.ErrEmptyProblem)

	_, err = nwcm.Solve([][]float64{{}}, []float64{1}, []float64{})
	assert.ErrorIs(t, err, nwcm.ErrEmptyProblem)
}

// TestSolve_DimensionMismatch covers row count, column count and ragged grids.
func TestSolve_DimensionMismatch(t *testing.T) {
	tests := []struct {
		name   string
		costs  [][]float64
		supply []float64
		demand []float64
	}{
		{"too few rows", [][]float64{{1, 2}}, []float64{1, 1}, []float64{1, 1}},
		{"too many rows", [][]float64{{1}, {2}, {3}}, []float64{1, 1}, []float64{2}},
		{"short row", [][]float64{{1, 2}, {3}}, []float64{1, 1}, []float64{1, 1}},
		{"long row", [][]float64{{1, 2, 3}}, []float64{1}, []float64{1, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := nwcm.Solve(tc.costs, tc.supply, tc.demand)
			require.ErrorIs(t, err, nwcm.ErrDimensionMismatch)
			assert.NotErrorIs(t, err, nwcm.ErrInvalidInput)
		})
	}
}

// TestSolve_InvalidValues reports the offending field and position.
func TestSolve_InvalidValues(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name   string
		costs  [][]float64
		supply []float64
		demand []float64
		want   nwcm.ValueError
	}{
		{"negative supply", [][]float64{{1}, {1}}, []float64{1, -2}, []float64{1},
			nwcm.ValueError{Field: nwcm.FieldSupply, Index: 1, Value: -2}},
		{"nan demand", [][]float64{{1, 1}}, []float64{1}, []float64{nan, 1},
			nwcm.ValueError{Field: nwcm.FieldDemand, Index: 0, Value: nan}},
		{"inf cost", [][]float64{{1, 1}, {1, inf}}, []float64{1, 1}, []float64{1, 1},
			nwcm.ValueError{Field: nwcm.FieldCost, Row: 1, Col: 1, Value: inf}},
		{"negative cost", [][]float64{{-0.5}}, []float64{1}, []float64{1},
			nwcm.ValueError{Field: nwcm.FieldCost, Value: -0.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := nwcm.Solve(tc.costs, tc.supply, tc.demand)
			require.ErrorIs(t, err, nwcm.ErrInvalidInput)

			var ve nwcm.ValueError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.want.Field, ve.Field)
			assert.Equal(t, tc.want.Index, ve.Index)
			assert.Equal(t, tc.want.Row, ve.Row)
			assert.Equal(t, tc.want.Col, ve.Col)
			if !math.IsNaN(tc.want.Value) {
				assert.Equal(t, tc.want.Value, ve.Value)
			}
		})
	}
}

// TestSolve_ValidationPriority: shape problems win over bad values, and
// supply is scanned before demand before costs.
func TestSolve_ValidationPriority(t *testing.T) {
	_, err := nwcm.Solve([][]float64{{-1}}, []float64{-1, 2}, []float64{1})
	assert.ErrorIs(t, err, nwcm.ErrDimensionMismatch)

	_, err = nwcm.Solve([][]float64{{-1}}, []float64{1}, []float64{-1})
	var ve nwcm.ValueError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, nwcm.FieldDemand, ve.Field)
}

// TestSolve_NoPartialResult: a failed call returns the zero Result.
func TestSolve_NoPartialResult(t *testing.T) {
	res, err := nwcm.Solve([][]float64{{1, -1}}, []float64{1}, []float64{1, 1})
	require.Error(t, err)
	assert.Nil(t, res.Allocation)
	assert.Nil(t, res.Steps)
	assert.Zero(t, res.TotalCost)
}

// TestValueError_Message checks the human-readable form.
func TestValueError_Message(t *testing.T) {
	assert.Equal(t, "nwcm: invalid supply[1] = -2: negative",
		nwcm.ValueError{Field: nwcm.FieldSupply, Index: 1, Value: -2}.Error())
	assert.Equal(t, "nwcm: invalid cost[0][3] = +Inf: not finite",
		nwcm.ValueError{Field: nwcm.FieldCost, Col: 3, Value: math.Inf(1)}.Error())
}

// TestSolveMatrix_Validation mirrors the slice checks for Dense input.
func TestSolveMatrix_Validation(t *testing.T) {
	var nilDense *matrix.Dense
	_, err := nwcm.SolveMatrix(nilDense, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, nwcm.ErrDimensionMismatch)

	cm := mustDense(t, [][]float64{{1, 2}})
	_, err = nwcm.SolveMatrix(cm, []float64{1, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, nwcm.ErrDimensionMismatch)

	_, err = nwcm.SolveMatrix(cm, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, nwcm.ErrDimensionMismatch)

	_, err = nwcm.SolveMatrix(cm, []float64{}, []float64{1, 1})
	assert.ErrorIs(t, err, nwcm.ErrEmptyProblem)

	neg := mustDense(t, [][]float64{{1, -3}})
	_, err = nwcm.SolveMatrix(neg, []float64{1}, []float64{1, 1})
	var ve nwcm.ValueError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, nwcm.FieldCost, ve.Field)
	assert.Equal(t, 1, ve.Col)
}
