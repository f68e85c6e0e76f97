// Package nwcm - input validation.
//
// Every check runs before the solver allocates or copies anything, so a
// failed call has no side effects and returns no partial result.
//
// Order (enforced in tests):
//  1. ErrEmptyProblem     : no sources or no destinations.
//  2. ErrDimensionMismatch: row count, then each row's column count.
//  3. ErrInvalidInput     : supply, then demand, then costs in row-major order.
package nwcm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tpsolve/matrix"
)

// validate runs the full check sequence for Solve.
// Complexity: O(rows·cols).
func validate(costs [][]float64, supply, demand []float64) error {
	// Stage 1: non-empty problem.
	if len(supply) == 0 || len(demand) == 0 {
		return ErrEmptyProblem
	}

	// Stage 2: shape.
	if err := validateShape(costs, len(supply), len(demand)); err != nil {
		return err
	}

	// Stage 3: values.
	if err := validateVector(FieldSupply, supply); err != nil {
		return err
	}
	if err := validateVector(FieldDemand, demand); err != nil {
		return err
	}

	return validateCosts(costs)
}

// validateMatrix is the SolveMatrix counterpart of validate.
// Complexity: O(rows·cols).
func validateMatrix(costs *matrix.Dense, supply, demand []float64) error {
	if len(supply) == 0 || len(demand) == 0 {
		return ErrEmptyProblem
	}
	if err := matrix.ValidateNotNil(costs); err != nil {
		return fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateVecLen(supply, costs.Rows()); err != nil {
		return fmt.Errorf("%w: cost matrix has %d rows, supply has %d entries",
			ErrDimensionMismatch, costs.Rows(), len(supply))
	}
	if err := matrix.ValidateVecLen(demand, costs.Cols()); err != nil {
		return fmt.Errorf("%w: cost matrix has %d columns, demand has %d entries",
			ErrDimensionMismatch, costs.Cols(), len(demand))
	}
	if err := validateVector(FieldSupply, supply); err != nil {
		return err
	}
	if err := validateVector(FieldDemand, demand); err != nil {
		return err
	}

	// Dense already refuses NaN/Inf; only negativity is left to check.
	var bad error
	costs.Do(func(i, j int, v float64) bool {
		if !validQuantity(v) {
			bad = ValueError{Field: FieldCost, Row: i, Col: j, Value: v}
			return false
		}
		return true
	})

	return bad
}

// validateShape checks that costs is exactly rows×cols.
func validateShape(costs [][]float64, rows, cols int) error {
	if len(costs) != rows {
		return fmt.Errorf("%w: cost matrix has %d rows, supply has %d entries",
			ErrDimensionMismatch, len(costs), rows)
	}
	for i := range costs {
		if len(costs[i]) != cols {
			return fmt.Errorf("%w: cost row %d has %d columns, demand has %d entries",
				ErrDimensionMismatch, i, len(costs[i]), cols)
		}
	}

	return nil
}

// validateCosts reports the first invalid cost in row-major order.
func validateCosts(costs [][]float64) error {
	var i, j int
	for i = 0; i < len(costs); i++ {
		for j = 0; j < len(costs[i]); j++ {
			if !validQuantity(costs[i][j]) {
				return ValueError{Field: FieldCost, Row: i, Col: j, Value: costs[i][j]}
			}
		}
	}

	return nil
}

// validateVector reports the first invalid supply or demand entry.
func validateVector(field Field, xs []float64) error {
	for i, v := range xs {
		if !validQuantity(v) {
			return ValueError{Field: field, Index: i, Value: v}
		}
	}

	return nil
}

// validQuantity is true for finite values ≥ 0.
func validQuantity(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
