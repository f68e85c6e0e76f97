package nwcm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tpsolve/matrix"
)

// Solve: North-West Corner Method
//
// Algorithm Outline:
//  1. Validate shape and values; nothing is allocated on failure.
//  2. Copy supply and demand into working vectors s, d.
//  3. allocation = rows×cols zeros; cursor (i, j) = (0, 0).
//  4. While i < rows and j < cols:
//     amount = min(s[i], d[j])
//     allocation[i][j] = amount   (written even when amount == 0)
//     s[i] -= amount; d[j] -= amount
//     move = Decide(s[i], d[j]) and advance the cursor accordingly.
//  5. Stop as soon as i == rows or j == cols. For unbalanced input the
//     leftover supply or demand simply stays unallocated.
//  6. TotalCost = Σ allocation[r][c]·costs[r][c] over positive cells.
//
// Complexity:
//
//	Time   = O(rows·cols) (validation, zero-fill, cost); walk is O(rows+cols)
//	Memory = O(rows·cols)
//
// Errors:
//   - ErrEmptyProblem      : len(supply) == 0 or len(demand) == 0.
//   - ErrDimensionMismatch : costs is not len(supply)×len(demand).
//   - ErrInvalidInput      : negative, NaN or ±Inf value (as ValueError).
func Solve(costs [][]float64, supply, demand []float64) (Result, error) {
	if err := validate(costs, supply, demand); err != nil {
		return Result{}, err
	}
	cm, err := matrix.NewDenseFromRows(costs)
	if err != nil {
		return Result{}, fmt.Errorf("nwcm: cost matrix: %w", err)
	}

	return northWest(cm, supply, demand)
}

// SolveMatrix is Solve for callers that already hold the costs as a Dense.
// The matrix is only read.
func SolveMatrix(costs *matrix.Dense, supply, demand []float64) (Result, error) {
	if err := validateMatrix(costs, supply, demand); err != nil {
		return Result{}, err
	}

	return northWest(costs, supply, demand)
}

// Decide picks the cursor move from the remaining supply s of the current row
// and the remaining demand d of the current column, after the step's amount
// has been subtracted from both.
//
// Both zero is checked first so that a simultaneous exhaustion is always a
// diagonal move.
func Decide(s, d float64) Advance {
	switch {
	case s == 0 && d == 0:
		return AdvanceBoth
	case s == 0:
		return AdvanceRow
	default:
		return AdvanceCol
	}
}

// northWest runs the walk on validated input.
func northWest(costs *matrix.Dense, supply, demand []float64) (Result, error) {
	rows, cols := costs.Shape()

	// Working copies; the caller's slices are never written.
	s := unsignedCopy(supply)
	d := unsignedCopy(demand)

	alloc, err := matrix.NewDense(rows, cols)
	if err != nil {
		return Result{}, err
	}

	var (
		steps  = make([]Step, 0, rows+cols-1)
		i, j   int
		amount float64
		move   Advance
	)
	for i < rows && j < cols {
		amount = math.Min(s[i], d[j])
		if err = alloc.Set(i, j, amount); err != nil {
			return Result{}, err
		}
		// x - min(x, y) is exactly 0 when x is the smaller side.
		s[i] -= amount
		d[j] -= amount

		move = Decide(s[i], d[j])
		steps = append(steps, Step{Row: i, Col: j, Amount: amount, Move: move})

		switch move {
		case AdvanceBoth:
			i++
			j++
		case AdvanceRow:
			i++
		default:
			j++
		}
	}

	total, exact, err := totalCost(alloc, costs)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Allocation: alloc,
		TotalCost:  total,
		ExactCost:  exact,
		Steps:      steps,
	}, nil
}

// unsignedCopy copies xs, turning -0 into +0 so that no allocation cell
// carries a negative zero.
func unsignedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for k, v := range xs {
		if v == 0 {
			v = 0
		}
		out[k] = v
	}

	return out
}
