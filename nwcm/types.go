package nwcm

import (
	"github.com/katalvlaran/tpsolve/matrix"
	"github.com/shopspring/decimal"
)

// Advance is the cursor move taken after an allocation step.
//
//   - AdvanceRow : the row's supply is exhausted, the column still needs units.
//   - AdvanceCol : the column's demand is met (or both sides are non-zero,
//     which only happens when the column went to zero first).
//   - AdvanceBoth: row and column ran out together (degenerate step); the
//     cursor moves diagonally and never revisits (i, j+1) or (i+1, j).
type Advance int

const (
	// AdvanceRow moves the cursor to the next source.
	AdvanceRow Advance = iota + 1

	// AdvanceCol moves the cursor to the next destination.
	AdvanceCol

	// AdvanceBoth moves the cursor diagonally.
	AdvanceBoth
)

// String returns a short, stable label used in traces and rendering.
func (a Advance) String() string {
	switch a {
	case AdvanceRow:
		return "row"
	case AdvanceCol:
		return "col"
	case AdvanceBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Step records one visited cell of the north-west corner walk.
type Step struct {
	Row    int
	Col    int
	Amount float64 // units written to allocation[Row][Col]; may be 0
	Move   Advance // decision taken after the write
}

// Result holds the outcome of Solve.
type Result struct {
	// Allocation is rows×cols; allocation[r][c] units go from source r to destination c.
	Allocation *matrix.Dense

	// TotalCost is Σ allocation[r][c]·cost[r][c] summed in float64, row-major,
	// over cells with a positive allocation. No rounding is applied. Finite
	// inputs can still overflow the float64 sum to +Inf (1e200·1e200, say);
	// ExactCost stays exact in that case.
	TotalCost float64

	// ExactCost is the same sum evaluated in decimal arithmetic.
	ExactCost decimal.Decimal

	// Steps is the cursor path in visiting order.
	Steps []Step
}

// AllocationRows returns the allocation grid as a fresh [][]float64.
// Returns nil for a zero Result.
func (r Result) AllocationRows() [][]float64 {
	if r.Allocation == nil {
		return nil
	}

	return r.Allocation.ToRows()
}

// BasicCells returns the number of strictly positive allocation cells.
func (r Result) BasicCells() int {
	if r.Allocation == nil {
		return 0
	}

	return r.Allocation.CountPositive()
}

// IsDegenerate reports whether the solution has fewer than rows+cols−1
// positive cells, i.e. at least one step exhausted a row and a column together
// or moved across an empty supply/demand entry.
func (r Result) IsDegenerate() bool {
	if r.Allocation == nil {
		return false
	}
	rows, cols := r.Allocation.Shape()

	return r.BasicCells() < rows+cols-1
}

// Recompute evaluates Σ allocation[r][c]·costs[r][c] from scratch.
// It is the consistency check for ExactCost: for a Result produced by Solve
// with the same costs the two are equal.
//
// Errors: ErrDimensionMismatch when costs does not match the allocation shape,
// ErrInvalidInput (ValueError) for non-finite costs.
func (r Result) Recompute(costs [][]float64) (decimal.Decimal, error) {
	if r.Allocation == nil {
		return decimal.Zero, ErrEmptyProblem
	}
	rows, cols := r.Allocation.Shape()
	if err := validateShape(costs, rows, cols); err != nil {
		return decimal.Zero, err
	}
	if err := validateCosts(costs); err != nil {
		return decimal.Zero, err
	}
	cm, err := matrix.NewDenseFromRows(costs)
	if err != nil {
		return decimal.Zero, err
	}
	_, exact, err := totalCost(r.Allocation, cm)

	return exact, err
}
