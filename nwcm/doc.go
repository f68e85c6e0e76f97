// Package nwcm builds an initial basic feasible solution of the classic
// transportation problem with the North-West Corner Method (NWCM).
//
// 🚚 What is the transportation problem?
//
//	m sources hold fixed supplies, n destinations require fixed demands,
//	and cost[r][c] is the unit cost of shipping from source r to
//	destination c. A solution is an allocation grid saying how many
//	units travel along every (r, c) lane.
//
// 🧭 What does NWCM do?
//
//	It starts at the top-left ("north-west") cell, ships as much as the
//	current row and column allow, crosses out whichever side is exhausted
//	and moves right, down, or diagonally when both run out at once. The
//	result is feasible but not cost-optimal; it is the usual starting
//	point for improvement methods.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tpsolve/nwcm"
//
//	res, err := nwcm.Solve(
//	    [][]float64{{4, 6}, {3, 2}}, // costs
//	    []float64{10, 15},           // supply
//	    []float64{12, 13},           // demand
//	)
//	// res.Allocation: [[10 0] [2 13]], res.TotalCost: 72
//
//	if !nwcm.IsBalanced(supply, demand) {
//	    // warn the user; Solve still runs and stops when either side is exhausted
//	}
//
// Contract highlights:
//
//   - Inputs are copied on entry; caller slices are never written.
//   - Degenerate steps (row and column exhausted together) advance both
//     cursors; see Decide and the Advance tags.
//   - Unbalanced problems are supported, not rejected: allocation stops when
//     the cursor leaves the grid.
//   - TotalCost is the plain float64 sum (no rounding); ExactCost is the same
//     sum in decimal arithmetic.
//   - Validation happens before any work: ErrEmptyProblem, then
//     ErrDimensionMismatch, then ErrInvalidInput (as ValueError).
//
// Performance:
//
//   - Time:   O(rows·cols) for validation and cost; the walk itself visits at
//     most rows+cols−1 cells.
//   - Memory: O(rows·cols) for the allocation grid.
//
// The package keeps no state, never logs and never blocks, so Solve and
// IsBalanced are safe to call from many goroutines at once.
package nwcm
