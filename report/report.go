package report

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/tpsolve/nwcm"
	"github.com/katalvlaran/tpsolve/problem"
)

// ErrNoAllocation is returned by New for a zero nwcm.Result.
var ErrNoAllocation = errors.New("report: result has no allocation")

// Report is a solved problem plus the totals the renderers show.
type Report struct {
	Problem     problem.Problem
	Result      nwcm.Result
	TotalSupply decimal.Decimal
	TotalDemand decimal.Decimal
	// Imbalance is TotalSupply − TotalDemand; positive means excess supply.
	Imbalance decimal.Decimal
}

// New pairs p with its solution res. The report keeps its own copy of the
// allocation, so later edits to res do not show up in rendered output.
func New(p problem.Problem, res nwcm.Result) (Report, error) {
	if res.Allocation == nil {
		return Report{}, ErrNoAllocation
	}
	if res.Allocation.Rows() != p.Rows() || res.Allocation.Cols() != p.Cols() {
		return Report{}, fmt.Errorf("report: allocation is %dx%d, problem is %dx%d: %w",
			res.Allocation.Rows(), res.Allocation.Cols(), p.Rows(), p.Cols(), nwcm.ErrDimensionMismatch)
	}
	ts, td, err := nwcm.Totals(p.Supply, p.Demand)
	if err != nil {
		return Report{}, fmt.Errorf("report: %w", err)
	}
	gap, err := nwcm.Imbalance(p.Supply, p.Demand)
	if err != nil {
		return Report{}, fmt.Errorf("report: %w", err)
	}
	res.Allocation = res.Allocation.Clone()

	return Report{Problem: p, Result: res, TotalSupply: ts, TotalDemand: td, Imbalance: gap}, nil
}

// Balanced reports whether total supply equals total demand.
func (r Report) Balanced() bool { return r.TotalSupply.Equal(r.TotalDemand) }

// Warning returns the imbalance message, or "" for a balanced problem.
func (r Report) Warning() string {
	if r.Balanced() {
		return ""
	}

	return UnbalancedWarning(r.TotalSupply, r.TotalDemand)
}

// UnbalancedWarning formats the message shown before an unbalanced problem is solved.
func UnbalancedWarning(supply, demand decimal.Decimal) string {
	return fmt.Sprintf("Total Supply (%s) does not equal Total Demand (%s). The problem is unbalanced.",
		supply.String(), demand.String())
}

// Shortfall describes what the north-west corner walk leaves over on an
// unbalanced problem, or "" when the problem is balanced.
func (r Report) Shortfall() string {
	switch r.Imbalance.Sign() {
	case 1:
		return "Excess supply of " + r.Imbalance.String() + " stays unallocated."
	case -1:
		return "Excess demand of " + r.Imbalance.Neg().String() + " stays unmet."
	default:
		return ""
	}
}

// Cell returns the display text of allocation cell (i, j):
// "-" when nothing is shipped, otherwise "qty (@ cost)".
func (r Report) Cell(i, j int) (text string, allocated bool) {
	qty, err := r.Result.Allocation.At(i, j)
	if err != nil {
		return "-", false
	}

	return cellText(qty, r.Problem.Costs[i][j])
}

func cellText(qty, cost float64) (string, bool) {
	if qty <= 0 {
		return "-", false
	}

	return Num(qty) + " (@ " + Num(cost) + ")", true
}

// Num formats v with the fewest digits that identify it: 10, 2.5, 0.1.
func Num(v float64) string {
	return decimal.NewFromFloat(v).String()
}
