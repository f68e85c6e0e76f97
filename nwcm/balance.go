package nwcm

import (
	"math"

	"github.com/shopspring/decimal"
)

// IsBalanced reports whether Σsupply == Σdemand.
//
// Sums are accumulated in decimal arithmetic from each value's shortest
// decimal representation and compared exactly, with no epsilon. Integer
// quantities therefore follow the plain integer rule, and real quantities
// such as 0.1+0.2 against 0.3 compare equal.
//
// IsBalanced never fails: input containing NaN or ±Inf is reported as not
// balanced. Negative values are summed as given; rejecting them is Solve's job.
func IsBalanced(supply, demand []float64) bool {
	ts, td, err := Totals(supply, demand)
	if err != nil {
		return false
	}

	return ts.Equal(td)
}

// Totals returns Σsupply and Σdemand as exact decimals.
// A non-finite entry yields a ValueError (ErrInvalidInput).
func Totals(supply, demand []float64) (decimal.Decimal, decimal.Decimal, error) {
	ts, err := exactSum(FieldSupply, supply)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	td, err := exactSum(FieldDemand, demand)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return ts, td, nil
}

// Imbalance returns Σsupply − Σdemand as an exact decimal: positive means
// excess supply, negative excess demand, zero a balanced problem.
// A non-finite entry yields a ValueError (ErrInvalidInput).
func Imbalance(supply, demand []float64) (decimal.Decimal, error) {
	ts, td, err := Totals(supply, demand)
	if err != nil {
		return decimal.Zero, err
	}

	return ts.Sub(td), nil
}

// exactSum adds xs in decimal; decimal.NewFromFloat panics on NaN/Inf so those
// are reported before conversion.
func exactSum(field Field, xs []float64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, ValueError{Field: field, Index: i, Value: v}
		}
		sum = sum.Add(decimal.NewFromFloat(v))
	}

	return sum, nil
}
