package nwcm

import (
	"github.com/katalvlaran/tpsolve/matrix"
	"github.com/shopspring/decimal"
)

// totalCost sums allocation·cost over positive cells in row-major order.
// The float64 sum and the decimal sum are built from the same terms; zero
// cells are skipped, which does not change either sum.
//
// Complexity: O(rows·cols).
func totalCost(alloc, costs matrix.Matrix) (float64, decimal.Decimal, error) {
	if err := matrix.ValidateSameShape(alloc, costs); err != nil {
		return 0, decimal.Zero, ErrDimensionMismatch
	}

	var (
		rows, cols = alloc.Rows(), alloc.Cols()
		total      float64
		exact      = decimal.Zero
		i, j       int
		a, c       float64
		err        error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if a, err = alloc.At(i, j); err != nil {
				return 0, decimal.Zero, err
			}
			if a <= 0 {
				continue
			}
			if c, err = costs.At(i, j); err != nil {
				return 0, decimal.Zero, err
			}
			total += a * c
			exact = exact.Add(decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(c)))
		}
	}

	return total, exact, nil
}
