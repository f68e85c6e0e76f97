package nwcm

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyProblem is returned when there are no sources or no destinations.
	ErrEmptyProblem = errors.New("nwcm: problem needs at least one source and one destination")

	// ErrDimensionMismatch is returned when the cost grid does not have exactly
	// len(supply) rows of len(demand) columns each.
	ErrDimensionMismatch = errors.New("nwcm: dimension mismatch")

	// ErrInvalidInput is returned when a cost, supply or demand value is
	// negative, NaN or ±Inf. It is always carried by a ValueError.
	ErrInvalidInput = errors.New("nwcm: invalid input")
)

// Field names the input a ValueError refers to.
type Field string

const (
	FieldCost   Field = "cost"
	FieldSupply Field = "supply"
	FieldDemand Field = "demand"
)

// ValueError reports the first offending value found during validation.
// For FieldSupply and FieldDemand only Index is meaningful; for FieldCost
// Row and Col locate the cell.
type ValueError struct {
	Field Field
	Index int // supply/demand position
	Row   int // cost row
	Col   int // cost column
	Value float64
}

func (e ValueError) Error() string {
	reason := "negative"
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		reason = "not finite"
	}
	if e.Field == FieldCost {
		return fmt.Sprintf("nwcm: invalid cost[%d][%d] = %g: %s", e.Row, e.Col, e.Value, reason)
	}

	return fmt.Sprintf("nwcm: invalid %s[%d] = %g: %s", e.Field, e.Index, e.Value, reason)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match every ValueError.
func (e ValueError) Unwrap() error { return ErrInvalidInput }
