package problem

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/tpsolve/nwcm"
)

var (
	// ErrBadDimensions is returned by New for non-positive row or column counts.
	ErrBadDimensions = errors.New("problem: rows and columns must be greater than 0")

	// ErrInvalidProblem is the sentinel behind every ValidationError.
	ErrInvalidProblem = errors.New("problem: validation failed")
)

// Problem is one transportation problem instance.
// Costs has len(Supply) rows of len(Demand) columns.
type Problem struct {
	Costs        [][]float64 `mapstructure:"costs"        yaml:"costs"                  json:"costs"                  validate:"required,min=1,dive,required,min=1,dive,gte=0"`
	Supply       []float64   `mapstructure:"supply"       yaml:"supply"                 json:"supply"                 validate:"required,min=1,dive,gte=0"`
	Demand       []float64   `mapstructure:"demand"       yaml:"demand"                 json:"demand"                 validate:"required,min=1,dive,gte=0"`
	Sources      []string    `mapstructure:"sources"      yaml:"sources,omitempty"      json:"sources,omitempty"      validate:"omitempty,dive,required"`
	Destinations []string    `mapstructure:"destinations" yaml:"destinations,omitempty" json:"destinations,omitempty" validate:"omitempty,dive,required"`
}

// New returns a rows×cols problem with every cost, supply and demand at zero.
func New(rows, cols int) (Problem, error) {
	if rows <= 0 || cols <= 0 {
		return Problem{}, ErrBadDimensions
	}
	p := Problem{
		Costs:  make([][]float64, rows),
		Supply: make([]float64, rows),
		Demand: make([]float64, cols),
	}
	for i := range p.Costs {
		p.Costs[i] = make([]float64, cols)
	}

	return p, nil
}

// Rows is the number of sources.
func (p Problem) Rows() int { return len(p.Supply) }

// Cols is the number of destinations.
func (p Problem) Cols() int { return len(p.Demand) }

// SourceLabel returns the label of source i, "S<i+1>" when none was given.
func (p Problem) SourceLabel(i int) string {
	if i >= 0 && i < len(p.Sources) {
		return p.Sources[i]
	}

	return "S" + strconv.Itoa(i+1)
}

// DestinationLabel returns the label of destination j, "D<j+1>" when none was given.
func (p Problem) DestinationLabel(j int) string {
	if j >= 0 && j < len(p.Destinations) {
		return p.Destinations[j]
	}

	return "D" + strconv.Itoa(j+1)
}

// Clone returns a deep copy.
func (p Problem) Clone() Problem {
	out := Problem{
		Costs:        make([][]float64, len(p.Costs)),
		Supply:       append([]float64(nil), p.Supply...),
		Demand:       append([]float64(nil), p.Demand...),
		Sources:      append([]string(nil), p.Sources...),
		Destinations: append([]string(nil), p.Destinations...),
	}
	for i := range p.Costs {
		out.Costs[i] = append([]float64(nil), p.Costs[i]...)
	}

	return out
}

// IsBalanced reports whether total supply equals total demand.
func (p Problem) IsBalanced() bool {
	return nwcm.IsBalanced(p.Supply, p.Demand)
}

// Solve validates p and runs the north-west corner walk on it.
func (p Problem) Solve() (nwcm.Result, error) {
	if err := p.Validate(); err != nil {
		return nwcm.Result{}, err
	}
	res, err := nwcm.Solve(p.Costs, p.Supply, p.Demand)
	if err != nil {
		return nwcm.Result{}, fmt.Errorf("problem: solve: %w", err)
	}

	return res, nil
}
