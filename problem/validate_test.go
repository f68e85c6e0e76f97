package problem_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tpsolve/problem"
)

func posInf() float64 { return math.Inf(1) }

func TestValidate_OK(t *testing.T) {
	p := sample()
	p.Sources = []string{"A", "B"}
	require.NoError(t, p.Validate())
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *problem.Problem)
		want   string // substring of one of the messages
	}{
		{"no supply", func(p *problem.Problem) { p.Supply = nil }, "supply"},
		{"negative demand", func(p *problem.Problem) { p.Demand[1] = -1 }, "demand[1]"},
		{"negative cost", func(p *problem.Problem) { p.Costs[1][0] = -3 }, "costs[1][0]"},
		{"ragged costs", func(p *problem.Problem) { p.Costs[1] = []float64{1} }, "costs must have one row per supply entry"},
		{"missing cost row", func(p *problem.Problem) { p.Costs = p.Costs[:1] }, "costs must have one row per supply entry"},
		{"short labels", func(p *problem.Problem) { p.Sources = []string{"only"} }, "one label per source"},
		{"blank label", func(p *problem.Problem) { p.Destinations = []string{"X", ""} }, "destinations[1]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := sample()
			tc.mutate(&p)

			err := p.Validate()
			require.ErrorIs(t, err, problem.ErrInvalidProblem)

			var verr *problem.ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Messages)
			assert.Contains(t, strings.Join(verr.Messages, "\n"), tc.want)
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	p := sample()
	p.Supply[0] = -1
	p.Demand[0] = -2

	var verr *problem.ValidationError
	require.ErrorAs(t, p.Validate(), &verr)
	assert.Len(t, verr.Messages, 2)
	assert.True(t, strings.HasPrefix(verr.Error(), "problem: validation failed: "))
}
