package tui

import (
	"io"
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tpsolve/report"
)

func newTestModel(t *testing.T, cfg Config) Model {
	t.Helper()
	return New(cfg, report.NewTheme(io.Discard, false))
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	var next tea.Model = m
	for _, k := range keys {
		next, _ = next.Update(k)
	}
	out, ok := next.(Model)
	require.True(t, ok)

	return out
}

func key(kt tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: kt} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// typeValue replaces the focused field's content with s.
func typeValue(t *testing.T, m Model, s string) Model {
	t.Helper()
	return press(t, m, key(tea.KeyCtrlU), runes(s))
}

// fill enters dims, then every data field in tab order, leaving focus on the last field.
func fill(t *testing.T, m Model, rows, cols string, values ...string) Model {
	t.Helper()
	m = typeValue(t, m, rows)
	m = press(t, m, key(tea.KeyTab))
	m = typeValue(t, m, cols)
	m = press(t, m, key(tea.KeyEnter))
	require.Equal(t, StageData, m.Stage(), m.Err())

	for k, v := range values {
		if k > 0 {
			m = press(t, m, key(tea.KeyTab))
		}
		m = typeValue(t, m, v)
	}

	return m
}

func TestNew_Defaults(t *testing.T) {
	m := newTestModel(t, Config{})
	assert.Equal(t, StageDimensions, m.Stage())
	assert.Equal(t, "3", m.dims[0].Value())
	assert.Equal(t, "3", m.dims[1].Value())
	assert.Contains(t, m.View(), "Rows (sources):")
}

func TestDimensions_Accepted(t *testing.T) {
	m := newTestModel(t, Config{Rows: 2, Cols: 4})
	m = press(t, m, key(tea.KeyEnter))

	require.Equal(t, StageData, m.Stage())
	assert.Len(t, m.fields, 2*4+2+4)
	p := m.Problem()
	assert.Equal(t, [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}}, p.Costs)
	assert.Equal(t, []float64{0, 0}, p.Supply)
	assert.Equal(t, []float64{0, 0, 0, 0}, p.Demand)
	assert.Contains(t, m.View(), "Total: supply 0 / demand 0")
}

func TestDimensions_Rejected(t *testing.T) {
	for _, in := range []string{"0", "-2", "x", ""} {
		m := newTestModel(t, Config{})
		m = typeValue(t, m, in)
		m = press(t, m, key(tea.KeyEnter))

		assert.Equal(t, StageDimensions, m.Stage(), in)
		assert.Equal(t, msgBadDimensions, m.Err(), in)
		assert.Contains(t, m.View(), msgBadDimensions)
	}

	m := newTestModel(t, Config{MaxDim: 5})
	m = typeValue(t, m, "6")
	m = press(t, m, key(tea.KeyEnter))
	assert.Equal(t, "Rows and Columns must be at most 5", m.Err())
}

func TestSolve_Balanced(t *testing.T) {
	m := newTestModel(t, Config{})
	// costs (row-major), supply, demand
	m = fill(t, m, "2", "2", "4", "6", "3", "2", "10", "15", "12", "13")
	assert.Contains(t, m.View(), "Total: supply 25 / demand 25")

	m = press(t, m, key(tea.KeyEnter))
	require.Equal(t, StageResult, m.Stage(), m.Err())

	r, ok := m.Report()
	require.True(t, ok)
	assert.Equal(t, [][]float64{{10, 0}, {2, 13}}, r.Result.AllocationRows())

	view := m.View()
	assert.Contains(t, view, "Total transportation cost: 72")
	assert.Contains(t, view, "10 (@ 4)")
	assert.NotContains(t, view, "unbalanced")
}

func TestSolve_UnbalancedProceeds(t *testing.T) {
	m := newTestModel(t, Config{})
	m = fill(t, m, "1", "2", "1", "2", "5", "3", "1")
	assert.Contains(t, m.View(), "(unbalanced)")

	m = press(t, m, key(tea.KeyEnter))
	require.Equal(t, StageResult, m.Stage())
	assert.Contains(t, m.View(), "Total Supply (5) does not equal Total Demand (4). The problem is unbalanced.")
	assert.Contains(t, m.View(), "Total transportation cost: 5")
}

func TestData_NonNumericIsZero(t *testing.T) {
	m := newTestModel(t, Config{})
	m = fill(t, m, "1", "1", "abc", "7", "7")
	assert.Equal(t, [][]float64{{0}}, m.Problem().Costs)

	m = press(t, m, key(tea.KeyEnter))
	require.Equal(t, StageResult, m.Stage())
	assert.Contains(t, m.View(), "Total transportation cost: 0")
}

func TestData_NegativeShowsError(t *testing.T) {
	m := newTestModel(t, Config{})
	m = fill(t, m, "1", "1", "1", "-3", "3")
	m = press(t, m, key(tea.KeyEnter))

	assert.Equal(t, StageData, m.Stage())
	assert.Contains(t, m.Err(), "negative")
}

func TestNavigation_BackAndStartOver(t *testing.T) {
	m := newTestModel(t, Config{})
	m = fill(t, m, "1", "1", "2", "4", "4")
	m = press(t, m, key(tea.KeyEnter))
	require.Equal(t, StageResult, m.Stage())

	// back to data keeps the entries
	m = press(t, m, runes("b"))
	require.Equal(t, StageData, m.Stage())
	assert.Equal(t, []float64{4}, m.Problem().Supply)

	// back to dimensions and forward again with the same size keeps them too
	m = press(t, m, key(tea.KeyEsc))
	require.Equal(t, StageDimensions, m.Stage())
	m = press(t, m, key(tea.KeyEnter))
	require.Equal(t, StageData, m.Stage())
	assert.Equal(t, [][]float64{{2}}, m.Problem().Costs)

	m = press(t, m, key(tea.KeyEnter), runes("n"))
	assert.Equal(t, StageDimensions, m.Stage())
	assert.Nil(t, m.fields)
	_, ok := m.Report()
	assert.False(t, ok)
}

func TestFocusWraps(t *testing.T) {
	m := newTestModel(t, Config{Rows: 1, Cols: 1})
	m = press(t, m, key(tea.KeyEnter))
	require.Equal(t, 0, m.focus)

	m = press(t, m, key(tea.KeyShiftTab))
	assert.Equal(t, 2, m.focus)
	m = press(t, m, key(tea.KeyTab))
	assert.Equal(t, 0, m.focus)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Config{})
	next, cmd := m.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestParseEntry(t *testing.T) {
	assert.Equal(t, 2.5, ParseEntry(" 2.5 "))
	assert.Equal(t, 0.0, ParseEntry("abc"))
	assert.Equal(t, 0.0, ParseEntry(""))
	assert.Equal(t, 0.0, ParseEntry("NaN"))
	assert.Equal(t, 0.0, ParseEntry("+Inf"))
	assert.Equal(t, -1.0, ParseEntry("-1"))
}

func TestParseEntry_LeadingNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12abc", 12},
		{"  -3.5e2x", -350},
		{"1e", 1},
		{".5kg", 0.5},
		{"7.", 7},
		{"0x10", 0},
		{"1e999", 0},
		{"abc12", 0},
		{"+", 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseEntry(tc.in))
		})
	}
	assert.False(t, math.Signbit(ParseEntry("-0")), "negative zero counts as 0")
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "dimensions", StageDimensions.String())
	assert.Equal(t, "result", StageResult.String())
	assert.Equal(t, "unknown", Stage(9).String())
}
