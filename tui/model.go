package tui

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/tpsolve/nwcm"
	"github.com/katalvlaran/tpsolve/problem"
	"github.com/katalvlaran/tpsolve/report"
)

// Stage is the wizard screen currently shown.
type Stage int

const (
	// StageDimensions asks for rows and columns.
	StageDimensions Stage = iota

	// StageData edits costs, supply and demand.
	StageData

	// StageResult shows the allocation.
	StageResult
)

// String names the stage for logs.
func (s Stage) String() string {
	switch s {
	case StageDimensions:
		return "dimensions"
	case StageData:
		return "data"
	case StageResult:
		return "result"
	default:
		return "unknown"
	}
}

const (
	msgBadDimensions = "Rows and Columns must be greater than 0"
	fieldWidth       = 8
	fieldCharLimit   = 16
)

// Config sets the wizard's starting point.
type Config struct {
	Rows   int  // default number of sources
	Cols   int  // default number of destinations
	MaxDim int  // upper bound for both dimensions; 0 means unbounded
	Color  bool // colour output when the terminal supports it
}

// Model is the bubbletea model of the wizard.
type Model struct {
	cfg   Config
	theme report.Theme
	stage Stage

	// dimensions screen
	dims     [2]textinput.Model
	dimFocus int

	// data screen
	rows, cols int
	fields     []textinput.Model // costs row-major, then supply, then demand
	focus      int

	// result screen
	report report.Report

	err      string
	quitting bool
}

// New returns a wizard on the dimensions screen.
func New(cfg Config, theme report.Theme) Model {
	if cfg.Rows <= 0 {
		cfg.Rows = 3
	}
	if cfg.Cols <= 0 {
		cfg.Cols = 3
	}
	m := Model{cfg: cfg, theme: theme}
	m.resetDimensions()

	return m
}

func newField(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = fieldCharLimit
	ti.Width = fieldWidth
	ti.SetValue(value)

	return ti
}

func (m *Model) resetDimensions() {
	m.stage = StageDimensions
	m.dims[0] = newField(strconv.Itoa(m.cfg.Rows))
	m.dims[1] = newField(strconv.Itoa(m.cfg.Cols))
	m.dimFocus = 0
	m.dims[0].Focus()
	m.fields = nil
	m.report = report.Report{}
	m.err = ""
}

// Stage returns the screen currently shown.
func (m Model) Stage() Stage { return m.stage }

// Err returns the message currently shown to the user, if any.
func (m Model) Err() string { return m.err }

// Report returns the last solution; ok is false until one was computed.
func (m Model) Report() (r report.Report, ok bool) {
	return m.report, m.report.Result.Allocation != nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if ok && key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.stage {
	case StageDimensions:
		return m.updateDimensions(msg)
	case StageData:
		return m.updateData(msg)
	default:
		return m.updateResult(msg)
	}
}

func (m Model) updateDimensions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			m.dims[m.dimFocus].Blur()
			m.dimFocus = 1 - m.dimFocus
			return m, m.dims[m.dimFocus].Focus()
		case tea.KeyEnter:
			return m.submitDimensions()
		case tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.dims[m.dimFocus], cmd = m.dims[m.dimFocus].Update(msg)

	return m, cmd
}

func (m Model) submitDimensions() (tea.Model, tea.Cmd) {
	rows, errR := strconv.Atoi(strings.TrimSpace(m.dims[0].Value()))
	cols, errC := strconv.Atoi(strings.TrimSpace(m.dims[1].Value()))
	if errR != nil || errC != nil || rows <= 0 || cols <= 0 {
		m.err = msgBadDimensions
		return m, nil
	}
	if m.cfg.MaxDim > 0 && (rows > m.cfg.MaxDim || cols > m.cfg.MaxDim) {
		m.err = fmt.Sprintf("Rows and Columns must be at most %d", m.cfg.MaxDim)
		return m, nil
	}

	// Going back and forth with unchanged dimensions keeps the entered data.
	if m.fields == nil || rows != m.rows || cols != m.cols {
		m.rows, m.cols = rows, cols
		m.fields = make([]textinput.Model, rows*cols+rows+cols)
		for k := range m.fields {
			m.fields[k] = newField("0")
		}
	}
	m.dims[m.dimFocus].Blur()
	m.focus = 0
	m.err = ""
	m.stage = StageData

	return m, m.fields[0].Focus()
}

func (m Model) updateData(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyDown:
			return m.moveFocus(1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m.moveFocus(-1)
		case tea.KeyEnter:
			return m.solve()
		case tea.KeyEsc:
			m.fields[m.focus].Blur()
			m.err = ""
			m.stage = StageDimensions
			return m, m.dims[m.dimFocus].Focus()
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)

	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	n := len(m.fields)
	m.fields[m.focus].Blur()
	m.focus = ((m.focus+delta)%n + n) % n

	return m, m.fields[m.focus].Focus()
}

func (m Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Type == tea.KeyEsc || key.String() == "b":
		m.stage = StageData
		return m, m.fields[m.focus].Focus()
	case key.String() == "n":
		m.resetDimensions()
		return m, textinput.Blink
	case key.String() == "q":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// Problem returns the data screen's current entries as a problem.
func (m Model) Problem() problem.Problem {
	p, err := problem.New(m.rows, m.cols)
	if err != nil {
		return problem.Problem{}
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			p.Costs[i][j] = ParseEntry(m.fields[i*m.cols+j].Value())
		}
		p.Supply[i] = ParseEntry(m.fields[m.rows*m.cols+i].Value())
	}
	for j := 0; j < m.cols; j++ {
		p.Demand[j] = ParseEntry(m.fields[m.rows*m.cols+m.rows+j].Value())
	}

	return p
}

func (m Model) solve() (tea.Model, tea.Cmd) {
	p := m.Problem()
	res, err := nwcm.Solve(p.Costs, p.Supply, p.Demand)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	r, err := report.New(p, res)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.fields[m.focus].Blur()
	m.report = r
	m.err = ""
	m.stage = StageResult

	return m, nil
}

// leadingNumber matches the decimal number a field starts with.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseEntry reads the number a data-entry field starts with, so "12abc"
// is 12. A field with no leading number, or one that is not finite,
// counts as 0.
func ParseEntry(s string) float64 {
	lead := leadingNumber.FindString(strings.TrimSpace(s))
	if lead == "" {
		return 0
	}
	v, err := strconv.ParseFloat(lead, 64)
	if err != nil || math.IsInf(v, 0) || v == 0 {
		return 0
	}

	return v
}
