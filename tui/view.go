package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tpsolve/nwcm"
	"github.com/katalvlaran/tpsolve/report"
)

const title = "Transportation Problem: North-West Corner Method"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n\n")

	switch m.stage {
	case StageDimensions:
		b.WriteString(m.viewDimensions())
	case StageData:
		b.WriteString(m.viewData())
	default:
		b.WriteString(report.View(m.report, m.theme, report.Options{}))
		b.WriteString("\n")
		b.WriteString(m.theme.Muted.Render("b/esc: edit data • n: start over • q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDimensions() string {
	label := m.theme.Label.Width(26)

	var b strings.Builder
	b.WriteString(m.theme.Muted.Render("Step 1 of 3: problem size"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Rows (sources):"), m.dims[0].View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Columns (destinations):"), m.dims[1].View()))
	b.WriteString("\n\n")
	if m.err != "" {
		b.WriteString(m.theme.Warning.Render(m.err))
		b.WriteString("\n\n")
	}
	b.WriteString(m.theme.Muted.Render("tab: switch field • enter: continue • esc: quit"))

	return b.String()
}

func (m Model) viewData() string {
	cell := lipgloss.NewStyle().Width(fieldWidth + 3)
	head := m.theme.Header.Width(fieldWidth + 3).Padding(0)
	label := m.theme.Label.Width(8).Padding(0)

	p := m.Problem()

	var b strings.Builder
	b.WriteString(m.theme.Muted.Render("Step 2 of 3: costs, supply and demand"))
	b.WriteString("\n\n")

	header := []string{label.Render("")}
	for j := 0; j < m.cols; j++ {
		header = append(header, head.Render(p.DestinationLabel(j)))
	}
	header = append(header, head.Render("Supply"))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for i := 0; i < m.rows; i++ {
		line := []string{label.Render(p.SourceLabel(i))}
		for j := 0; j < m.cols; j++ {
			line = append(line, cell.Render(m.fields[i*m.cols+j].View()))
		}
		line = append(line, cell.Render(m.fields[m.rows*m.cols+i].View()))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, line...))
		b.WriteString("\n")
	}

	demand := []string{label.Render("Demand")}
	for j := 0; j < m.cols; j++ {
		demand = append(demand, cell.Render(m.fields[m.rows*m.cols+m.rows+j].View()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, demand...))
	b.WriteString("\n\n")

	if ts, td, err := nwcm.Totals(p.Supply, p.Demand); err == nil {
		total := "Total: supply " + ts.String() + " / demand " + td.String()
		if ts.Equal(td) {
			b.WriteString(m.theme.Muted.Render(total))
		} else {
			b.WriteString(m.theme.Warning.Render(total + " (unbalanced)"))
		}
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString(m.theme.Warning.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("tab/shift+tab: move • enter: solve • esc: back • ctrl+c: quit"))

	return b.String()
}
