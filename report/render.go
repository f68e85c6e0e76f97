package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

// Formats accepted by Render.
const (
	FormatTable = "table"
	FormatText  = "text"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Options tune the human-readable formats.
type Options struct {
	// Color enables ANSI colours for "table" when w is a terminal.
	Color bool
	// Steps appends the north-west corner path below the table.
	Steps bool
	// Title is printed above the table, e.g. the problem file name.
	Title string
}

// Render writes r to w in the given format.
func Render(w io.Writer, r Report, format string, opts Options) error {
	switch strings.ToLower(format) {
	case FormatTable, "":
		_, err := io.WriteString(w, View(r, NewTheme(w, opts.Color), opts))
		return err
	case FormatText:
		_, err := io.WriteString(w, View(r, newTheme(w, false, true), opts))
		return err
	case FormatYAML:
		return writeYAML(w, r.Document())
	case FormatJSON:
		return writeJSON(w, r.Document())
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

// Theme is the set of styles a view is drawn with.
type Theme struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Warning   lipgloss.Style
	Header    lipgloss.Style
	Label     lipgloss.Style
	Cell      lipgloss.Style
	Allocated lipgloss.Style
	Border    lipgloss.Style
	Frame     lipgloss.Border
}

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorBright  = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorMuted   = lipgloss.Color("#5C7A84")
	colorBorder  = lipgloss.Color("#16858E")
)

// NewTheme returns the bordered theme for output written to w.
// Colours are used only when color is set and w is a colour-capable terminal.
func NewTheme(w io.Writer, color bool) Theme {
	return newTheme(w, color, false)
}

func newTheme(w io.Writer, color, ascii bool) Theme {
	re := lipgloss.NewRenderer(w)
	if !color {
		re.SetColorProfile(termenv.Ascii)
	}
	frame := lipgloss.RoundedBorder()
	if ascii {
		frame = lipgloss.ASCIIBorder()
	}

	return themeFor(re, frame)
}

func themeFor(re *lipgloss.Renderer, frame lipgloss.Border) Theme {
	cell := re.NewStyle().Padding(0, 1)

	return Theme{
		Title:     re.NewStyle().Bold(true).Foreground(colorBright),
		Muted:     re.NewStyle().Foreground(colorMuted),
		Warning:   re.NewStyle().Foreground(colorWarning),
		Header:    cell.Bold(true).Foreground(colorAccent),
		Label:     cell.Bold(true),
		Cell:      cell.Foreground(colorMuted),
		Allocated: cell.Bold(true).Foreground(colorBright),
		Border:    re.NewStyle().Foreground(colorBorder),
		Frame:     frame,
	}
}

// View draws the cost line, the optional imbalance warning, the allocation
// table and, when asked for, the north-west corner path.
func View(r Report, th Theme, opts Options) string {
	var b strings.Builder

	if opts.Title != "" {
		b.WriteString(th.Title.Render(opts.Title))
		b.WriteByte('\n')
	}
	b.WriteString(th.Title.Render("Total transportation cost: " + r.Result.ExactCost.String()))
	b.WriteByte('\n')
	if warn := r.Warning(); warn != "" {
		b.WriteString(th.Warning.Render("! " + warn))
		b.WriteByte('\n')
		b.WriteString(th.Muted.Render(r.Shortfall()))
		b.WriteByte('\n')
	}
	b.WriteString(Table(r, th))
	b.WriteByte('\n')

	rows, cols := r.Result.Allocation.Shape()
	basic := fmt.Sprintf("Basic cells: %d of %d", r.Result.BasicCells(), rows+cols-1)
	if r.Result.IsDegenerate() {
		basic += " (degenerate)"
	}
	b.WriteString(th.Muted.Render(basic))
	b.WriteByte('\n')

	if opts.Steps {
		b.WriteString(Path(r, th))
	}

	return b.String()
}

// Table draws the allocation grid with a supply column and a demand row.
func Table(r Report, th Theme) string {
	p := r.Problem
	rows, cols := p.Rows(), p.Cols()

	headers := make([]string, 0, cols+2)
	headers = append(headers, "")
	for j := 0; j < cols; j++ {
		headers = append(headers, p.DestinationLabel(j))
	}
	headers = append(headers, "Supply")

	grid := make([][]string, 0, rows+1)
	allocated := make([][]bool, rows)
	for i := 0; i < rows; i++ {
		line := make([]string, 0, cols+2)
		line = append(line, p.SourceLabel(i))
		allocated[i] = make([]bool, cols)
		qty, err := r.Result.Allocation.Row(i)
		if err != nil {
			qty = make([]float64, cols)
		}
		for j := 0; j < cols; j++ {
			text, ok := cellText(qty[j], p.Costs[i][j])
			allocated[i][j] = ok
			line = append(line, text)
		}
		grid = append(grid, append(line, Num(p.Supply[i])))
	}
	demand := make([]string, 0, cols+2)
	demand = append(demand, "Demand")
	for j := 0; j < cols; j++ {
		demand = append(demand, Num(p.Demand[j]))
	}
	grid = append(grid, append(demand, ""))

	t := table.New().
		Border(th.Frame).
		BorderStyle(th.Border).
		Headers(headers...).
		Rows(grid...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return th.Header
			case col == 0 || row == rows:
				return th.Label
			case col <= cols && allocated[row][col-1]:
				return th.Allocated
			default:
				return th.Cell
			}
		})

	return t.String()
}

// Path lists the visited cells in order with the move taken after each.
func Path(r Report, th Theme) string {
	var b strings.Builder
	b.WriteString(th.Muted.Render("North-west corner path:"))
	b.WriteByte('\n')
	for k, s := range r.Result.Steps {
		line := strconv.Itoa(k+1) + ". " +
			r.Problem.SourceLabel(s.Row) + " -> " + r.Problem.DestinationLabel(s.Col) +
			": " + Num(s.Amount) + " (next: " + s.Move.String() + ")"
		b.WriteString(th.Muted.Render(line))
		b.WriteByte('\n')
	}

	return b.String()
}
