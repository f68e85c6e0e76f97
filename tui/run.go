package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/tpsolve/report"
)

// Run shows the wizard on the terminal attached to in and out until the user
// quits or ctx is cancelled. It returns the last solution shown, if any.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) (report.Report, bool, error) {
	m := New(cfg, report.NewTheme(out, cfg.Color))
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return report.Report{}, false, fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return report.Report{}, false, fmt.Errorf("tui: unexpected model type %T", final)
	}
	r, solved := fm.Report()

	return r, solved, nil
}
