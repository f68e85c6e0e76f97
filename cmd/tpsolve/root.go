package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tpsolve/config"
	"github.com/katalvlaran/tpsolve/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app is the state shared by all subcommands.
type app struct {
	// flags
	configPath string
	logLevel   string
	format     string
	noColor    bool

	// set up in PersistentPreRunE
	cfg *config.Config
	log *zap.Logger

	isTerminal func() bool
}

func newApp() *app {
	return &app{
		log:        zap.NewNop(),
		isTerminal: stdioIsTerminal,
	}
}

func stdioIsTerminal() bool {
	tty := func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return tty(os.Stdin) && tty(os.Stdout)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tpsolve",
		Short: "Solve transportation problems with the north-west corner method",
		Long: `tpsolve computes an initial basic feasible solution of a transportation
problem (sources with supply, destinations with demand, a cost per unit
shipped) using the north-west corner method.

Run without arguments for the interactive wizard, or use "solve" with a
problem file or inline data.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
		RunE:              a.runInteractive,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: tpsolve.yaml in . or $HOME/.config/tpsolve)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.format, "format", config.FormatTable, "output format: table, text, yaml, json")
	pf.BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newInteractiveCmd(a),
		newSolveCmd(a),
		newBalanceCmd(a),
		newTemplateCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup merges the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("file", cfg.File),
		zap.String("format", cfg.Output.Format),
		zap.Bool("color", cfg.Output.Color),
	)

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tpsolve version",
		Args:  cobra.NoArgs,
		// the version needs no configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tpsolve", version)
		},
	}
}

// printError writes err in a red rounded box.
func printError(w io.Writer, err error) {
	re := lipgloss.NewRenderer(w)
	box := re.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#E74C3C")).
		Padding(0, 1)
	fmt.Fprintln(w, box.Render("✗ "+err.Error()))
}
