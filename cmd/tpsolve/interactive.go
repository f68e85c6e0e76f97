package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tpsolve/tui"
)

var errNoTerminal = errors.New(`interactive mode needs a terminal; use "tpsolve solve --file <problem>" instead`)

func newInteractiveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i", "wizard"},
		Short:   "Enter a problem step by step and view the allocation",
		Args:    cobra.NoArgs,
		RunE:    a.runInteractive,
	}
	cmd.Flags().Int("rows", 0, "initial number of sources (default from config, 3)")
	cmd.Flags().Int("cols", 0, "initial number of destinations (default from config, 3)")

	return cmd
}

func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	if !a.isTerminal() {
		return errNoTerminal
	}

	wc := a.cfg.Wizard
	a.log.Info("starting wizard", zap.Int("rows", wc.Rows), zap.Int("cols", wc.Cols))
	r, solved, err := tui.Run(cmd.Context(), tui.Config{
		Rows:   wc.Rows,
		Cols:   wc.Cols,
		MaxDim: wc.MaxDim,
		Color:  a.cfg.Output.Color,
	}, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if solved {
		a.log.Info("wizard finished",
			zap.Int("rows", r.Problem.Rows()),
			zap.Int("cols", r.Problem.Cols()),
			zap.Bool("balanced", r.Balanced()),
			zap.String("cost", r.Result.ExactCost.String()),
		)
	}

	return nil
}
