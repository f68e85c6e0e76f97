package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tpsolve/nwcm"
	"github.com/katalvlaran/tpsolve/problem"
	"github.com/katalvlaran/tpsolve/report"
)

func newBalanceCmd(a *app) *cobra.Command {
	var file, supply, demand string
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Report whether total supply equals total demand",
		Long: `balance compares total supply with total demand exactly (0.1+0.2 equals 0.3).
An unbalanced problem is not an error: the exit status is 0 either way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s, d []float64
			if file != "" {
				p, err := problem.Load(file)
				if err != nil {
					return err
				}
				s, d = p.Supply, p.Demand
			} else {
				var err error
				if s, err = problem.ParseVector(supply); err != nil {
					return fmt.Errorf("--supply: %w", err)
				}
				if d, err = problem.ParseVector(demand); err != nil {
					return fmt.Errorf("--demand: %w", err)
				}
			}

			ts, td, err := nwcm.Totals(s, d)
			if err != nil {
				return err
			}
			balanced := nwcm.IsBalanced(s, d)
			a.log.Info("balance checked", zap.Bool("balanced", balanced))

			out := cmd.OutOrStdout()
			if balanced {
				_, err = fmt.Fprintf(out, "Balanced: total supply %s equals total demand %s.\n", ts, td)
			} else {
				_, err = fmt.Fprintln(out, report.UnbalancedWarning(ts, td))
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "problem file to check")
	cmd.Flags().StringVar(&supply, "supply", "", "supply per source, e.g. 10,15")
	cmd.Flags().StringVar(&demand, "demand", "", "demand per destination, e.g. 12,13")
	cmd.MarkFlagsRequiredTogether("supply", "demand")
	cmd.MarkFlagsMutuallyExclusive("file", "supply")
	cmd.MarkFlagsOneRequired("file", "supply")

	return cmd
}
