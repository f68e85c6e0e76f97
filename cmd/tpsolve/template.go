package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tpsolve/problem"
)

func newTemplateCmd(a *app) *cobra.Command {
	var (
		rows, cols int
		out        string
		force      bool
	)
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a zero-filled problem file to fill in",
		Example: `  tpsolve template --sources 3 --destinations 4 > problem.yaml
  tpsolve template -s 2 -d 2 --out problem.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := problem.New(rows, cols)
			if err != nil {
				return err
			}
			format := "yaml"
			if strings.EqualFold(filepath.Ext(out), ".json") {
				format = "json"
			}

			if out == "" {
				err = problem.Encode(cmd.OutOrStdout(), p, format)
			} else {
				err = writeTemplate(out, force, p, format)
			}
			if err != nil {
				return err
			}
			a.log.Info("template written", zap.String("out", out), zap.Int("rows", rows), zap.Int("cols", cols))

			return nil
		},
	}
	cmd.Flags().IntVarP(&rows, "sources", "s", 3, "number of sources (rows)")
	cmd.Flags().IntVarP(&cols, "destinations", "d", 3, "number of destinations (columns)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout); .json selects JSON")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing output file")

	return cmd
}

// writeTemplate encodes p into the file at path. Without force an existing
// file is an error. A failed write removes the file it created.
func writeTemplate(path string, force bool, p problem.Problem, format string) error {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return fmt.Errorf("template: %w", err)
	}
	if err = problem.Encode(f, p, format); err != nil {
		return errors.Join(err, f.Close(), os.Remove(path))
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	return nil
}
