package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tpsolve/problem"
	"github.com/katalvlaran/tpsolve/report"
)

var errNothingToSolve = errors.New("nothing to solve: pass --file, or --costs with --supply and --demand")

type solveFlags struct {
	files  []string
	costs  string
	supply string
	demand string
	steps  bool
	jobs   int
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem file or inline data and print the allocation",
		Example: `  tpsolve solve --file problem.yaml
  tpsolve solve --file a.yaml --file b.json --format json
  tpsolve solve --costs "4,6;3,2" --supply 10,15 --demand 12,13`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSolve(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringArrayVarP(&f.files, "file", "f", nil, "problem file (yaml, json, toml); repeatable")
	fl.StringVar(&f.costs, "costs", "", `cost grid, rows separated by ';' e.g. "4,6;3,2"`)
	fl.StringVar(&f.supply, "supply", "", "supply per source, e.g. 10,15")
	fl.StringVar(&f.demand, "demand", "", "demand per destination, e.g. 12,13")
	fl.BoolVar(&f.steps, "steps", false, "also print the north-west corner path")
	fl.IntVar(&f.jobs, "jobs", 4, "files solved in parallel")
	cmd.MarkFlagsRequiredTogether("costs", "supply", "demand")
	cmd.MarkFlagsMutuallyExclusive("file", "costs")

	return cmd
}

// job is one problem to solve; name is empty for inline data.
type job struct {
	name   string
	report report.Report
}

func (a *app) runSolve(cmd *cobra.Command, f solveFlags) error {
	var jobs []job
	switch {
	case len(f.files) > 0:
		var err error
		if jobs, err = a.solveFiles(cmd, f.files, f.jobs); err != nil {
			return err
		}
	case f.costs != "":
		p, err := inlineProblem(f)
		if err != nil {
			return err
		}
		r, err := a.solveOne("inline", p)
		if err != nil {
			return err
		}
		jobs = []job{{report: r}}
	default:
		return errNothingToSolve
	}

	return a.render(cmd.OutOrStdout(), jobs, f.steps)
}

func inlineProblem(f solveFlags) (problem.Problem, error) {
	costs, err := problem.ParseGrid(f.costs)
	if err != nil {
		return problem.Problem{}, fmt.Errorf("--costs: %w", err)
	}
	supply, err := problem.ParseVector(f.supply)
	if err != nil {
		return problem.Problem{}, fmt.Errorf("--supply: %w", err)
	}
	demand, err := problem.ParseVector(f.demand)
	if err != nil {
		return problem.Problem{}, fmt.Errorf("--demand: %w", err)
	}

	return problem.Problem{Costs: costs, Supply: supply, Demand: demand}, nil
}

// solveFiles loads and solves every file concurrently. Results keep the
// order of files; the first failure cancels the files not yet started.
func (a *app) solveFiles(cmd *cobra.Command, files []string, limit int) ([]job, error) {
	out := make([]job, len(files))
	g, gctx := errgroup.WithContext(cmd.Context())
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := problem.Load(path)
			if err != nil {
				return err
			}
			r, err := a.solveOne(path, p)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out[i] = job{name: path, report: r}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *app) solveOne(name string, p problem.Problem) (report.Report, error) {
	a.log.Debug("solving", zap.String("problem", name), zap.Int("rows", p.Rows()), zap.Int("cols", p.Cols()))
	res, err := p.Solve()
	if err != nil {
		return report.Report{}, err
	}
	r, err := report.New(p, res)
	if err != nil {
		return report.Report{}, err
	}
	if !r.Balanced() {
		a.log.Warn("unbalanced problem",
			zap.String("problem", name),
			zap.String("supply", r.TotalSupply.String()),
			zap.String("demand", r.TotalDemand.String()),
			zap.String("imbalance", r.Imbalance.String()),
		)
	}
	a.log.Debug("allocation", zap.String("problem", name), zap.Stringer("allocation", res.Allocation))
	a.log.Info("solved",
		zap.String("problem", name),
		zap.String("cost", res.ExactCost.String()),
		zap.Int("basic_cells", res.BasicCells()),
		zap.Bool("degenerate", res.IsDegenerate()),
	)

	return r, nil
}

func (a *app) render(w io.Writer, jobs []job, steps bool) error {
	sep := "\n"
	if a.cfg.Output.Format == report.FormatYAML {
		sep = "---\n"
	}
	for i, j := range jobs {
		if i > 0 {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
		opts := report.Options{Color: a.cfg.Output.Color, Steps: steps, Title: j.name}
		if err := report.Render(w, j.report, a.cfg.Output.Format, opts); err != nil {
			return err
		}
	}

	return nil
}
