package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/unit-circle-plots/internal/config"
	"github.com/HamletTheHamster/unit-circle-plots/internal/render"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		strict, keepGoing bool
		parallel          int
		backend           string
	)

	cmd := &cobra.Command{
		Use:   "render [size...]",
		Short: "Render plot_N.png for each points_N.csv",
		Long: `Render loads points_N.csv for every size given (or the configured sizes),
draws the points over the unit circle and writes plot_N.png, where N is the
number of rows loaded. The first failure stops the run unless --keep-going
is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := a.sizes(args)
			if err != nil {
				return err
			}

			run := a.cfg.Run
			if cmd.Flags().Changed("strict") {
				run.Strict = strict
			}
			if cmd.Flags().Changed("keep-going") {
				run.KeepGoing = keepGoing
			}
			if cmd.Flags().Changed("parallel") {
				run.Parallel = parallel
			}
			if cmd.Flags().Changed("backend") {
				a.cfg.Backend = backend
			}

			b, err := a.backend()
			if err != nil {
				return err
			}

			r := render.New(
				render.WithInput(a.cfg.InputNaming()),
				render.WithOutput(a.cfg.OutputNaming()),
				render.WithBackend(b),
				render.WithStrict(run.Strict),
				render.WithLogger(a.logger),
			)

			results, err := r.RenderAll(cmd.Context(), sizes, render.RunOptions{
				KeepGoing: run.KeepGoing,
				Parallel:  run.Parallel,
			})
			for _, res := range results {
				fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a table's row count differs from its size")
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "render remaining sizes after a failure")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "render this many sizes at once")
	cmd.Flags().StringVar(&backend, "backend", config.BackendGonum, "gonum, or gnuplot in builds with -tags gnuplot")

	return cmd
}

func (a *app) backend() (
	render.Backend, error,
) {

	style, err := a.cfg.Chart.Style()
	if err != nil {
		return nil, err
	}

	switch a.cfg.Backend {
	case config.BackendGonum:
		return render.Plotter{Style: style}, nil
	case config.BackendGnuplot:
		return gnuplotBackend(style, a.debug)
	}
	return nil, fmt.Errorf("unknown backend %q", a.cfg.Backend)
}
