package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"

	"github.com/HamletTheHamster/unit-circle-plots/internal/chart"
	"github.com/HamletTheHamster/unit-circle-plots/internal/estimate"
	"github.com/HamletTheHamster/unit-circle-plots/internal/fit"
)

func (a *app) convergenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convergence",
		Short: "Plot |error| against N from errors.csv with a power-law fit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger := filepath.Join(a.cfg.Dir, a.cfg.Estimate.ErrorsFile)

			samples, err := estimate.ReadErrors(ledger)
			if err != nil {
				return err
			}

			xys := make(plotter.XYs, len(samples))
			ns := make([]float64, len(samples))
			errs := make([]float64, len(samples))
			for i, s := range samples {
				ns[i], errs[i] = float64(s.Points), s.Error
				xys[i] = plotter.XY{X: ns[i], Y: errs[i]}
			}

			var curve func(float64) float64
			var label string

			law, err := fit.FitPowerLaw(ns, errs)
			switch {
			case errors.Is(err, fit.ErrTooFewSamples):
				a.logger.Warn("not enough runs to fit", zap.Int("runs", len(samples)))
			case err != nil:
				return err
			default:
				curve, label = law.At, law.String()
				a.logger.Info("fitted", zap.Float64("a", law.A), zap.Float64("b", law.B))
			}

			style, err := a.cfg.Chart.Style()
			if err != nil {
				return err
			}

			c, err := chart.NewConvergence(xys, curve, label, style)
			if err != nil {
				return err
			}

			out := filepath.Join(a.cfg.Dir, a.cfg.Estimate.Convergence)
			if err := c.Save(out); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
