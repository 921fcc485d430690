package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HamletTheHamster/unit-circle-plots/internal/estimate"
	"github.com/HamletTheHamster/unit-circle-plots/internal/points"
)

func (a *app) estimateCmd() *cobra.Command {
	var (
		workers     int
		seed        uint64
		writePoints bool
	)

	cmd := &cobra.Command{
		Use:   "estimate [size...]",
		Short: "Estimate π from N samples and append to the error and timing ledgers",
		Long: `Estimate generates N uniform samples in [-1, 1)², writes them to
points_N.csv, counts the samples inside the unit circle across --workers
goroutines and estimates π as 4·inside/N. The error against π is appended
to errors.csv and the run time to timings.csv.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := a.sizes(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Estimate.Workers = workers
			}
			if cmd.Flags().Changed("seed") {
				a.cfg.Generate.Seed = seed
			}

			// Reject bad worker counts before anything is written.
			for _, size := range sizes {
				if err := estimate.CheckWorkers(size, a.cfg.Estimate.Workers); err != nil {
					return fmt.Errorf("estimate size %d: %w", size, err)
				}
			}

			errorsPath := filepath.Join(a.cfg.Dir, a.cfg.Estimate.ErrorsFile)
			timingsPath := filepath.Join(a.cfg.Dir, a.cfg.Estimate.TimingsFile)

			for _, size := range sizes {
				start := time.Now()

				pts := points.Generate(size, a.cfg.Generate.Seed)
				if writePoints {
					if err := points.Save(a.cfg.InputNaming().Path(size), pts); err != nil {
						return fmt.Errorf("estimate size %d: %w", size, err)
					}
				}

				res, err := estimate.Estimate(cmd.Context(), pts, a.cfg.Estimate.Workers)
				if err != nil {
					return fmt.Errorf("estimate size %d: %w", size, err)
				}

				if err := estimate.AppendError(errorsPath, res); err != nil {
					return fmt.Errorf("estimate size %d: %w", size, err)
				}

				res.Elapsed = time.Since(start)
				if err := estimate.AppendTiming(timingsPath, res); err != nil {
					return fmt.Errorf("estimate size %d: %w", size, err)
				}

				a.logger.Info("estimated",
					zap.Int("size", size),
					zap.Int("workers", a.cfg.Estimate.Workers),
					zap.Int("inside", res.Inside),
					zap.Float64("pi", res.Pi),
					zap.Float64("error", res.Error),
					zap.Duration("elapsed", res.Elapsed),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.15g\t%.15g\n", size, res.Pi, res.Error)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 1, fmt.Sprintf("goroutines counting points (1-%d)", estimate.MaxWorkers))
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&writePoints, "write-points", true, "also write points_N.csv")

	return cmd
}
