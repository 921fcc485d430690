package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HamletTheHamster/unit-circle-plots/internal/points"
)

func (a *app) generateCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate [size...]",
		Short: "Write points_N.csv with N uniform samples from [-1, 1)²",
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := a.sizes(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				a.cfg.Generate.Seed = seed
			}

			for _, size := range sizes {
				path := a.cfg.InputNaming().Path(size)
				if err := points.Save(path, points.Generate(size, a.cfg.Generate.Seed)); err != nil {
					return fmt.Errorf("generate size %d: %w", size, err)
				}
				a.logger.Info("generated", zap.Int("size", size), zap.String("output", path))
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")

	return cmd
}
