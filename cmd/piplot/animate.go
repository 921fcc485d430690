package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HamletTheHamster/unit-circle-plots/internal/animate"
)

func (a *app) animateCmd() *cobra.Command {
	var delay int

	cmd := &cobra.Command{
		Use:   "animate [size...]",
		Short: "Combine plot_N.png files into one animated GIF, in size order",
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := a.sizes(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("delay") {
				a.cfg.Animate.Delay = delay
			}

			frames := make([]string, len(sizes))
			for i, size := range sizes {
				frames[i] = a.cfg.OutputNaming().Path(size)
			}

			out := filepath.Join(a.cfg.Dir, a.cfg.Animate.File)
			if err := animate.WriteFile(cmd.Context(), out, frames, a.cfg.Animate.Delay); err != nil {
				return err
			}

			a.logger.Info("animated", zap.Int("frames", len(frames)), zap.String("output", out))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&delay, "delay", animate.DefaultDelay, "frame delay in 1/100 s")

	return cmd
}
