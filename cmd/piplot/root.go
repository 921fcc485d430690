package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HamletTheHamster/unit-circle-plots/internal/config"
)

type app struct {
	cfgFile string
	dir     string
	debug   bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "piplot",
		Short: "Plot unit-circle sample points",
		Long: `piplot draws each points_N.csv table as a scatter chart over the unit
circle and saves it as plot_N.png. It can also generate the tables and
estimate π from them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "d", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "human-readable debug logging")

	rootCmd.AddCommand(
		a.renderCmd(),
		a.generateCmd(),
		a.estimateCmd(),
		a.convergenceCmd(),
		a.animateCmd(),
	)

	return rootCmd
}

func (a *app) setup(
	cmd *cobra.Command,
	args []string,
) error {

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.dir != "" {
		cfg.Dir = a.dir
	}
	a.cfg = cfg

	if a.debug {
		a.logger, err = zap.NewDevelopment()
	} else {
		a.logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	a.logger.Debug("config loaded",
		zap.String("file", a.cfgFile),
		zap.String("dir", cfg.Dir),
		zap.Ints("sizes", cfg.Sizes),
	)
	return nil
}

// sizes parses positional dataset sizes, falling back to the configured
// list when there are none.
func (a *app) sizes(
	args []string,
) (
	[]int, error,
) {

	if len(args) == 0 {
		return a.cfg.Sizes, nil
	}

	sizes := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid dataset size %q", arg)
		}
		sizes[i] = n
	}
	return sizes, nil
}
