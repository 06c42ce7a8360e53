package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wildfire/internal/config"
	"wildfire/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	cfg := sweep.DefaultConfig()
	var (
		chartPath string
		logLevel  string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run many headless fires per density and tabulate the mean burn rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := config.NewLogger(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			points, err := sweep.Run(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			if err := sweep.WriteTable(cmd.OutOrStdout(), points); err != nil {
				return err
			}
			if chartPath == "" {
				return nil
			}
			f, err := os.Create(chartPath)
			if err != nil {
				return fmt.Errorf("create chart: %w", err)
			}
			if err := sweep.Chart(f, points); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			log.Info("chart written", "path", chartPath)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&cfg.From, "from", cfg.From, "first density")
	fs.Float64Var(&cfg.To, "to", cfg.To, "last density")
	fs.Float64Var(&cfg.Step, "step", cfg.Step, "density increment")
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "fires per density")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "fires simulated in parallel")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the first fire; later fires count up from it")
	fs.IntVar(&cfg.MaxCycles, "max-cycles", 0, "stop each fire after this many cycles (0 sizes the bound from the grid)")
	fs.StringVar(&chartPath, "chart", "", "also write a PNG chart to this path")
	fs.StringVar(&logLevel, "log-level", "warn", "debug, info, warn or error")
	return cmd
}
