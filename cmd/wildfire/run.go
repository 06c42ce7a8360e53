package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wildfire/internal/app"
	"wildfire/internal/config"
	"wildfire/internal/core"
	"wildfire/internal/render"
	"wildfire/internal/sims/wildfire"
	"wildfire/internal/tui"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one fire and report how much of the forest burned",
	}
	bindRun(cmd)
	return cmd
}

func bindRun(cmd *cobra.Command) {
	flags := config.Bind(cmd.Flags())
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := flags.Resolve()
		if err != nil {
			return err
		}
		return runFire(cmd.Context(), cmd, cfg)
	}
}

func runFire(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	log, err := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if err := cfg.ValidateSettings(); err != nil {
		return err
	}
	if !cfg.DensitySet {
		d, err := promptDensity(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		cfg.Forest.Density = d
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Forest.Seed == 0 {
		cfg.Forest.Seed = time.Now().UnixNano()
	}
	log.Debug("resolved settings",
		"viewer", cfg.Viewer,
		"seed", cfg.Forest.Seed,
		"cycle_delay", cfg.CycleDelay,
		"ignition_delay", cfg.IgnitionDelay)

	sim, err := wildfire.New(cfg.Forest)
	if err != nil {
		return err
	}

	var res wildfire.Result
	switch cfg.Viewer {
	case config.ViewerTUI:
		var done bool
		res, done, err = tui.Run(ctx, sim, tui.Options{CycleDelay: cfg.CycleDelay, IgnitionDelay: cfg.IgnitionDelay})
		if err == nil && !done {
			log.Info("viewer closed before the fire went out", "cycle", sim.Cycle())
		}
	case config.ViewerGUI:
		opts := app.DefaultOptions()
		opts.Scale = cfg.Scale
		opts.Seed = cfg.Forest.Seed
		opts.CycleDelay = cfg.CycleDelay
		opts.IgnitionDelay = cfg.IgnitionDelay
		err = app.Run(sim, opts)
		res = sim.Result()
	default:
		res, err = textRunner(out, cfg, log).Run(ctx, sim)
	}
	if errors.Is(err, context.Canceled) {
		log.Info("interrupted", "cycle", sim.Cycle())
		err = nil
	}
	if err != nil {
		return err
	}
	return render.Report(out, res)
}

func textRunner(out io.Writer, cfg config.Config, log *slog.Logger) wildfire.Runner {
	var opts []render.TextOption
	if cfg.Color {
		opts = append(opts, render.WithColor())
	}
	return wildfire.Runner{
		Sink:   render.NewText(out, opts...),
		Pacer:  core.Pacer{Ignition: cfg.IgnitionDelay, Cycle: cfg.CycleDelay},
		Logger: log,
	}
}

func promptDensity(in io.Reader, out io.Writer) (float64, error) {
	if f, ok := in.(*os.File); ok {
		return config.PromptDensity(f, out)
	}
	return config.ReadDensity(in, out)
}
