// Package sweep runs many headless fires across a range of densities and
// summarises how much of the forest burns at each one.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"wildfire/internal/sims/wildfire"
)

// ErrInvalidRange is returned for an empty or out-of-range density sweep.
var ErrInvalidRange = errors.New("invalid density range")

// Config describes a sweep. Every run uses its own seed derived from Seed,
// so results do not depend on Workers.
type Config struct {
	From    float64
	To      float64
	Step    float64
	Runs    int
	Workers int

	Width     int
	Height    int
	Seed      int64
	MaxCycles int
}

// DefaultConfig sweeps 0.1..1.0 on the classic board.
func DefaultConfig() Config {
	forest := wildfire.DefaultConfig()
	return Config{
		From:    0.1,
		To:      1.0,
		Step:    0.1,
		Runs:    20,
		Workers: runtime.NumCPU(),
		Width:   forest.Width,
		Height:  forest.Height,
		Seed:    1,
	}
}

// Validate reports the first problem with the sweep.
func (c Config) Validate() error {
	if !(c.Step > 0) {
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidRange, c.Step)
	}
	if c.From > c.To {
		return fmt.Errorf("%w: from %v is above to %v", ErrInvalidRange, c.From, c.To)
	}
	if err := wildfire.ValidateDensity(c.From); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := wildfire.ValidateDensity(c.To); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return c.forest(c.From, 0).Validate()
}

// Densities lists the swept densities, From first. Values are rounded to
// nine decimals so 0.1 steps print cleanly.
func (c Config) Densities() []float64 {
	n := int(math.Floor((c.To-c.From)/c.Step+1e-9)) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		d := math.Round((c.From+float64(i)*c.Step)*1e9) / 1e9
		if d > c.To {
			break
		}
		out = append(out, d)
	}
	return out
}

func (c Config) forest(density float64, seed int64) wildfire.Config {
	return wildfire.Config{
		Width:     c.Width,
		Height:    c.Height,
		Density:   density,
		Seed:      seed,
		MaxCycles: c.MaxCycles,
	}
}

// Point aggregates the runs at one density.
type Point struct {
	Density float64
	Runs    int
	// MeanBurnRate skips runs whose burn rate is undefined and is NaN when
	// every run was.
	MeanBurnRate float64
	MeanCycles   float64
	// Truncated counts runs that hit the cycle bound.
	Truncated int
}

// Run executes the sweep on a bounded pool of goroutines.
func Run(ctx context.Context, cfg Config, log *slog.Logger) ([]Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	densities := cfg.Densities()
	total := len(densities) * cfg.Runs
	results := make([]wildfire.Result, total)

	log.Info("sweep starting",
		"densities", len(densities),
		"runs", cfg.Runs,
		"workers", cfg.Workers,
		"width", cfg.Width,
		"height", cfg.Height)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for idx := 0; idx < total; idx++ {
		if gctx.Err() != nil {
			break
		}
		density := densities[idx/cfg.Runs]
		seed := cfg.Seed + int64(idx)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sim, err := wildfire.New(cfg.forest(density, seed))
			if err != nil {
				return fmt.Errorf("density %v seed %d: %w", density, seed, err)
			}
			results[idx] = wildfire.Simulate(sim)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	points := make([]Point, len(densities))
	for i, d := range densities {
		points[i] = aggregate(d, results[i*cfg.Runs:(i+1)*cfg.Runs])
		log.Debug("density done",
			"density", d,
			"burn_rate", wildfire.FormatRate(points[i].MeanBurnRate),
			"cycles", points[i].MeanCycles)
	}
	log.Info("sweep finished", "runs", total, "elapsed", time.Since(start).Round(time.Millisecond))
	return points, nil
}

func aggregate(density float64, runs []wildfire.Result) Point {
	p := Point{Density: density, Runs: len(runs)}
	var rateSum, cycleSum float64
	rated := 0
	for _, r := range runs {
		cycleSum += float64(r.Cycles)
		if !r.Extinguished {
			p.Truncated++
		}
		if math.IsNaN(r.BurnRate) {
			continue
		}
		rateSum += r.BurnRate
		rated++
	}
	p.MeanBurnRate = math.NaN()
	if rated > 0 {
		p.MeanBurnRate = rateSum / float64(rated)
	}
	if len(runs) > 0 {
		p.MeanCycles = cycleSum / float64(len(runs))
	}
	return p
}
