package sweep

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire/internal/sims/wildfire"
)

var quiet = slog.New(slog.DiscardHandler)

func small() Config {
	return Config{
		From:    0.2,
		To:      1.0,
		Step:    0.2,
		Runs:    4,
		Workers: 3,
		Width:   12,
		Height:  8,
		Seed:    7,
	}
}

func TestDensities(t *testing.T) {
	cfg := Config{From: 0.1, To: 1.0, Step: 0.1}
	d := cfg.Densities()
	require.Len(t, d, 10)
	assert.Equal(t, 0.1, d[0])
	assert.Equal(t, 0.3, d[2])
	assert.Equal(t, 1.0, d[9])

	single := Config{From: 0.5, To: 0.5, Step: 0.1}
	assert.Equal(t, []float64{0.5}, single.Densities())
}

func TestValidate(t *testing.T) {
	require.NoError(t, small().Validate())
	require.NoError(t, DefaultConfig().Validate())

	cfg := small()
	cfg.Step = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidRange)

	cfg = small()
	cfg.From, cfg.To = 0.9, 0.1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidRange)

	cfg = small()
	cfg.From = 0
	assert.ErrorIs(t, cfg.Validate(), wildfire.ErrDensityRange)

	cfg = small()
	cfg.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = small()
	cfg.Width = 0
	assert.ErrorIs(t, cfg.Validate(), wildfire.ErrInvalidSize)
}

func TestRunIsIndependentOfWorkers(t *testing.T) {
	cfg := small()
	serial := cfg
	serial.Workers = 1

	a, err := Run(context.Background(), cfg, quiet)
	require.NoError(t, err)
	b, err := Run(context.Background(), serial, quiet)
	require.NoError(t, err)
	require.Len(t, a, 5)
	assert.Equal(t, a, b)

	for _, p := range a {
		assert.Equal(t, 4, p.Runs)
		assert.Zero(t, p.Truncated)
	}
	full := a[len(a)-1]
	assert.Equal(t, 1.0, full.Density)
	assert.Equal(t, 1.0, full.MeanBurnRate)
	assert.Equal(t, float64(cfg.Width+1), full.MeanCycles)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, small(), quiet)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAggregateSkipsUndefinedRates(t *testing.T) {
	p := aggregate(0.1, []wildfire.Result{
		{Cycles: 1, Extinguished: true, BurnRate: math.NaN()},
		{Cycles: 3, Extinguished: true, BurnRate: 0.5},
		{Cycles: 5, Extinguished: false, BurnRate: 0.25},
	})
	assert.Equal(t, 3, p.Runs)
	assert.InDelta(t, 0.375, p.MeanBurnRate, 1e-12)
	assert.InDelta(t, 3.0, p.MeanCycles, 1e-12)
	assert.Equal(t, 1, p.Truncated)

	none := aggregate(0.1, []wildfire.Result{{Cycles: 1, Extinguished: true, BurnRate: math.NaN()}})
	assert.True(t, math.IsNaN(none.MeanBurnRate))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []Point{
		{Density: 0.1, Runs: 2, MeanBurnRate: math.NaN(), MeanCycles: 1},
		{Density: 1, Runs: 2, MeanBurnRate: 1, MeanCycles: 13},
	}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "density"))
	assert.Contains(t, lines[1], "n/a")
	assert.Contains(t, lines[2], "1.0000")
	assert.Contains(t, lines[2], "13.0")
}

func TestChart(t *testing.T) {
	var buf bytes.Buffer
	err := Chart(&buf, []Point{
		{Density: 0.2, MeanBurnRate: 0.05, MeanCycles: 3},
		{Density: 0.6, MeanBurnRate: 0.7, MeanCycles: 60},
		{Density: 1.0, MeanBurnRate: 1, MeanCycles: 91},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	buf.Reset()
	err = Chart(&buf, []Point{{Density: 0.2, MeanBurnRate: math.NaN()}, {Density: 0.4, MeanBurnRate: 0.1}})
	assert.ErrorIs(t, err, ErrTooFewPoints)
}
