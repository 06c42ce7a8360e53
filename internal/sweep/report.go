package sweep

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"wildfire/internal/sims/wildfire"
)

// ErrTooFewPoints is returned when a chart would have fewer than two points.
var ErrTooFewPoints = errors.New("chart needs at least two densities with a defined burn rate")

// WriteTable prints one aligned row per density.
func WriteTable(w io.Writer, points []Point) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "density\truns\tburn rate\tcycles\ttruncated")
	for _, p := range points {
		fmt.Fprintf(tw, "%.2f\t%d\t%s\t%.1f\t%d\n",
			p.Density, p.Runs, formatMean(p.MeanBurnRate), p.MeanCycles, p.Truncated)
	}
	return tw.Flush()
}

func formatMean(v float64) string {
	if math.IsNaN(v) {
		return wildfire.FormatRate(v)
	}
	return fmt.Sprintf("%.4f", v)
}

// Chart renders burn rate and mean cycles against density as a PNG.
func Chart(w io.Writer, points []Point) error {
	var xs, rates, cycles []float64
	for _, p := range points {
		if math.IsNaN(p.MeanBurnRate) {
			continue
		}
		xs = append(xs, p.Density)
		rates = append(rates, p.MeanBurnRate)
		cycles = append(cycles, p.MeanCycles)
	}
	if len(xs) < 2 {
		return ErrTooFewPoints
	}

	fire := wildfire.Burning.Color()
	graph := chart.Chart{
		Width:  800,
		Height: 480,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "density",
			Style:          chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.2f", v.(float64)) },
		},
		YAxis: chart.YAxis{
			Name:  "burn rate",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		YAxisSecondary: chart.YAxis{
			Name:  "cycles",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "burn rate",
				XValues: xs,
				YValues: rates,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: fire.R, G: fire.G, B: fire.B, A: 255},
					StrokeWidth: 3.0,
				},
			},
			chart.ContinuousSeries{
				Name:    "mean cycles",
				YAxis:   chart.YAxisSecondary,
				XValues: xs,
				YValues: cycles,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
