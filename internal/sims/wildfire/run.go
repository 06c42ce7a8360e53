package wildfire

import (
	"context"
	"fmt"
	"log/slog"

	"wildfire/internal/core"
)

// Phase says which point of a run a Frame was taken at.
type Phase uint8

const (
	PhaseInitial Phase = iota
	PhaseIgnition
	PhaseCycle
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseIgnition:
		return "ignition"
	case PhaseCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Frame is a read-only view of the forest handed to a Sink. States aliases
// the live grid and is only valid until Show returns.
type Frame struct {
	Size   core.Size
	States []State
	Phase  Phase
	Cycle  int
}

// Frame captures the current state for a sink.
func (s *Sim) Frame(phase Phase) Frame {
	return Frame{Size: s.forest.size, States: s.forest.states, Phase: phase, Cycle: s.cycle}
}

// Sink consumes a full snapshot after initialization, after ignition and
// after every cycle.
type Sink interface {
	Show(Frame) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Frame) error

// Show calls f.
func (f SinkFunc) Show(fr Frame) error { return f(fr) }

// Result is the outcome of a run.
type Result struct {
	Cycles int
	// Extinguished is false when the cycle bound ended the run first.
	Extinguished bool
	Counts       Counts
	BurnRate     float64
}

// Runner drives a Sim from ignition to extinction.
type Runner struct {
	Sink   Sink
	Pacer  core.Pacer
	Logger *slog.Logger
}

// Run shows the initial forest, waits, seeds the fire and then alternates
// pause, spread and show until nothing burns or the cycle bound is hit. The
// only error sources are the sink and ctx.
func (r Runner) Run(ctx context.Context, s *Sim) (Result, error) {
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}
	limit := s.cfg.CycleLimit()
	log.Info("run starting",
		"width", s.forest.size.W,
		"height", s.forest.size.H,
		"density", s.cfg.Density,
		"seed", s.cfg.Seed,
		"max_cycles", limit)

	if err := r.show(s.Frame(PhaseInitial)); err != nil {
		return s.Result(), err
	}
	if err := r.Pacer.BeforeIgnition(ctx); err != nil {
		return s.Result(), err
	}
	n := s.StartFire()
	log.Info("fire started", "ignited", n)
	if err := r.show(s.Frame(PhaseIgnition)); err != nil {
		return s.Result(), err
	}

	for s.cycle < limit {
		if err := r.Pacer.BeforeCycle(ctx); err != nil {
			return s.Result(), err
		}
		s.Spread()
		if err := r.show(s.Frame(PhaseCycle)); err != nil {
			return s.Result(), err
		}
		if !s.active {
			break
		}
	}

	res := s.Result()
	if !res.Extinguished {
		log.Warn("cycle limit reached before the fire went out", "cycles", res.Cycles)
	}
	log.Info("run finished",
		"cycles", res.Cycles,
		"extinguished", res.Extinguished,
		"burn_rate", FormatRate(res.BurnRate))
	return res, nil
}

func (r Runner) show(f Frame) error {
	if r.Sink == nil {
		return nil
	}
	if err := r.Sink.Show(f); err != nil {
		return fmt.Errorf("show %s frame: %w", f.Phase, err)
	}
	return nil
}

// Simulate runs s to completion with no display and no pauses.
func Simulate(s *Sim) Result {
	res, _ := Runner{Logger: discardLogger}.Run(context.Background(), s)
	return res
}

var discardLogger = slog.New(slog.DiscardHandler)
