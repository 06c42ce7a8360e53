package core

import (
	"context"
	"time"
)

// FixedStep reports when a frame-driven loop should advance the simulation
// by one cycle. The GUI calls ShouldStep once per frame.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. A
// non-positive interval fires on every call.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the cycle interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.step = interval
}

// Delay postpones the next step by d on top of the regular interval.
func (f *FixedStep) Delay(d time.Duration) {
	f.accumulator -= d
}

// ShouldStep reports whether the simulation should advance by one cycle.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Pacer inserts the cosmetic pauses of a terminal run. The zero value never
// waits.
type Pacer struct {
	Ignition time.Duration
	Cycle    time.Duration
}

// BeforeIgnition blocks for the ignition delay or until ctx is done.
func (p Pacer) BeforeIgnition(ctx context.Context) error {
	return sleep(ctx, p.Ignition)
}

// BeforeCycle blocks for the cycle delay or until ctx is done.
func (p Pacer) BeforeCycle(ctx context.Context) error {
	return sleep(ctx, p.Cycle)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
