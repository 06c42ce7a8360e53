package app

import (
	"errors"
	"time"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the desktop viewer requires building with -tags ebiten")

// Options configures the desktop viewer.
type Options struct {
	Scale         int
	PanelWidth    int
	Seed          int64
	CycleDelay    time.Duration
	IgnitionDelay time.Duration
}

// DefaultOptions returns the viewer defaults.
func DefaultOptions() Options {
	return Options{
		Scale:         8,
		PanelWidth:    220,
		CycleDelay:    250 * time.Millisecond,
		IgnitionDelay: 1500 * time.Millisecond,
	}
}

func (o Options) normalized() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.PanelWidth < 0 {
		o.PanelWidth = 0
	}
	return o
}
