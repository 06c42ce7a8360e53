package app

import "wildfire/internal/core"

type statusReporter interface {
	Status() string
}

// status is the panel's headline. Sims that describe their own phase are
// asked; pausing only shows while the run can still change.
func status(sim core.Sim, paused bool) string {
	done := sim.Done()
	if paused && !done {
		return "paused"
	}
	if r, ok := sim.(statusReporter); ok {
		return r.Status()
	}
	if done {
		return "done"
	}
	return "running"
}

func windowTitle(sim core.Sim) string {
	return "wildfire: " + sim.Name()
}
