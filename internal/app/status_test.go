package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire/internal/core"
	"wildfire/internal/sims/wildfire"
)

func TestStatusFollowsTheFire(t *testing.T) {
	sim, err := wildfire.New(wildfire.Config{Width: 3, Height: 3, Density: 1, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, "waiting for ignition", status(sim, false))
	assert.Equal(t, "paused", status(sim, true))

	sim.Step()
	assert.Equal(t, "burning", status(sim, false))

	for !sim.Done() {
		sim.Step()
	}
	assert.Equal(t, "extinguished", status(sim, false))
	assert.Equal(t, "extinguished", status(sim, true))
}

func TestStatusAtCycleLimit(t *testing.T) {
	sim, err := wildfire.New(wildfire.Config{Width: 6, Height: 2, Density: 1, Seed: 1, MaxCycles: 2})
	require.NoError(t, err)
	for !sim.Done() {
		sim.Step()
	}
	assert.Equal(t, "cycle limit reached", status(sim, false))
}

type plainSim struct{ done bool }

func (plainSim) Name() string { return "plain" }
func (plainSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (plainSim) Reset(int64) {}
func (plainSim) Step() {}
func (plainSim) Cells() []uint8 { return []uint8{0} }
func (p plainSim) Done() bool { return p.done }

func TestStatusWithoutReporter(t *testing.T) {
	assert.Equal(t, "running", status(plainSim{}, false))
	assert.Equal(t, "paused", status(plainSim{}, true))
	assert.Equal(t, "done", status(plainSim{done: true}, true))
}

func TestWindowTitle(t *testing.T) {
	assert.Equal(t, "wildfire: plain", windowTitle(plainSim{}))
}
