package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire/internal/sims/wildfire"
)

func newModel(t *testing.T) Model {
	t.Helper()
	sim, err := wildfire.New(wildfire.Config{Width: 3, Height: 3, Density: 1, Seed: 1})
	require.NoError(t, err)
	return New(sim, Options{})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestTicksDriveTheRun(t *testing.T) {
	m := newModel(t)
	require.NotNil(t, m.Init())

	m, cmd := send(t, m, tickMsg{})
	assert.True(t, m.sim.Ignited())
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "|###|")

	for i := 0; i < 4; i++ {
		m, cmd = send(t, m, tickMsg{})
	}
	assert.Nil(t, cmd, "no further ticks once the fire is out")
	res, done := m.Result()
	require.True(t, done)
	assert.Equal(t, 4, res.Cycles)
	assert.Equal(t, 1.0, res.BurnRate)
	assert.Contains(t, m.View(), "% forest burned: 1")
	assert.Contains(t, m.View(), "extinguished")

	m, _ = send(t, m, tickMsg{})
	assert.Equal(t, 4, m.sim.Cycle())
}

func TestPauseHoldsTheFire(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, tickMsg{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.paused)
	assert.Contains(t, m.View(), "paused")

	m, cmd := send(t, m, tickMsg{})
	assert.Equal(t, 0, m.sim.Cycle())
	assert.NotNil(t, cmd, "paused model keeps ticking")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = send(t, m, tickMsg{})
	assert.Equal(t, 1, m.sim.Cycle())
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
	_, done := m.Result()
	assert.False(t, done)
}

func TestWindowResizeClampsProgress(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, 60, m.progress.Width)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 5, Height: 50})
	assert.Equal(t, 10, m.progress.Width)
}
