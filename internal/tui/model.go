// Package tui is the full-screen terminal viewer.
//
// The model owns the simulation for the lifetime of the program and steps it
// from its own tick messages, so all state changes happen inside Update.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wildfire/internal/render"
	"wildfire/internal/sims/wildfire"
)

// Options configures the viewer pacing.
type Options struct {
	CycleDelay    time.Duration
	IgnitionDelay time.Duration
}

type tickMsg struct{}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(wildfire.Burning.Hex()))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))
	reportStyle = lipgloss.NewStyle().Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c5c5c"))
)

// Model is the bubbletea model for a single run.
type Model struct {
	sim  *wildfire.Sim
	opts Options

	cells    [wildfire.NumStates]string
	border   string
	progress progress.Model

	paused   bool
	quitting bool
	done     bool
	result   wildfire.Result
}

// New returns a model for a freshly planted sim.
func New(sim *wildfire.Sim, opts Options) Model {
	m := Model{
		sim:      sim,
		opts:     opts,
		border:   borderStyle.Render(string(render.Border)),
		progress: progress.New(progress.WithGradient("#ffc83c", "#ff5a1e"), progress.WithWidth(40)),
	}
	for s := wildfire.Clear; s <= wildfire.Burned; s++ {
		m.cells[s] = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Hex())).Render(string(s.Glyph()))
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick(m.opts.IgnitionDelay)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "p":
			if !m.done {
				m.paused = !m.paused
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 60 {
			w = 60
		}
		if w < 10 {
			w = 10
		}
		m.progress.Width = w
		return m, nil

	case tickMsg:
		if m.done {
			return m, nil
		}
		if m.paused {
			return m, tick(m.opts.CycleDelay)
		}
		if !m.sim.Ignited() {
			m.sim.StartFire()
			return m, tick(m.opts.CycleDelay)
		}
		m.sim.Spread()
		if m.sim.Done() {
			m.done = true
			m.result = m.sim.Result()
			return m, nil
		}
		return m, tick(m.opts.CycleDelay)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("wildfire"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %dx%d  density %v", m.sim.Size().W, m.sim.Size().H, m.sim.Config().Density)))
	b.WriteString("\n\n")

	w := m.sim.Size().W
	for i, s := range m.sim.Forest().States() {
		if i%w == 0 {
			b.WriteString(m.border)
		}
		b.WriteString(m.cells[s])
		if i%w == w-1 {
			b.WriteString(m.border)
			b.WriteByte('\n')
		}
	}

	c := m.sim.Counts()
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("cycle %d  living %d  on fire %d  burned %d  %s\n",
		m.sim.Cycle(), c.Living, c.OnFire(), c.Burned, m.state()))
	flammable := c.Living + c.OnFire() + c.Burned
	frac := 0.0
	if flammable > 0 {
		frac = float64(c.Burned) / float64(flammable)
	}
	b.WriteString(m.progress.ViewAs(frac))
	b.WriteByte('\n')

	if m.done {
		b.WriteString(reportStyle.Render("% forest burned: " + wildfire.FormatRate(m.result.BurnRate)))
		b.WriteByte('\n')
	}
	b.WriteString(mutedStyle.Render("space pause · q quit"))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) state() string {
	if m.paused && !m.done {
		return "paused"
	}
	return m.sim.Status()
}

// Result returns the outcome once the fire is out.
func (m Model) Result() (wildfire.Result, bool) {
	return m.result, m.done
}

// Run shows the viewer until the user quits and returns the final result.
// The second value is false if the user quit before the fire went out.
func Run(ctx context.Context, sim *wildfire.Sim, opts Options) (wildfire.Result, bool, error) {
	p := tea.NewProgram(New(sim, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return sim.Result(), false, ctxErr
	}
	if err != nil {
		return sim.Result(), false, fmt.Errorf("run terminal viewer: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return sim.Result(), false, fmt.Errorf("unexpected model type from bubbletea: %T", final)
	}
	res, done := m.Result()
	if !done {
		res = sim.Result()
	}
	return res, done, nil
}
