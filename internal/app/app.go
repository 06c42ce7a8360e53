//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"wildfire/internal/core"
	"wildfire/internal/render"
	"wildfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	panel   *ui.Panel
	step    *core.FixedStep

	opts     Options
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	opts = opts.normalized()
	var palette []color.RGBA
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, palette),
		panel:   ui.NewPanel(sim, opts.PanelWidth),
		step:    core.NewFixedStep(opts.CycleDelay),
		opts:    opts,
		seed:    opts.Seed,
	}
	g.step.Delay(opts.IgnitionDelay - opts.CycleDelay)
	return g
}

// Reset replants the forest with the provided seed and waits for ignition again.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.step = core.NewFixedStep(g.opts.CycleDelay)
	g.step.Delay(g.opts.IgnitionDelay - g.opts.CycleDelay)
}

// Update handles input and advances the fire at the cycle rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	due := g.step.ShouldStep()
	if !g.sim.Done() && ((!g.paused && due) || g.tickOnce) {
		g.sim.Step()
	}
	g.tickOnce = false
	g.panel.Update(status(g.sim, g.paused))
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.opts.Scale)
	s := g.sim.Size()
	g.panel.Draw(screen, s.W*g.opts.Scale, s.H*g.opts.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.opts.Scale + g.panel.Width(), s.H * g.opts.Scale
}

// Run opens a window and blocks until it is closed.
func Run(sim core.Sim, opts Options) error {
	game := New(sim, opts)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(windowTitle(sim))
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run desktop viewer: %w", err)
	}
	return nil
}
