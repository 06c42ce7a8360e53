//go:build ebiten

package ui

import (
	"image/color"

	"wildfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Panel renders the sim's parameter snapshot to the right of the grid.
type Panel struct {
	sim      core.Sim
	width    int
	img      *ebiten.Image
	snapshot core.ParameterSnapshot
	status   string
}

// NewPanel constructs a panel of the given width. It returns nil when the sim
// exposes no parameters or the width is not positive.
func NewPanel(sim core.Sim, width int) *Panel {
	if width <= 0 {
		return nil
	}
	if _, ok := sim.(core.ParameterProvider); !ok {
		return nil
	}
	return &Panel{sim: sim, width: width}
}

// Width returns the panel width in pixels. A nil panel is zero wide.
func (p *Panel) Width() int {
	if p == nil {
		return 0
	}
	return p.width
}

// Update refreshes the cached snapshot and the status line.
func (p *Panel) Update(status string) {
	if p == nil {
		return
	}
	p.snapshot = p.sim.(core.ParameterProvider).Parameters()
	p.status = status
}

// Draw paints the panel at offsetX.
func (p *Panel) Draw(screen *ebiten.Image, offsetX, height int) {
	if p == nil || height <= 0 {
		return
	}
	if p.img == nil || p.img.Bounds().Dy() != height {
		p.img = ebiten.NewImage(p.width, height)
	}
	p.img.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	title := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	label := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	value := color.RGBA{R: 230, G: 230, B: 240, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(p.img, p.status, face, panelPadding, y, title)
	y += lineHeight
	for _, g := range p.snapshot.Groups {
		text.Draw(p.img, g.Name, face, panelPadding, y, title)
		y += lineHeight
		for _, param := range g.Params {
			text.Draw(p.img, param.Label, face, panelPadding, y, label)
			w := text.BoundString(face, param.Value).Dx()
			text.Draw(p.img, param.Value, face, p.width-panelPadding-w, y, value)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.img, op)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
)
