package wildfire

import (
	"fmt"
	"image/color"
)

var palette = [NumStates]color.RGBA{
	Clear:   {R: 70, G: 52, B: 32, A: 255},
	Living:  {R: 40, G: 120, B: 55, A: 255},
	Ignited: {R: 255, G: 200, B: 60, A: 255},
	Burning: {R: 255, G: 90, B: 30, A: 255},
	Burned:  {R: 45, G: 45, B: 45, A: 255},
}

// Palette returns the colors used to draw each state, indexed by State.
func Palette() []color.RGBA {
	return palette[:]
}

// Color returns the display color of s.
func (s State) Color() color.RGBA {
	if int(s) < len(palette) {
		return palette[s]
	}
	return color.RGBA{A: 255}
}

// Hex returns the color of s as #rrggbb, for terminal styling.
func (s State) Hex() string {
	c := s.Color()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette exposes the state colors to viewers that look for a palette.
func (s *Sim) Palette() []color.RGBA {
	return Palette()
}
