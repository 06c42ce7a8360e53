//go:build !ebiten

package app

import "wildfire/internal/core"

// Run reports that the desktop viewer was not compiled in.
func Run(core.Sim, Options) error {
	return ErrNoGUI
}
