package core

import (
	"errors"
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract shared by the viewers and the headless drivers.
// Cells returns one byte per cell in row-major order. Done reports that
// further calls to Step can no longer change the grid.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Done() bool
}

// Factory constructs a Sim from flag-style key/value pairs.
type Factory func(cfg map[string]string) (Sim, error)

// ErrUnknownSim is returned by Lookup for names nobody registered.
var ErrUnknownSim = errors.New("unknown sim")

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSim, name)
	}
	return f, nil
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
