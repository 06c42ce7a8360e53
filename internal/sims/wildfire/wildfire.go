package wildfire

import (
	"wildfire/internal/core"
)

// Sim runs the fire over a Forest. The first Step seeds the fire in the
// leftmost column; every later Step is one spread cycle.
type Sim struct {
	cfg    Config
	forest *Forest

	cycle   int
	ignited bool
	active  bool

	display []uint8
	scratch []core.Position
}

// New returns a simulation populated with cfg.Seed.
func New(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f, err := NewForest(cfg.Size())
	if err != nil {
		return nil, err
	}
	s := newSim(cfg, f)
	s.Reset(0)
	return s, nil
}

// FromForest wraps an existing forest, for instance a hand-built fixture.
// The forest is used as is; Reset repopulates it with cfg.Density.
func FromForest(f *Forest, maxCycles int) *Sim {
	cfg := Config{
		Width:     f.size.W,
		Height:    f.size.H,
		Density:   1,
		MaxCycles: maxCycles,
	}
	s := newSim(cfg, f)
	s.refresh()
	return s
}

func newSim(cfg Config, f *Forest) *Sim {
	return &Sim{
		cfg:     cfg,
		forest:  f,
		display: make([]uint8, f.Len()),
		scratch: make([]core.Position, 0, 4),
	}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return s.forest.size }

// Config returns the configuration the sim was built with.
func (s *Sim) Config() Config { return s.cfg }

// Forest exposes the live forest. Callers must not mutate it during a run.
func (s *Sim) Forest() *Forest { return s.forest }

// Cells exposes one State byte per cell in row-major order.
func (s *Sim) Cells() []uint8 { return s.display }

// Cycle returns the number of spread cycles run since ignition.
func (s *Sim) Cycle() int { return s.cycle }

// Ignited reports whether the fire has been seeded.
func (s *Sim) Ignited() bool { return s.ignited }

// Active reports whether any cell is Ignited or Burning.
func (s *Sim) Active() bool { return s.active }

// Reset replants the forest. A zero seed falls back to the configured one.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.forest.Populate(s.cfg.Density, core.NewRNG(effective))
	s.cycle = 0
	s.ignited = false
	s.refresh()
}

// Step seeds the fire on the first call and runs one spread cycle on each
// call after that. It does nothing once Done reports true.
func (s *Sim) Step() {
	if !s.ignited {
		s.StartFire()
		return
	}
	if s.Done() {
		return
	}
	s.Spread()
}

// Done reports that the run is over: at least one cycle ran since ignition
// and either nothing is on fire or the cycle bound was reached.
func (s *Sim) Done() bool {
	if !s.ignited || s.cycle == 0 {
		return false
	}
	return !s.active || s.cycle >= s.cfg.CycleLimit()
}

// Status names the phase of the run for viewers.
func (s *Sim) Status() string {
	switch {
	case !s.ignited:
		return "waiting for ignition"
	case !s.Done():
		return "burning"
	case !s.active:
		return "extinguished"
	default:
		return "cycle limit reached"
	}
}

// StartFire ignites every Living cell in column 0 and returns how many
// caught. Cells elsewhere are untouched.
func (s *Sim) StartFire() int {
	n := 0
	states := s.forest.states
	for i, p := range s.forest.positions {
		if p.Col != 0 || states[i] != Living {
			continue
		}
		states[i].Ignite()
		n++
	}
	s.ignited = true
	s.refresh()
	return n
}

// Spread runs one cycle. Every cell decays first; only then do Burning cells
// ignite their neighbors, so a cell that caught fire this cycle cannot pass
// it on before the next one.
func (s *Sim) Spread() {
	states := s.forest.states
	for i := range states {
		states[i].Decay()
	}

	size := s.forest.size
	for i := range states {
		if states[i] != Burning {
			continue
		}
		s.scratch = size.Neighbors(s.scratch[:0], s.forest.positions[i])
		for _, n := range s.scratch {
			states[size.ID(n)].Ignite()
		}
	}

	s.cycle++
	s.refresh()
}

// Counts tallies the current states.
func (s *Sim) Counts() Counts { return s.forest.Counts() }

// Result summarises the run so far.
func (s *Sim) Result() Result {
	c := s.Counts()
	return Result{
		Cycles:       s.cycle,
		Extinguished: c.OnFire() == 0,
		Counts:       c,
		BurnRate:     c.BurnRate(),
	}
}

func (s *Sim) refresh() {
	s.active = false
	for i, st := range s.forest.states {
		s.display[i] = uint8(st)
		if st.OnFire() {
			s.active = true
		}
	}
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		s, err := New(c)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
