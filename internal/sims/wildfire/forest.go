package wildfire

import (
	"errors"
	"fmt"

	"wildfire/internal/core"
)

var (
	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrGridTooLarge is returned when a grid has more than MaxCells cells.
	ErrGridTooLarge = errors.New("grid is too large")
)

// MaxCells bounds W*H. It keeps the forest in memory and W*H+2 far from
// overflowing.
const MaxCells = 1 << 24

// checkSize rejects non-positive dimensions and grids over MaxCells. The
// product is never formed before the bound is known to hold.
func checkSize(size core.Size) error {
	if size.W <= 0 || size.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.W, size.H)
	}
	if size.W > MaxCells/size.H {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridTooLarge, size.W, size.H, MaxCells)
	}
	return nil
}

// Forest pairs every grid position with its fire state. Both slices are
// indexed by entity id and never change length.
type Forest struct {
	size      core.Size
	positions []core.Position
	states    []State
}

// NewForest allocates an all-Clear forest of the given size.
func NewForest(size core.Size) (*Forest, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	total := size.Cells()
	f := &Forest{
		size:      size,
		positions: make([]core.Position, total),
		states:    make([]State, total),
	}
	p := 0
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			f.positions[p] = core.Position{Col: col, Row: row}
			p++
		}
	}
	return f, nil
}

// Populate resets every cell and plants a tree in each one with probability
// density. Densities outside [0, 1] are clamped by the RNG.
func (f *Forest) Populate(density float64, rng *core.RNG) {
	for i := range f.states {
		f.states[i] = Clear
		if rng.Bernoulli(density) {
			f.states[i] = Living
		}
	}
}

// Size returns the grid dimensions.
func (f *Forest) Size() core.Size { return f.size }

// Len returns the number of cells.
func (f *Forest) Len() int { return len(f.states) }

// Position returns the coordinates of cell id.
func (f *Forest) Position(id int) core.Position { return f.positions[id] }

// State returns the state of cell id.
func (f *Forest) State(id int) State { return f.states[id] }

// At returns the state at p.
func (f *Forest) At(p core.Position) State { return f.states[f.size.ID(p)] }

// Set overwrites the state at p. It exists for building fixtures; the engine
// only moves states forward.
func (f *Forest) Set(p core.Position, s State) { f.states[f.size.ID(p)] = s }

// States exposes the backing state slice.
func (f *Forest) States() []State { return f.states }

// Counts tallies the cells in each state.
func (f *Forest) Counts() Counts {
	var c Counts
	for _, s := range f.states {
		c.add(s)
	}
	return c
}
