package wildfire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire/internal/core"
)

func TestNewForestPositionsMatchIDs(t *testing.T) {
	f, err := NewForest(core.Size{W: 7, H: 4})
	require.NoError(t, err)
	require.Equal(t, 28, f.Len())

	for id := 0; id < f.Len(); id++ {
		p := f.Position(id)
		assert.Equal(t, id, f.Size().ID(p))
		assert.Equal(t, Clear, f.State(id))
	}
	assert.Equal(t, core.Position{Col: 0, Row: 0}, f.Position(0))
	assert.Equal(t, core.Position{Col: 6, Row: 0}, f.Position(6))
	assert.Equal(t, core.Position{Col: 0, Row: 1}, f.Position(7))
}

func TestNewForestRejectsEmptyGrid(t *testing.T) {
	_, err := NewForest(core.Size{W: 0, H: 3})
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = NewForest(core.Size{W: 3, H: -1})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestNewForestRejectsOversizedGrid(t *testing.T) {
	_, err := NewForest(core.Size{W: math.MaxInt, H: math.MaxInt})
	assert.ErrorIs(t, err, ErrGridTooLarge)
	_, err = NewForest(core.Size{W: MaxCells, H: 2})
	assert.ErrorIs(t, err, ErrGridTooLarge)
}

func TestPopulateExtremes(t *testing.T) {
	f, err := NewForest(core.Size{W: 10, H: 10})
	require.NoError(t, err)

	f.Populate(1, core.NewRNG(1))
	assert.Equal(t, 100, f.Counts().Living)

	f.Populate(0, core.NewRNG(1))
	assert.Equal(t, 100, f.Counts().Clear)
}

func TestPopulateDeterministic(t *testing.T) {
	a, _ := NewForest(core.Size{W: 30, H: 20})
	b, _ := NewForest(core.Size{W: 30, H: 20})
	a.Populate(0.5, core.NewRNG(99))
	b.Populate(0.5, core.NewRNG(99))
	assert.Equal(t, a.States(), b.States())

	b.Populate(0.5, core.NewRNG(100))
	assert.NotEqual(t, a.States(), b.States(), "different seeds should plant different forests")

	c := a.Counts()
	assert.Equal(t, 600, c.Total())
	assert.InDelta(t, 300, c.Living, 60)
}
