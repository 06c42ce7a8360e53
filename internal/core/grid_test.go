package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborsOnEdges(t *testing.T) {
	s := Size{W: 90, H: 30}

	_, ok := s.Up(Position{Col: 5, Row: 0})
	assert.False(t, ok)
	_, ok = s.Down(Position{Col: 5, Row: s.H - 1})
	assert.False(t, ok)
	_, ok = s.Left(Position{Col: 0, Row: 5})
	assert.False(t, ok)
	_, ok = s.Right(Position{Col: s.W - 1, Row: 5})
	assert.False(t, ok)

	up, ok := s.Up(Position{Col: 1, Row: 1})
	require.True(t, ok)
	assert.Equal(t, Position{Col: 1, Row: 0}, up)
	down, ok := s.Down(Position{Col: 1, Row: 1})
	require.True(t, ok)
	assert.Equal(t, Position{Col: 1, Row: 2}, down)
	right, ok := s.Right(Position{Col: 1, Row: 1})
	require.True(t, ok)
	assert.Equal(t, Position{Col: 2, Row: 1}, right)
	left, ok := s.Left(Position{Col: 1, Row: 1})
	require.True(t, ok)
	assert.Equal(t, Position{Col: 0, Row: 1}, left)
}

func TestNeighborsEverywhere(t *testing.T) {
	s := Size{W: 6, H: 4}
	for row := 0; row < s.H; row++ {
		for col := 0; col < s.W; col++ {
			p := Position{Col: col, Row: row}
			id := s.ID(p)

			n, ok := s.Up(p)
			assert.Equal(t, row > 0, ok)
			if ok {
				assert.Equal(t, id-s.W, s.ID(n))
			}
			n, ok = s.Down(p)
			assert.Equal(t, row < s.H-1, ok)
			if ok {
				assert.Equal(t, id+s.W, s.ID(n))
			}
			n, ok = s.Left(p)
			assert.Equal(t, col > 0, ok)
			if ok {
				assert.Equal(t, id-1, s.ID(n))
			}
			n, ok = s.Right(p)
			assert.Equal(t, col < s.W-1, ok)
			if ok {
				assert.Equal(t, id+1, s.ID(n))
			}

			interior := row > 0 && row < s.H-1 && col > 0 && col < s.W-1
			if interior {
				assert.Len(t, s.Neighbors(nil, p), 4)
			}
		}
	}
}

func TestNeighborsCorner(t *testing.T) {
	s := Size{W: 3, H: 3}
	got := s.Neighbors(nil, Position{})
	assert.Equal(t, []Position{{Col: 0, Row: 1}, {Col: 1, Row: 0}}, got)

	single := Size{W: 1, H: 1}
	assert.Empty(t, single.Neighbors(nil, Position{}))
}

func TestIDBijection(t *testing.T) {
	s := Size{W: 9, H: 5}
	seen := make(map[int]bool, s.Cells())
	for row := 0; row < s.H; row++ {
		for col := 0; col < s.W; col++ {
			p := Position{Col: col, Row: row}
			id := s.ID(p)
			require.True(t, id >= 0 && id < s.Cells())
			require.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
			assert.Equal(t, p, s.PositionOf(id))
			assert.True(t, s.Contains(p))
		}
	}
	assert.Equal(t, 2+3*9, s.ID(Position{Col: 2, Row: 3}))
	assert.False(t, s.Contains(Position{Col: 9, Row: 0}))
	assert.False(t, s.Contains(Position{Col: 0, Row: -1}))
}
