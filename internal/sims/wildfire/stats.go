package wildfire

import (
	"math"
	"strconv"
)

// Counts is the number of cells in each state.
type Counts struct {
	Clear   int
	Living  int
	Ignited int
	Burning int
	Burned  int
}

func (c *Counts) add(s State) {
	switch s {
	case Clear:
		c.Clear++
	case Living:
		c.Living++
	case Ignited:
		c.Ignited++
	case Burning:
		c.Burning++
	case Burned:
		c.Burned++
	}
}

// Total returns the number of cells counted.
func (c Counts) Total() int {
	return c.Clear + c.Living + c.Ignited + c.Burning + c.Burned
}

// OnFire returns the number of Ignited and Burning cells.
func (c Counts) OnFire() int { return c.Ignited + c.Burning }

// BurnRate is burned / (burned + living). Clear and still-burning cells are
// left out. A forest that never held a tree yields NaN.
func (c Counts) BurnRate() float64 {
	den := c.Burned + c.Living
	if den == 0 {
		return math.NaN()
	}
	return float64(c.Burned) / float64(den)
}

// FormatRate renders a burn rate for reports, printing n/a for NaN.
func FormatRate(rate float64) string {
	if math.IsNaN(rate) {
		return "n/a"
	}
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
