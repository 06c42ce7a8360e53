package wildfire

// State is the fire state of a single cell. Values are stable and double as
// the display byte handed to viewers through Cells.
type State uint8

const (
	// Clear holds no tree and never burns.
	Clear State = iota
	// Living is an unburned tree.
	Living
	// Ignited caught fire this cycle and does not radiate heat yet.
	Ignited
	// Burning radiates heat to its neighbors for exactly one cycle.
	Burning
	// Burned is consumed and terminal.
	Burned
)

// NumStates is the number of distinct cell states.
const NumStates = 5

var stateNames = [NumStates]string{"clear", "living", "ignited", "burning", "burned"}

var stateGlyphs = [NumStates]rune{' ', 'T', '#', '%', 'X'}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// Glyph returns the character a text viewer draws for s.
func (s State) Glyph() rune {
	if int(s) < len(stateGlyphs) {
		return stateGlyphs[s]
	}
	return '?'
}

// Ignite sets a Living cell on fire. Every other state is left alone, so
// several burning neighbors may ignite the same cell in one cycle.
func (s *State) Ignite() {
	if *s == Living {
		*s = Ignited
	}
}

// Decay applies the unconditional transitions of a new cycle:
// Ignited becomes Burning and Burning becomes Burned.
func (s *State) Decay() {
	switch *s {
	case Ignited:
		*s = Burning
	case Burning:
		*s = Burned
	}
}

// OnFire reports whether the cell is Ignited or Burning.
func (s State) OnFire() bool { return s == Ignited || s == Burning }
