package core

// Position addresses a single cell by column and row. Row 0 is the top edge.
type Position struct {
	Col int
	Row int
}

// Contains reports whether p lies on the grid.
func (s Size) Contains(p Position) bool {
	return p.Col >= 0 && p.Col < s.W && p.Row >= 0 && p.Row < s.H
}

// Cells returns the number of cells on the grid.
func (s Size) Cells() int { return s.W * s.H }

// ID returns the row-major linear index of p, starting at 0 in the upper left.
func (s Size) ID(p Position) int { return p.Col + p.Row*s.W }

// PositionOf inverts ID.
func (s Size) PositionOf(id int) Position {
	return Position{Col: id % s.W, Row: id / s.W}
}

// Up returns the neighbor above p, or false on the top edge.
func (s Size) Up(p Position) (Position, bool) {
	if p.Row == 0 {
		return Position{}, false
	}
	return Position{Col: p.Col, Row: p.Row - 1}, true
}

// Down returns the neighbor below p, or false on the bottom edge.
func (s Size) Down(p Position) (Position, bool) {
	if p.Row == s.H-1 {
		return Position{}, false
	}
	return Position{Col: p.Col, Row: p.Row + 1}, true
}

// Right returns the neighbor to the right of p, or false on the right edge.
func (s Size) Right(p Position) (Position, bool) {
	if p.Col == s.W-1 {
		return Position{}, false
	}
	return Position{Col: p.Col + 1, Row: p.Row}, true
}

// Left returns the neighbor to the left of p, or false on the left edge.
func (s Size) Left(p Position) (Position, bool) {
	if p.Col == 0 {
		return Position{}, false
	}
	return Position{Col: p.Col - 1, Row: p.Row}, true
}

// Neighbors appends the von Neumann neighbors of p to dst in up, down, right,
// left order and returns the extended slice. Edges do not wrap.
func (s Size) Neighbors(dst []Position, p Position) []Position {
	if n, ok := s.Up(p); ok {
		dst = append(dst, n)
	}
	if n, ok := s.Down(p); ok {
		dst = append(dst, n)
	}
	if n, ok := s.Right(p); ok {
		dst = append(dst, n)
	}
	if n, ok := s.Left(p); ok {
		dst = append(dst, n)
	}
	return dst
}
