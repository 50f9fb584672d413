package game

import "fmt"

// Coord is a (row, column) position on the grid. Row 0 is the top of the board.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Move is an immutable checkers move. A non-empty removed list marks a capture, one entry
// per jump in jump order.
type Move struct {
	start   Coord
	end     Coord
	removed []Coord
}

// NewMove copies removed so later changes by the caller do not leak into the move.
func NewMove(start, end Coord, removed ...Coord) Move {
	m := Move{start: start, end: end}
	if len(removed) > 0 {
		m.removed = append([]Coord(nil), removed...)
	}
	return m
}

func (m Move) Start() Coord {
	return m.start
}

func (m Move) End() Coord {
	return m.end
}

// Removed returns a copy of the captured coordinates.
func (m Move) Removed() []Coord {
	return append([]Coord(nil), m.removed...)
}

func (m Move) IsCapture() bool {
	return len(m.removed) > 0
}

// IsChain reports whether the move jumps more than once.
func (m Move) IsChain() bool {
	return len(m.removed) > 1
}

// Equal compares start, end and the removed sequence.
func (m Move) Equal(other Move) bool {
	if m.start != other.start || m.end != other.end || len(m.removed) != len(other.removed) {
		return false
	}
	for i := range m.removed {
		if m.removed[i] != other.removed[i] {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	if m.IsCapture() {
		return fmt.Sprintf("%s x %s %v", m.start, m.end, m.removed)
	}
	return fmt.Sprintf("%s -> %s", m.start, m.end)
}
