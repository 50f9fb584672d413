package game

// Colour identifies a side of the board.
type Colour int

const (
	White Colour = iota
	Black
)

// Opposite returns the other side.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

func (c Colour) String() string {
	switch c {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	default:
		return "UNKNOWN"
	}
}

// Rank distinguishes a man from a king.
type Rank int

const (
	Man Rank = iota
	King
)

// Piece is a single checker. The zero value is a white man.
type Piece struct {
	Colour Colour
	Rank   Rank
}

func (p Piece) IsKing() bool {
	return p.Rank == King
}

// symbol renders the piece for Board.Display: lower case for men, upper case for kings.
func (p Piece) symbol() byte {
	s := byte('w')
	if p.Colour == Black {
		s = 'b'
	}
	if p.IsKing() {
		s -= 'a' - 'A'
	}
	return s
}
