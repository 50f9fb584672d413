package game

// Diagonal step directions, in the fixed order move generation uses.
var directions = []Coord{
	{Row: -1, Col: -1}, // up-left
	{Row: -1, Col: 1},  // up-right
	{Row: 1, Col: -1},  // down-left
	{Row: 1, Col: 1},   // down-right
}

// directionsFor returns the steps p may take: forward only for men, all four for kings.
func directionsFor(p Piece) []Coord {
	switch {
	case p.IsKing():
		return directions
	case p.Colour == White:
		return directions[:2]
	default:
		return directions[2:]
	}
}

// MoveList returns every legal move for colour. Captures are mandatory, so when any piece
// can jump only capture moves are returned. The order is stable: pieces are scanned
// row-major from the top-left, and each piece tries directions in a fixed order.
func (b *Board) MoveList(colour Colour) []Move {
	var captures, steps []Move
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			from := Coord{Row: row, Col: col}
			p, ok := b.PieceAt(from)
			if !ok || p.Colour != colour {
				continue
			}
			captures = append(captures, b.jumps(from, from, p, nil)...)
			if len(captures) == 0 {
				steps = append(steps, b.steps(from, p)...)
			}
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return steps
}

// IsValidMove reports whether m is one of the legal moves for colour.
func (b *Board) IsValidMove(colour Colour, m Move) bool {
	for _, legal := range b.MoveList(colour) {
		if legal.Equal(m) {
			return true
		}
	}
	return false
}

// HasMoves reports whether colour has at least one legal move.
func (b *Board) HasMoves(colour Colour) bool {
	return len(b.MoveList(colour)) > 0
}

func (b *Board) steps(from Coord, p Piece) []Move {
	var moves []Move
	for _, d := range directionsFor(p) {
		to := Coord{Row: from.Row + d.Row, Col: from.Col + d.Col}
		if !b.OnBoard(to) {
			continue
		}
		if _, occupied := b.PieceAt(to); occupied {
			continue
		}
		moves = append(moves, NewMove(from, to))
	}
	return moves
}

// jumps expands every capture chain of p that starts at start and currently stands at at.
// taken holds the enemies already jumped in this chain; they stay on the board until the
// move is applied and cannot be jumped twice. A chain ends when no further jump exists or
// when a man lands on its promotion row.
func (b *Board) jumps(start, at Coord, p Piece, taken []Coord) []Move {
	var moves []Move
	for _, d := range directionsFor(p) {
		over := Coord{Row: at.Row + d.Row, Col: at.Col + d.Col}
		land := Coord{Row: at.Row + 2*d.Row, Col: at.Col + 2*d.Col}
		if !b.OnBoard(land) {
			continue
		}
		victim, ok := b.PieceAt(over)
		if !ok || victim.Colour == p.Colour || containsCoord(taken, over) {
			continue
		}
		// The moving piece has left its start square, so a chain may pass through it.
		if _, occupied := b.PieceAt(land); occupied && land != start {
			continue
		}

		chain := append(taken[:len(taken):len(taken)], over)
		if !p.IsKing() && land.Row == b.PromotionRow(p.Colour) {
			moves = append(moves, NewMove(start, land, chain...))
			continue
		}
		if next := b.jumps(start, land, p, chain); len(next) > 0 {
			moves = append(moves, next...)
		} else {
			moves = append(moves, NewMove(start, land, chain...))
		}
	}
	return moves
}

func containsCoord(coords []Coord, c Coord) bool {
	for _, x := range coords {
		if x == c {
			return true
		}
	}
	return false
}
