package game

// Piece weights for Evaluate.
const (
	ManValue  = 1.0
	KingValue = 1.5
)

// Evaluate scores the position between -1 and 1 from colour's perspective, combining
// material with how far the pieces have advanced. A side with no moves left scores -1.
func Evaluate(b *Board, colour Colour) float64 {
	if !b.HasMoves(colour) {
		return -1
	}
	materialScore := normalize(b.material(colour), b.material(colour.Opposite()))
	advanceScore := normalize(b.advancement(colour), b.advancement(colour.Opposite()))

	return (3*materialScore + advanceScore) / 4
}

func (b *Board) material(colour Colour) float64 {
	men, kings := b.Count(colour)
	return float64(men)*ManValue + float64(kings)*KingValue
}

// advancement sums, over colour's pieces, how many rows each has travelled from its back
// rank. Kings count as fully advanced.
func (b *Board) advancement(colour Colour) float64 {
	total := 0.0
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			p, ok := b.PieceAt(Coord{Row: row, Col: col})
			if !ok || p.Colour != colour {
				continue
			}
			switch {
			case p.IsKing():
				total += float64(b.size - 1)
			case colour == White:
				total += float64(b.size - 1 - row)
			default:
				total += float64(row)
			}
		}
	}
	return total
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
