package game

// PlayMoveInfo is the snapshot a bot receives each ply. Every field is a copy owned by the
// receiver: changing it never affects the game it was taken from.
type PlayMoveInfo struct {
	Board          *Board
	Colour         Colour
	Moves          []Move
	History        []Move
	LastActionMove int
	// PosEval is the evaluation the same bot reported on its previous ply, if any.
	PosEval *float64
}

// NewPlayMoveInfo copies board, moves and history into a fresh snapshot.
func NewPlayMoveInfo(board *Board, colour Colour, moves, history []Move, lastActionMove int, posEval *float64) PlayMoveInfo {
	info := PlayMoveInfo{
		Board:          board.Copy(),
		Colour:         colour,
		Moves:          append([]Move(nil), moves...),
		History:        append([]Move(nil), history...),
		LastActionMove: lastActionMove,
	}
	if posEval != nil {
		v := *posEval
		info.PosEval = &v
	}
	return info
}

// MoveNumber is the number of plies played before this snapshot.
func (i PlayMoveInfo) MoveNumber() int {
	return len(i.History)
}
