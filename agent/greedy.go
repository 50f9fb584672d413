package agent

import "checkers/game"

// GreedyBot plays the move whose resulting position evaluates best for it, looking one ply
// ahead. Ties go to the earliest move.
type GreedyBot struct {
	eval    float64
	hasEval bool
}

func NewGreedyBot() *GreedyBot {
	return &GreedyBot{}
}

func (b *GreedyBot) PlayMove(info game.PlayMoveInfo) int {
	best := -1
	bestScore := 0.0
	for i, m := range info.Moves {
		board := info.Board.Copy()
		board.MovePiece(m)
		score := game.Evaluate(board, info.Colour)
		if best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}
	b.eval, b.hasEval = bestScore, best >= 0
	return best
}

func (b *GreedyBot) Eval() (float64, bool) {
	return b.eval, b.hasEval
}
