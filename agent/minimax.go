package agent

import (
	"math"

	"checkers/game"
)

const DefaultDepth = 4

// MinimaxBot searches a fixed number of plies with alpha-beta pruning and scores leaves
// with game.Evaluate.
type MinimaxBot struct {
	Depth   int
	eval    float64
	hasEval bool
}

func NewMinimaxBot(depth int) *MinimaxBot {
	if depth < 1 {
		depth = 1
	}
	return &MinimaxBot{Depth: depth}
}

func (b *MinimaxBot) PlayMove(info game.PlayMoveInfo) int {
	best := -1
	alpha, beta := math.Inf(-1), math.Inf(1)
	for i, m := range info.Moves {
		board := info.Board.Copy()
		board.MovePiece(m)
		score := -b.negamax(board, info.Colour.Opposite(), b.Depth-1, -beta, -alpha)
		if best < 0 || score > alpha {
			best, alpha = i, score
		}
	}
	b.eval, b.hasEval = alpha, best >= 0
	return best
}

func (b *MinimaxBot) Eval() (float64, bool) {
	return b.eval, b.hasEval
}

// negamax returns the score of board from mover's perspective.
func (b *MinimaxBot) negamax(board *game.Board, mover game.Colour, depth int, alpha, beta float64) float64 {
	moves := board.MoveList(mover)
	if len(moves) == 0 {
		return -1
	}
	if depth <= 0 {
		return game.Evaluate(board, mover)
	}

	best := math.Inf(-1)
	for _, m := range moves {
		child := board.Copy()
		child.MovePiece(m)
		score := -b.negamax(child, mover.Opposite(), depth-1, -beta, -alpha)
		best = math.Max(best, score)
		alpha = math.Max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return best
}
