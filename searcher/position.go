package searcher

import "checkers/game"

// position is the search's private view of a game: a board it may mutate, the side to
// move and the plies since the last capture or promotion.
type position struct {
	board       *game.Board
	turn        game.Colour
	sinceAction int
}

func newPosition(board *game.Board, turn game.Colour, sinceAction int) *position {
	return &position{board: board.Copy(), turn: turn, sinceAction: sinceAction}
}

func (p *position) copy() *position {
	return &position{board: p.board.Copy(), turn: p.turn, sinceAction: p.sinceAction}
}

func (p *position) legalMoves() []game.Move {
	if p.isDrawn() {
		return nil
	}
	return p.board.MoveList(p.turn)
}

func (p *position) isDrawn() bool {
	return p.sinceAction >= game.InactivityLimit
}

func (p *position) play(m game.Move) {
	captures, promoted := p.board.MovePiece(m)
	if captures > 0 || promoted {
		p.sinceAction = 0
	} else {
		p.sinceAction++
	}
	p.turn = p.turn.Opposite()
}

// outcome is the reward of a finished or evaluated playout for one colour. The other
// colour's reward is 1 - reward.
type outcome struct {
	colour game.Colour
	reward float64
}

// rewardFor returns the outcome from colour's perspective.
func (o outcome) rewardFor(colour game.Colour) float64 {
	if colour == o.colour {
		return o.reward
	}
	return Win - o.reward
}
