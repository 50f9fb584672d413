package agent

import (
	"time"

	"checkers/game"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

const (
	DefaultGoroutines = 4
	DefaultEpisodes   = 800
	DefaultCutoff     = 40
)

// MCTSBot plays the most visited move of a Monte Carlo tree search. Its evaluation is the
// win rate of that move mapped to [-1, 1].
type MCTSBot struct {
	mcts    *searcher.MCTS
	eval    float64
	hasEval bool
}

func NewMCTSBot(mcts *searcher.MCTS) *MCTSBot {
	if mcts == nil {
		panic("MCTS bot needs a searcher")
	}
	return &MCTSBot{mcts: mcts}
}

// NewDefaultMCTSBot builds a searcher with the default budget, seeded by spawn id.
func NewDefaultMCTSBot(id int) *MCTSBot {
	return NewMCTSBot(searcher.NewMCTS(DefaultGoroutines,
		searcher.WithEpisodes(DefaultEpisodes),
		searcher.WithCutoff(DefaultCutoff),
		searcher.WithSeed(uint64(time.Now().UnixNano())+uint64(id)),
		searcher.WithMetrics(),
	))
}

func (b *MCTSBot) PlayMove(info game.PlayMoveInfo) int {
	if len(info.Moves) == 1 {
		b.hasEval = false
		return 0
	}

	policy, metric := b.mcts.Simulate(info.Board, info.Colour, info.MoveNumber()-info.LastActionMove)
	log.Debug().Msgf("searched %d episodes (%d full playouts) with %d goroutines in %s",
		metric.Episodes, metric.FullPlayouts, metric.Goroutines, metric.Duration)

	best := 0
	for i, p := range policy {
		if p > policy[best] {
			best = i
		}
	}

	rate, ok := b.mcts.WinRate()
	b.eval, b.hasEval = 2*rate-1, ok
	return best
}

func (b *MCTSBot) Eval() (float64, bool) {
	return b.eval, b.hasEval
}
