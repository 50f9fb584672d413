package agent

import (
	"time"

	"checkers/game"

	"golang.org/x/exp/rand"
)

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	rng *rand.Rand
}

// NewRandomBot seeds from the clock, mixed with id so bots spawned in the same instant differ.
func NewRandomBot(id int) *RandomBot {
	return NewSeededRandomBot(uint64(time.Now().UnixNano()) ^ uint64(id+1)<<32)
}

func NewSeededRandomBot(seed uint64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) PlayMove(info game.PlayMoveInfo) int {
	if len(info.Moves) == 0 {
		return -1
	}
	return b.rng.Intn(len(info.Moves))
}

// FirstMover always plays the first offered move.
type FirstMover struct{}

func (FirstMover) PlayMove(game.PlayMoveInfo) int {
	return 0
}
