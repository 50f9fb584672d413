package agent

import "checkers/game"

// Bot picks a move each ply. PlayMove returns an index into info.Moves; anything outside
// [0, len(info.Moves)) is a protocol violation that aborts the game.
type Bot interface {
	PlayMove(info game.PlayMoveInfo) int
}

// Annotator is implemented by bots that evaluate the position they move into. The engine
// logs the value and hands it back as PlayMoveInfo.PosEval on the bot's next ply.
type Annotator interface {
	Eval() (float64, bool)
}

// Factory builds a fresh bot for one game. id is the spawn index of the tracker.
type Factory func(id int) Bot
