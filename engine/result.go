package engine

import (
	"math"
	"time"

	"checkers/game"
)

// State is the lifecycle of a Game.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateWhiteWin
	StateBlackWin
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateInProgress:
		return "in progress"
	case StateWhiteWin:
		return "white win"
	case StateBlackWin:
		return "black win"
	case StateDraw:
		return "draw"
	default:
		return "unknown"
	}
}

func (s State) Terminal() bool {
	return s == StateWhiteWin || s == StateBlackWin || s == StateDraw
}

// Result is the outcome of a finished game. ResultNone means the game goes on.
type Result int

const (
	ResultNone Result = iota
	ResultWhite
	ResultBlack
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultWhite:
		return "WHITE"
	case ResultBlack:
		return "BLACK"
	case ResultDraw:
		return "DRAW"
	default:
		return "NONE"
	}
}

// WinFor is the result of colour winning.
func WinFor(colour game.Colour) Result {
	if colour == game.White {
		return ResultWhite
	}
	return ResultBlack
}

func (r Result) state() State {
	switch r {
	case ResultWhite:
		return StateWhiteWin
	case ResultBlack:
		return StateBlackWin
	case ResultDraw:
		return StateDraw
	default:
		return StateInProgress
	}
}

// Side is one player's part of a GameResult.
type Side struct {
	Name      string
	Colour    game.Colour
	Rating    int
	KingsMade int
	Captures  int
}

// GameMetric records timing for one game.
type GameMetric struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	// ThinkTime is the total time spent inside each bot, indexed by colour.
	ThinkTime [2]time.Duration
}

// GameResult is the terminal summary of a game.
type GameResult struct {
	GameID   int
	Round    int
	Result   Result
	White    Side
	Black    Side
	NumMoves int
	Moves    string // move log, empty unless verbose
	Notation string // empty when the game contains a chain capture
	GameMetric
}

// WinnerLoser orders the sides by outcome. A draw lists white first.
func (r GameResult) WinnerLoser() (winner, loser Side) {
	if r.Result == ResultBlack {
		return r.Black, r.White
	}
	return r.White, r.Black
}

// Score is white's score for rating purposes: 1 win, 0.5 draw, 0 loss.
func (r GameResult) Score() float64 {
	switch r.Result {
	case ResultWhite:
		return 1
	case ResultDraw:
		return 0.5
	default:
		return 0
	}
}

func roundRating(r float64) int {
	return int(math.Round(r))
}
