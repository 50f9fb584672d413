package engine

import (
	"errors"
	"fmt"
	"strings"

	"checkers/game"
)

var (
	ErrIllegalSeed       = errors.New("illegal seed")
	ErrProtocolViolation = errors.New("protocol violation")
	ErrBotTimeout        = fmt.Errorf("%w: bot did not answer in time", ErrProtocolViolation)
	ErrGameOver          = errors.New("game is over - no moves allowed")
)

// ErrorKind tags what went wrong in a match.
type ErrorKind int

const (
	KindNotation ErrorKind = iota
	KindIllegalSeed
	KindProtocolViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotation:
		return "notation"
	case KindIllegalSeed:
		return "illegal seed"
	case KindProtocolViolation:
		return "protocol violation"
	default:
		return "unknown"
	}
}

// Policy says how the enclosing run reacts to a MatchError. Only AbortMatch is produced
// today; Forfeit is reserved for scoring the offender as the loser and continuing.
type Policy int

const (
	AbortMatch Policy = iota
	Forfeit
)

// MatchError describes a fatal problem with one game, with enough context to find the
// offending token or bot.
type MatchError struct {
	Kind   ErrorKind
	Policy Policy
	GameID int
	Colour game.Colour
	Ply    int
	Token  string
	Bot    string
	Err    error
}

func (e *MatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "game %d: %s", e.GameID, e.Kind)
	if e.Bot != "" {
		fmt.Fprintf(&sb, ", bot: %s", e.Bot)
	}
	if e.Ply > 0 {
		fmt.Fprintf(&sb, ", colour: %s, turn: %d", e.Colour, e.Ply)
	}
	if e.Token != "" {
		fmt.Fprintf(&sb, ", move: %s", e.Token)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

// Fatal reports whether the error must abort the enclosing run.
func (e *MatchError) Fatal() bool {
	return e.Policy == AbortMatch
}
