package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"checkers/game"
)

// ImportText replays whitespace separated notation tokens on a fresh game. The first token
// decides who moves first; every later token must be legal for the side to move, and the
// resulting position must leave that side a move.
func (g *Game) ImportText(text string) error {
	if len(g.history) > 0 || g.state != StateNotStarted {
		return errors.New("notation can only be imported into a game that has not started")
	}
	size := g.board.Size()

	for idx, token := range strings.Fields(text) {
		m, err := game.ParseToken(size, token)
		if err != nil {
			return &MatchError{Kind: KindNotation, GameID: g.id, Colour: g.currentTurn, Ply: idx + 1, Token: token, Err: err}
		}

		if idx == 0 {
			switch {
			case g.board.IsValidMove(game.White, m):
				g.currentTurn = game.White
			case g.board.IsValidMove(game.Black, m):
				g.currentTurn = game.Black
			default:
				return &MatchError{
					Kind:   KindIllegalSeed,
					GameID: g.id,
					Token:  token,
					Err:    fmt.Errorf("%w: first move is invalid for both white and black", ErrIllegalSeed),
				}
			}
		} else if !g.board.IsValidMove(g.currentTurn, m) {
			return &MatchError{
				Kind:   KindIllegalSeed,
				GameID: g.id,
				Colour: g.currentTurn,
				Ply:    g.MoveNumber() + 1,
				Token:  token,
				Err:    fmt.Errorf("%w: invalid move", ErrIllegalSeed),
			}
		}

		g.applyMove(m, true, nil)
		g.currentTurn = g.currentTurn.Opposite()
	}

	if !g.board.HasMoves(g.currentTurn) {
		return &MatchError{
			Kind:   KindIllegalSeed,
			GameID: g.id,
			Err:    fmt.Errorf("%w: game is already complete, nothing for the bots to do", ErrIllegalSeed),
		}
	}
	return nil
}

// ImportFile reads notation from path and imports it.
func (g *Game) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read notation file: %w", err)
	}
	return g.ImportText(string(data))
}

// ExportText renders the history as notation tokens. A chain capture is written as a
// single x token and loses its intermediate squares.
func (g *Game) ExportText() string {
	text, err := game.FormatNotation(g.board.Size(), g.history)
	if err != nil {
		// History only holds moves generated by or validated against this board.
		panic(fmt.Sprintf("game %d history cannot be exported: %v", g.id, err))
	}
	return text
}

// ExportToPath writes ExportText to path.
func (g *Game) ExportToPath(path string) error {
	if err := os.WriteFile(path, []byte(g.ExportText()), 0o644); err != nil {
		return fmt.Errorf("failed to write notation file: %w", err)
	}
	return nil
}

// resultNotation is the export placed in a GameResult. Chain captures have no faithful
// single-token form, so such games report no notation at all.
func (g *Game) resultNotation() string {
	for _, m := range g.history {
		if m.IsChain() {
			return ""
		}
	}
	return g.ExportText()
}
