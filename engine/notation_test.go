package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"checkers/agent"
	"checkers/game"

	"github.com/stretchr/testify/require"
)

func TestImportText(t *testing.T) {
	t.Run("white opening", func(t *testing.T) {
		g := newGame(t, game.StandardBoard(), agent.FirstMover{}, agent.FirstMover{}, WithSeed("21-17 9-14"))

		require.Equal(t, 2, g.MoveNumber())
		require.Equal(t, game.White, g.CurrentTurn())
		require.Equal(t, StateNotStarted, g.State())
		require.Equal(t, "21-17 9-14", g.ExportText())
	})

	t.Run("black opening", func(t *testing.T) {
		g := newGame(t, game.StandardBoard(), agent.FirstMover{}, agent.FirstMover{}, WithSeed("9-13"))

		require.Equal(t, 1, g.MoveNumber())
		require.Equal(t, game.White, g.CurrentTurn(), "White replies to a black opening")
	})

	t.Run("book moves are logged", func(t *testing.T) {
		g := newGame(t, game.StandardBoard(), agent.FirstMover{}, agent.FirstMover{},
			WithSeed("21-17"), WithVerbose(true))

		require.Contains(t, g.MoveLog(), "Move 1: WHITE's turn\nMoved from (5, 0) to (4, 1) (Book Move)\n")
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := New(3, 1, tracker("a", 0, agent.FirstMover{}), tracker("b", 1, agent.FirstMover{}),
			game.StandardBoard(), WithSeed("21_17"))

		require.ErrorIs(t, err, game.ErrNotation)
		var matchErr *MatchError
		require.True(t, errors.As(err, &matchErr))
		require.Equal(t, KindNotation, matchErr.Kind)
		require.Equal(t, 3, matchErr.GameID)
		require.Equal(t, "21_17", matchErr.Token)
	})

	t.Run("first move invalid for both", func(t *testing.T) {
		_, err := New(1, 1, tracker("a", 0, agent.FirstMover{}), tracker("b", 1, agent.FirstMover{}),
			game.StandardBoard(), WithSeed("21-13"))

		require.ErrorIs(t, err, ErrIllegalSeed)
		require.Contains(t, err.Error(), "invalid for both")
	})

	t.Run("later move for the wrong side", func(t *testing.T) {
		_, err := New(1, 1, tracker("a", 0, agent.FirstMover{}), tracker("b", 1, agent.FirstMover{}),
			game.StandardBoard(), WithSeed("21-17 22-18"))

		require.ErrorIs(t, err, ErrIllegalSeed)
		var matchErr *MatchError
		require.True(t, errors.As(err, &matchErr))
		require.Equal(t, KindIllegalSeed, matchErr.Kind)
		require.Equal(t, game.Black, matchErr.Colour)
		require.Equal(t, 2, matchErr.Ply)
		require.Equal(t, "22-18", matchErr.Token)
		require.True(t, matchErr.Fatal(), "A bad seed aborts the run")
	})

	t.Run("already finished", func(t *testing.T) {
		b := emptyBoard(t, 8)
		place(t, b, 5, 2, game.White, game.Man)
		place(t, b, 4, 3, game.Black, game.Man)

		_, err := New(1, 1, tracker("a", 0, agent.FirstMover{}), tracker("b", 1, agent.FirstMover{}),
			b, WithSeed("22x15"))

		require.ErrorIs(t, err, ErrIllegalSeed)
		require.Contains(t, err.Error(), "already complete")
	})

	t.Run("only before the game starts", func(t *testing.T) {
		g := newGame(t, game.StandardBoard(), agent.FirstMover{}, agent.FirstMover{})
		_, err := g.MakeMove(context.Background())
		require.NoError(t, err)

		require.Error(t, g.ImportText("9-14"))
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	g := newGame(t, game.StandardBoard(), agent.NewSeededRandomBot(7), agent.NewSeededRandomBot(8))
	for i := 0; i < 12; i++ {
		result, err := g.MakeMove(context.Background())
		require.NoError(t, err)
		if result != ResultNone {
			break
		}
	}

	var played []game.Move
	for _, m := range g.History() {
		if m.IsChain() {
			break
		}
		played = append(played, m)
	}
	text, err := game.FormatNotation(8, played)
	require.NoError(t, err)

	replay := newGame(t, game.StandardBoard(), agent.FirstMover{}, agent.FirstMover{}, WithSeed(text))

	require.Equal(t, len(played), replay.MoveNumber())
	for i, m := range replay.History() {
		require.Equal(t, played[i].Start(), m.Start(), "ply %d", i+1)
		require.Equal(t, played[i].End(), m.End(), "ply %d", i+1)
	}
	require.Equal(t, text, replay.ExportText())
}

func TestImportExportFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte("22-18 11-15\n18x11\n"), 0o644))

	g := newGame(t, game.StandardBoard(), agent.FirstMover{}, agent.FirstMover{})
	require.NoError(t, g.ImportFile(path))
	require.Equal(t, 3, g.MoveNumber())
	require.Equal(t, game.Black, g.CurrentTurn())
	require.Equal(t, 1, g.Captures(game.White))

	out := filepath.Join(dir, "out.txt")
	require.NoError(t, g.ExportToPath(out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "22-18 11-15 18x11", string(data))

	require.Error(t, g.ImportFile(filepath.Join(dir, "missing.txt")))
}

func TestSeedFileOption(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte("22-18 11-15\n"), 0o644))

	t.Run("replayed before the start", func(t *testing.T) {
		g := newGame(t, game.StandardBoard(), agent.FirstMover{}, agent.FirstMover{}, WithSeedFile(path))
		require.Equal(t, 2, g.MoveNumber())
		require.Equal(t, game.White, g.CurrentTurn())
		require.Equal(t, StateNotStarted, g.State())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New(1, 1, tracker("White", 0, agent.FirstMover{}), tracker("Black", 1, agent.FirstMover{}),
			game.StandardBoard(), WithSeedFile(filepath.Join(dir, "missing.txt")))
		require.ErrorContains(t, err, "failed to read notation file")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("text and file together", func(t *testing.T) {
		_, err := New(1, 1, tracker("White", 0, agent.FirstMover{}), tracker("Black", 1, agent.FirstMover{}),
			game.StandardBoard(), WithSeed("22-18"), WithSeedFile(path))
		require.Error(t, err, "Only one seed source may be given")
	})
}
