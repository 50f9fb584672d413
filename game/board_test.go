package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewEmptyBoard(DefaultSize)
	require.NoError(t, err)
	return b
}

func place(t *testing.T, b *Board, row, col int, colour Colour, rank Rank) {
	t.Helper()
	require.NoError(t, b.Place(Coord{Row: row, Col: col}, Piece{Colour: colour, Rank: rank}))
}

func TestNewBoard(t *testing.T) {
	t.Run("rejects odd and tiny sizes", func(t *testing.T) {
		_, err := NewBoard(7)
		require.ErrorIs(t, err, ErrBoardSize)
		_, err = NewBoard(2)
		require.ErrorIs(t, err, ErrBoardSize)
	})

	t.Run("standard position", func(t *testing.T) {
		b := StandardBoard()

		whiteMen, whiteKings := b.Count(White)
		blackMen, blackKings := b.Count(Black)
		require.Equal(t, 12, whiteMen, "White should start with 12 men")
		require.Equal(t, 12, blackMen, "Black should start with 12 men")
		require.Zero(t, whiteKings+blackKings, "Nobody should start with kings")

		p, ok := b.PieceAt(Coord{Row: 0, Col: 1})
		require.True(t, ok)
		require.Equal(t, Black, p.Colour, "Black should occupy the top rows")
		p, ok = b.PieceAt(Coord{Row: 7, Col: 0})
		require.True(t, ok)
		require.Equal(t, White, p.Colour, "White should occupy the bottom rows")
		_, ok = b.PieceAt(Coord{Row: 0, Col: 0})
		require.False(t, ok, "Light squares stay empty")
	})

	t.Run("scales home rows with size", func(t *testing.T) {
		b, err := NewBoard(10)
		require.NoError(t, err)
		men, _ := b.Count(White)
		require.Equal(t, 20, men, "10x10 board has four home rows of five")
	})
}

func TestPlace(t *testing.T) {
	b := emptyBoard(t)
	require.Error(t, b.Place(Coord{Row: 0, Col: 0}, Piece{}), "Light squares are not playable")
	require.Error(t, b.Place(Coord{Row: 8, Col: 1}, Piece{}), "Off-board squares are not playable")
}

func TestMoveList(t *testing.T) {
	t.Run("opening moves for white", func(t *testing.T) {
		b := StandardBoard()
		moves := b.MoveList(White)

		require.Len(t, moves, 7)
		require.Equal(t, NewMove(Coord{5, 0}, Coord{4, 1}), moves[0], "Moves should be ordered by square then direction")
		require.Equal(t, NewMove(Coord{5, 6}, Coord{4, 7}), moves[6])
	})

	t.Run("opening moves for black", func(t *testing.T) {
		b := StandardBoard()
		moves := b.MoveList(Black)

		require.Len(t, moves, 7)
		require.Equal(t, NewMove(Coord{2, 1}, Coord{3, 0}), moves[0])
	})

	t.Run("order is stable between calls", func(t *testing.T) {
		b := StandardBoard()
		require.Equal(t, b.MoveList(White), b.MoveList(White))
	})

	t.Run("capture is mandatory", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 5, 2, White, Man)
		place(t, b, 5, 6, White, Man)
		place(t, b, 4, 3, Black, Man)

		moves := b.MoveList(White)

		require.Equal(t, []Move{NewMove(Coord{5, 2}, Coord{3, 4}, Coord{4, 3})}, moves,
			"Only the capture should be offered while one is available")
	})

	t.Run("chain capture is a single move", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 7, 0, White, Man)
		place(t, b, 6, 1, Black, Man)
		place(t, b, 4, 3, Black, Man)

		moves := b.MoveList(White)

		require.Len(t, moves, 1)
		require.Equal(t, Coord{3, 4}, moves[0].End())
		require.Equal(t, []Coord{{6, 1}, {4, 3}}, moves[0].Removed(), "Removed pieces should be listed in jump order")
		require.True(t, moves[0].IsChain())
	})

	t.Run("branching chains produce one move per branch", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 7, 2, White, Man)
		place(t, b, 6, 3, Black, Man)
		place(t, b, 4, 3, Black, Man)
		place(t, b, 4, 5, Black, Man)

		moves := b.MoveList(White)

		require.Equal(t, []Move{
			NewMove(Coord{7, 2}, Coord{3, 2}, Coord{6, 3}, Coord{4, 3}),
			NewMove(Coord{7, 2}, Coord{3, 6}, Coord{6, 3}, Coord{4, 5}),
		}, moves)
	})

	t.Run("promotion ends a chain", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 2, 1, White, Man)
		place(t, b, 1, 2, Black, Man)
		place(t, b, 1, 4, Black, Man)

		moves := b.MoveList(White)

		require.Equal(t, []Move{NewMove(Coord{2, 1}, Coord{0, 3}, Coord{1, 2})}, moves,
			"A man crowned mid-chain should stop on the promotion row")
	})

	t.Run("men only move forward", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 4, 3, White, Man)

		require.Equal(t, []Move{
			NewMove(Coord{4, 3}, Coord{3, 2}),
			NewMove(Coord{4, 3}, Coord{3, 4}),
		}, b.MoveList(White))
	})

	t.Run("kings move in every direction", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 4, 3, White, King)

		require.Equal(t, []Move{
			NewMove(Coord{4, 3}, Coord{3, 2}),
			NewMove(Coord{4, 3}, Coord{3, 4}),
			NewMove(Coord{4, 3}, Coord{5, 2}),
			NewMove(Coord{4, 3}, Coord{5, 4}),
		}, b.MoveList(White))
	})

	t.Run("kings capture backwards", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 2, 3, White, King)
		place(t, b, 3, 4, Black, Man)

		require.Equal(t, []Move{NewMove(Coord{2, 3}, Coord{4, 5}, Coord{3, 4})}, b.MoveList(White))
	})

	t.Run("blocked side has no moves", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 5, 0, White, Man)
		place(t, b, 4, 1, Black, Man)
		place(t, b, 3, 2, Black, Man)

		require.Empty(t, b.MoveList(White))
		require.False(t, b.HasMoves(White))
	})
}

func TestIsValidMove(t *testing.T) {
	b := StandardBoard()

	require.True(t, b.IsValidMove(White, NewMove(Coord{5, 0}, Coord{4, 1})))
	require.False(t, b.IsValidMove(Black, NewMove(Coord{5, 0}, Coord{4, 1})), "White's move is not legal for black")
	require.False(t, b.IsValidMove(White, NewMove(Coord{5, 0}, Coord{3, 2})), "Men cannot move two squares without capturing")
	require.False(t, b.IsValidMove(White, NewMove(Coord{5, 0}, Coord{4, 1}, Coord{4, 1})), "Removed lists must match")
}

func TestMovePiece(t *testing.T) {
	t.Run("simple move", func(t *testing.T) {
		b := StandardBoard()

		captures, promoted := b.MovePiece(NewMove(Coord{5, 0}, Coord{4, 1}))

		require.Zero(t, captures)
		require.False(t, promoted)
		_, ok := b.PieceAt(Coord{5, 0})
		require.False(t, ok, "Start square should be vacated")
		p, ok := b.PieceAt(Coord{4, 1})
		require.True(t, ok)
		require.Equal(t, Piece{Colour: White, Rank: Man}, p)
	})

	t.Run("chain capture removes every jumped piece", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 7, 0, White, Man)
		place(t, b, 6, 1, Black, Man)
		place(t, b, 4, 3, Black, Man)

		captures, promoted := b.MovePiece(b.MoveList(White)[0])

		require.Equal(t, 2, captures)
		require.False(t, promoted)
		men, kings := b.Count(Black)
		require.Zero(t, men+kings, "Both black men should be gone")
	})

	t.Run("promotion on the farthest row", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 6, 1, Black, Man)

		captures, promoted := b.MovePiece(NewMove(Coord{6, 1}, Coord{7, 0}))

		require.Zero(t, captures)
		require.True(t, promoted)
		p, _ := b.PieceAt(Coord{7, 0})
		require.True(t, p.IsKing())
	})

	t.Run("kings are not promoted again", func(t *testing.T) {
		b := emptyBoard(t)
		place(t, b, 1, 2, White, King)

		_, promoted := b.MovePiece(NewMove(Coord{1, 2}, Coord{0, 1}))

		require.False(t, promoted)
	})

	t.Run("panics without a piece on the start square", func(t *testing.T) {
		b := emptyBoard(t)
		require.Panics(t, func() {
			b.MovePiece(NewMove(Coord{5, 0}, Coord{4, 1}))
		})
	})
}

func TestCopy(t *testing.T) {
	b := StandardBoard()
	c := b.Copy()

	c.MovePiece(NewMove(Coord{5, 0}, Coord{4, 1}))
	c.Remove(Coord{0, 1})

	require.Equal(t, StandardBoard(), b, "Changing a copy should not touch the original")
	require.NotEqual(t, b, c)
}

func TestDisplay(t *testing.T) {
	b, err := NewBoard(4)
	require.NoError(t, err)

	expected := "   0 1 2 3\n" +
		" 0   b   b\n" +
		" 1 .   .  \n" +
		" 2   .   .\n" +
		" 3 w   w  "
	require.Equal(t, expected, b.Display())
}

func TestMoveImmutability(t *testing.T) {
	removed := []Coord{{4, 3}}
	m := NewMove(Coord{5, 2}, Coord{3, 4}, removed...)

	removed[0] = Coord{0, 0}
	m.Removed()[0] = Coord{1, 1}

	require.Equal(t, []Coord{{4, 3}}, m.Removed(), "Move should not share its removed list")
}

func TestColourOpposite(t *testing.T) {
	require.Equal(t, Black, White.Opposite())
	require.Equal(t, White, Black.Opposite())
	require.Equal(t, White, White.Opposite().Opposite())
}
