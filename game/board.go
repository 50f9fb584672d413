package game

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSize is the standard 8x8 checkers board.
const DefaultSize = 8

var ErrBoardSize = errors.New("board size must be even and at least 4")

type square struct {
	piece    Piece
	occupied bool
}

// Board owns the grid. Only dark cells, where row+col is odd, are playable.
// WHITE starts at the bottom and moves towards row 0; BLACK starts at the top.
type Board struct {
	size    int
	squares []square // row-major, size*size
}

// NewEmptyBoard returns a board of the given size with no pieces on it.
func NewEmptyBoard(size int) (*Board, error) {
	if size < 4 || size%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBoardSize, size)
	}
	return &Board{
		size:    size,
		squares: make([]square, size*size),
	}, nil
}

// NewBoard returns a board in the standard starting position: each side fills the
// playable cells of its size/2-1 home rows.
func NewBoard(size int) (*Board, error) {
	b, err := NewEmptyBoard(size)
	if err != nil {
		return nil, err
	}
	homeRows := size/2 - 1
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := Coord{Row: row, Col: col}
			if !b.IsPlayable(c) {
				continue
			}
			switch {
			case row < homeRows:
				b.set(c, Piece{Colour: Black, Rank: Man})
			case row >= size-homeRows:
				b.set(c, Piece{Colour: White, Rank: Man})
			}
		}
	}
	return b, nil
}

// StandardBoard returns the 8x8 starting position.
func StandardBoard() *Board {
	b, _ := NewBoard(DefaultSize)
	return b
}

func (b *Board) Size() int {
	return b.size
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	squares := make([]square, len(b.squares))
	copy(squares, b.squares)
	return &Board{size: b.size, squares: squares}
}

func (b *Board) OnBoard(c Coord) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// IsPlayable reports whether c is a dark cell on this board.
func (b *Board) IsPlayable(c Coord) bool {
	return b.OnBoard(c) && (c.Row+c.Col)%2 == 1
}

// PieceAt returns the piece on c, if any.
func (b *Board) PieceAt(c Coord) (Piece, bool) {
	if !b.OnBoard(c) {
		return Piece{}, false
	}
	sq := b.squares[b.index(c)]
	return sq.piece, sq.occupied
}

// Place puts p on c, replacing whatever was there.
func (b *Board) Place(c Coord, p Piece) error {
	if !b.IsPlayable(c) {
		return fmt.Errorf("cannot place piece on %s: not a playable square", c)
	}
	b.set(c, p)
	return nil
}

// Remove clears c and reports whether a piece was there.
func (b *Board) Remove(c Coord) bool {
	if !b.OnBoard(c) {
		return false
	}
	i := b.index(c)
	had := b.squares[i].occupied
	b.squares[i] = square{}
	return had
}

// Count tallies the men and kings of one colour.
func (b *Board) Count(colour Colour) (men, kings int) {
	for _, sq := range b.squares {
		if !sq.occupied || sq.piece.Colour != colour {
			continue
		}
		if sq.piece.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

// PromotionRow is the farthest rank for colour.
func (b *Board) PromotionRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return b.size - 1
}

// MovePiece applies m in place and returns how many pieces were removed and whether the
// moving man was crowned. m must be legal for the piece on its start square.
func (b *Board) MovePiece(m Move) (captures int, promoted bool) {
	p, ok := b.PieceAt(m.start)
	if !ok {
		panic(fmt.Sprintf("no piece at %s to move", m.start))
	}

	b.Remove(m.start)
	for _, c := range m.removed {
		if b.Remove(c) {
			captures++
		}
	}

	if !p.IsKing() && m.end.Row == b.PromotionRow(p.Colour) {
		p.Rank = King
		promoted = true
	}
	b.set(m.end, p)

	return captures, promoted
}

// Display renders the grid with row and column indices. Empty dark cells are '.',
// light cells are blank.
func (b *Board) Display() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < b.size; col++ {
		fmt.Fprintf(&sb, " %d", col%10)
	}
	for row := 0; row < b.size; row++ {
		fmt.Fprintf(&sb, "\n%2d", row)
		for col := 0; col < b.size; col++ {
			c := Coord{Row: row, Col: col}
			sb.WriteByte(' ')
			switch p, ok := b.PieceAt(c); {
			case ok:
				sb.WriteByte(p.symbol())
			case b.IsPlayable(c):
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Display()
}

func (b *Board) index(c Coord) int {
	return c.Row*b.size + c.Col
}

func (b *Board) set(c Coord, p Piece) {
	b.squares[b.index(c)] = square{piece: p, occupied: true}
}
