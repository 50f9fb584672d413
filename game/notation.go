package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotation marks a malformed notation token or an unknown square number.
var ErrNotation = errors.New("invalid notation")

// Squares are numbered 1..size*size/2 over the playable cells, row-major from the top.

// SquareCount is the number of playable squares on a board of the given size.
func SquareCount(size int) int {
	return size * size / 2
}

// SquareToCoord converts a square number to its grid coordinate.
func SquareToCoord(size, n int) (Coord, error) {
	if n < 1 || n > SquareCount(size) {
		return Coord{}, fmt.Errorf("%w: square %d out of range 1..%d", ErrNotation, n, SquareCount(size))
	}
	half := size / 2
	row := (n - 1) / half
	col := ((n - 1) % half) * 2
	if row%2 == 0 {
		col++
	}
	return Coord{Row: row, Col: col}, nil
}

// CoordToSquare converts a playable grid coordinate to its square number.
func CoordToSquare(size int, c Coord) (int, error) {
	if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size || (c.Row+c.Col)%2 == 0 {
		return 0, fmt.Errorf("%w: %s is not a playable square", ErrNotation, c)
	}
	return c.Row*(size/2) + c.Col/2 + 1, nil
}

// ParseToken reads a single "<start>-<end>" or "<start>x<end>" token. An x token always
// removes exactly one piece, the one midway between start and end; chains are not
// expressible.
func ParseToken(size int, token string) (Move, error) {
	sep := "-"
	if !strings.Contains(token, sep) {
		sep = "x"
		if !strings.Contains(token, sep) {
			return Move{}, fmt.Errorf("%w: invalid move format: %q", ErrNotation, token)
		}
	}

	parts := strings.Split(token, sep)
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("%w: invalid move format: %q", ErrNotation, token)
	}
	start, err := parseSquare(size, parts[0])
	if err != nil {
		return Move{}, fmt.Errorf("token %q: %w", token, err)
	}
	end, err := parseSquare(size, parts[1])
	if err != nil {
		return Move{}, fmt.Errorf("token %q: %w", token, err)
	}

	if sep == "x" {
		return NewMove(start, end, midpoint(start, end)), nil
	}
	return NewMove(start, end), nil
}

// FormatMove renders m as a token. Any capture, however many jumps, is written with a
// single x between its start and end squares.
func FormatMove(size int, m Move) (string, error) {
	start, err := CoordToSquare(size, m.start)
	if err != nil {
		return "", err
	}
	end, err := CoordToSquare(size, m.end)
	if err != nil {
		return "", err
	}
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return strconv.Itoa(start) + sep + strconv.Itoa(end), nil
}

// ParseNotation splits text on whitespace and parses every token in order.
func ParseNotation(size int, text string) ([]Move, error) {
	tokens := strings.Fields(text)
	moves := make([]Move, 0, len(tokens))
	for _, token := range tokens {
		m, err := ParseToken(size, token)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatNotation renders moves as space separated tokens.
func FormatNotation(size int, moves []Move) (string, error) {
	tokens := make([]string, 0, len(moves))
	for _, m := range moves {
		token, err := FormatMove(size, m)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, token)
	}
	return strings.Join(tokens, " "), nil
}

func parseSquare(size int, s string) (Coord, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: square %q is not a number", ErrNotation, s)
	}
	return SquareToCoord(size, n)
}

func midpoint(a, b Coord) Coord {
	return Coord{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}
