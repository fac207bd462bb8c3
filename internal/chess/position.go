package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Coordinate characters for the textual square form.
const (
	ColBase  = 'a'
	RankBase = '1'
	LastCol  = ColBase + BoardSize - 1
	LastRank = RankBase + BoardSize - 1
)

// Position is a zero-based (row, column) square coordinate.
// Row 0 is rank 1 and column 0 is file a. Off-board values are
// representable and must be checked with IsOnBoard before use.
type Position struct {
	Row int8
	Col int8
}

// Pos builds a Position from row and column. Coordinates outside the
// board are saturated to -1 or BoardSize so they stay off the board.
func Pos(row, col int) Position {
	return Position{Row: clampCoord(row), Col: clampCoord(col)}
}

func clampCoord(v int) int8 {
	switch {
	case v < 0:
		return -1
	case v >= BoardSize:
		return BoardSize
	}
	return int8(v)
}

// IsOnBoard reports whether both coordinates are within [0, 8).
func (p Position) IsOnBoard() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Add returns the position offset by dr rows and dc columns.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + int8(dr), Col: p.Col + int8(dc)}
}

// Index returns the row-major board index (row*8 + col).
func (p Position) Index() int {
	return int(p.Row)*BoardSize + int(p.Col)
}

// String returns the square name, e.g. "e4".
// Off-board positions are rendered as "(row,col)".
func (p Position) String() string {
	if !p.IsOnBoard() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte(p.Col) + ColBase, byte(p.Row) + RankBase})
}

// ParsePosition parses a square name: a column letter 'a'-'h' followed by
// a row digit '1'-'8'. "a1" is (0,0) and "h8" is (7,7).
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.PositionError{Err: errors.ErrInvalidPosition, Input: s, Reason: "want two characters"}
	}
	col, row := s[0], s[1]
	if col < ColBase || col > LastCol {
		return Position{}, &errors.PositionError{Err: errors.ErrInvalidPosition, Input: s, Reason: "column must be a-h"}
	}
	if row < RankBase || row > LastRank {
		return Position{}, &errors.PositionError{Err: errors.ErrInvalidPosition, Input: s, Reason: "row must be 1-8"}
	}
	return Position{Row: int8(row - RankBase), Col: int8(col - ColBase)}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}
