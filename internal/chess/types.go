// Package chess provides the board, cell, position and move types.
package chess

// Side classifies a cell by the colour of the piece on it.
type Side int

const (
	Invalid Side = iota // Empty cell, no side
	White
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Invalid"
	}
}

// Opposite returns the opposite side. Invalid stays Invalid.
func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return Invalid
	}
}

// PieceKind is the colourless type of a piece.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Cell is the content of one board square: empty or one of the twelve
// (side, kind) pieces.
type Cell uint8

const (
	Empty Cell = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// NumCells is the number of distinct Cell values.
const NumCells = 13

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Glyph returns the single display character for the cell.
// White pieces are upper case, black pieces lower case, empty is '.'.
func (c Cell) Glyph() byte {
	switch c {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '.'
	}
}

// Side returns the side owning the piece on the cell, or Invalid for Empty.
func (c Cell) Side() Side {
	switch {
	case c >= WhitePawn && c <= WhiteKing:
		return White
	case c >= BlackPawn && c <= BlackKing:
		return Black
	default:
		return Invalid
	}
}

// Kind returns the colourless piece kind of the cell.
func (c Cell) Kind() PieceKind {
	switch c {
	case WhitePawn, BlackPawn:
		return Pawn
	case WhiteKnight, BlackKnight:
		return Knight
	case WhiteBishop, BlackBishop:
		return Bishop
	case WhiteRook, BlackRook:
		return Rook
	case WhiteQueen, BlackQueen:
		return Queen
	case WhiteKing, BlackKing:
		return King
	default:
		return NoPiece
	}
}

// String returns a readable name such as "White Knight" or "Empty".
func (c Cell) String() string {
	if c == Empty {
		return "Empty"
	}
	return c.Side().String() + " " + c.Kind().String()
}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// IsEnemyOf reports whether both cells hold pieces of opposite sides.
func (c Cell) IsEnemyOf(other Cell) bool {
	return c != Empty && other != Empty && c.Side() != other.Side()
}

// MakeCell builds the cell for a side and piece kind.
// It returns Empty when either argument does not name a piece.
func MakeCell(side Side, kind PieceKind) Cell {
	if kind < Pawn || kind > King {
		return Empty
	}
	switch side {
	case White:
		return Cell(int(WhitePawn) + int(kind-Pawn))
	case Black:
		return Cell(int(BlackPawn) + int(kind-Pawn))
	default:
		return Empty
	}
}

// CellFromGlyph decodes a glyph produced by Glyph.
func CellFromGlyph(g byte) (Cell, bool) {
	switch g {
	case '.':
		return Empty, true
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return Empty, false
	}
}
