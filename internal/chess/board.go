package chess

import (
	"bufio"
	"fmt"
	"io"
)

// backRank is the piece order on the first and last rows, files a to h.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Get returns the cell at pos. It panics if pos is off the board.
func (g *Game) Get(pos Position) Cell {
	mustBeOnBoard("Get", pos)
	return g.board[pos.Index()]
}

// Set places cell at pos. It panics if pos is off the board.
func (g *Game) Set(pos Position, cell Cell) {
	mustBeOnBoard("Set", pos)
	g.board[pos.Index()] = cell
}

func mustBeOnBoard(op string, pos Position) {
	if !pos.IsOnBoard() {
		panic(fmt.Sprintf("chess: %s: position %s is off the board", op, pos))
	}
}

// Clear empties every square. Flags and move lists are left alone.
func (g *Game) Clear() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			g.Set(Pos(row, col), Empty)
		}
	}
}

// ResetToStartPosition clears the board and places the standard 32 pieces:
// white on rows 0 and 1, black on rows 6 and 7.
func (g *Game) ResetToStartPosition() {
	g.Clear()
	for col := 0; col < BoardSize; col++ {
		g.Set(Pos(0, col), MakeCell(White, backRank[col]))
		g.Set(Pos(1, col), WhitePawn)
		g.Set(Pos(6, col), BlackPawn)
		g.Set(Pos(7, col), MakeCell(Black, backRank[col]))
	}
}

// Find returns the position of the first square (a1, b1, ... h8) holding cell.
func (g *Game) Find(cell Cell) (Position, bool) {
	for i := 0; i < NumSquares; i++ {
		pos := Pos(i/BoardSize, i%BoardSize)
		if g.Get(pos) == cell {
			return pos, true
		}
	}
	return Position{}, false
}

// Dump writes the board as text, rank 8 at the top:
//
//	8 r n b q k b n r
//	...
//	1 R N B Q K B N R
//	  A B C D E F G H
func (g *Game) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for row := BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(bw, "%d ", row+1)
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteByte(g.Get(Pos(row, col)).Glyph())
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("  A B C D E F G H\n\n")
	return bw.Flush()
}
