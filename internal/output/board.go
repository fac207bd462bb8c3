package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// BoardColours holds the terminal attributes of the colour board dump.
type BoardColours struct {
	Light color.Attribute // light square background
	Dark  color.Attribute // dark square background
	Mark  color.Attribute // marked square background
	White color.Attribute // white piece foreground
	Black color.Attribute // black piece foreground
}

// DefaultBoardColours are used by NewBoardWriter.
var DefaultBoardColours = BoardColours{
	Light: color.BgYellow,
	Dark:  color.BgGreen,
	Mark:  color.BgRed,
	White: color.FgHiWhite,
	Black: color.FgBlack,
}

// BoardWriter renders boards as text, optionally with ANSI colours.
type BoardWriter struct {
	w       io.Writer
	colour  bool
	colours BoardColours
}

// NewBoardWriter creates a board writer. When colour is false the output
// is the plain Game.Dump layout.
func NewBoardWriter(w io.Writer, colour bool) *BoardWriter {
	return &BoardWriter{
		w:       w,
		colour:  colour,
		colours: DefaultBoardColours,
	}
}

// SetColours replaces the colour dump attributes.
func (bw *BoardWriter) SetColours(c BoardColours) {
	bw.colours = c
}

// WriteBoard writes the board of game. Marked squares are highlighted:
// in plain mode an empty marked square is shown as '*', in colour mode the
// square gets the mark background.
func (bw *BoardWriter) WriteBoard(game *chess.Game, marks ...chess.Position) error {
	if !bw.colour && len(marks) == 0 {
		return game.Dump(bw.w)
	}

	marked := make(map[chess.Position]bool, len(marks))
	for _, p := range marks {
		marked[p] = true
	}

	if bw.colour {
		return bw.writeColour(game, marked)
	}
	return bw.writePlain(game, marked)
}

func (bw *BoardWriter) writePlain(game *chess.Game, marked map[chess.Position]bool) error {
	w := bufio.NewWriter(bw.w)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(w, "%d ", row+1)
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				w.WriteByte(' ')
			}
			pos := chess.Pos(row, col)
			cell := game.Get(pos)
			if cell == chess.Empty && marked[pos] {
				w.WriteByte('*')
				continue
			}
			w.WriteByte(cell.Glyph())
		}
		w.WriteByte('\n')
	}
	w.WriteString("  A B C D E F G H\n\n")
	return w.Flush()
}

func (bw *BoardWriter) writeColour(game *chess.Game, marked map[chess.Position]bool) error {
	w := bufio.NewWriter(bw.w)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(w, "%d ", row+1)
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Pos(row, col)
			cell := game.Get(pos)

			c := color.New(bw.background(pos, marked[pos]))
			glyph := byte(' ')
			if cell != chess.Empty {
				glyph = cell.Glyph()
				if cell.Side() == chess.White {
					c.Add(bw.colours.White)
				} else {
					c.Add(bw.colours.Black)
				}
			}
			// Forced on regardless of color.NoColor.
			c.EnableColor()
			c.Fprintf(w, " %c ", glyph)
		}
		w.WriteByte('\n')
	}
	w.WriteString("   A  B  C  D  E  F  G  H\n\n")
	return w.Flush()
}

// background picks the square colour. a1 is a dark square.
func (bw *BoardWriter) background(pos chess.Position, marked bool) color.Attribute {
	switch {
	case marked:
		return bw.colours.Mark
	case (int(pos.Row)+int(pos.Col))%2 == 0:
		return bw.colours.Dark
	default:
		return bw.colours.Light
	}
}
