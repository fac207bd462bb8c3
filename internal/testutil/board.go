package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// BoardFromDiagram builds a game from eight rows of glyphs, rank 8 first,
// in the same layout Game.Dump prints. Spaces are ignored, so both
// "r n b q k b n r" and "rnbqkbnr" are accepted.
func BoardFromDiagram(t *testing.T, rows ...string) *chess.Game {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	g := chess.NewGame()
	for i, text := range rows {
		glyphs := strings.ReplaceAll(text, " ", "")
		if len(glyphs) != chess.BoardSize {
			t.Fatalf("diagram row %d %q has %d squares, want %d", i, text, len(glyphs), chess.BoardSize)
		}
		row := chess.BoardSize - 1 - i
		for col := 0; col < chess.BoardSize; col++ {
			cell, ok := chess.CellFromGlyph(glyphs[col])
			if !ok {
				t.Fatalf("diagram row %d: unknown glyph %q", i, glyphs[col])
			}
			g.Set(chess.Pos(row, col), cell)
		}
	}
	return g
}

// Sq parses a square name, failing the test on error.
func Sq(t *testing.T, s string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", s, err)
	}
	return p
}

// Destinations returns the sorted destination square names of moves.
func Destinations(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To.String())
	}
	sort.Strings(out)
	return out
}

// Captures returns the sorted destination square names of capturing moves.
func Captures(moves []chess.Move) []string {
	out := []string{}
	for _, m := range moves {
		if m.IsCapture() {
			out = append(out, m.To.String())
		}
	}
	sort.Strings(out)
	return out
}
