package output

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// JSONMove represents a move in JSON format.
type JSONMove struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Piece   string `json:"piece"`
	Take    string `json:"take,omitempty"`
	Promote string `json:"promote,omitempty"`
	Capture bool   `json:"capture"`
}

// MoveToJSON converts a move to JSON format. Pieces are written as their
// board glyphs.
func MoveToJSON(m chess.Move) JSONMove {
	return JSONMove{
		From:    m.From.String(),
		To:      m.To.String(),
		Piece:   glyph(m.Piece),
		Take:    glyph(m.Take),
		Promote: glyph(m.Promote),
		Capture: m.IsCapture(),
	}
}

// MovesToJSON converts a move list to JSON format.
func MovesToJSON(moves []chess.Move) []JSONMove {
	result := make([]JSONMove, 0, len(moves))
	for _, m := range moves {
		result = append(result, MoveToJSON(m))
	}
	return result
}

func glyph(c chess.Cell) string {
	if c == chess.Empty {
		return ""
	}
	return string(c.Glyph())
}
