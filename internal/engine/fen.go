package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// LoadFEN resets game and fills the board from a FEN string.
// Only the piece placement field is required. It returns the side to move
// (White when the field is absent). Castling rights that are absent from
// the castling field mark the matching king or rook as moved. The en
// passant field and the clocks are accepted but not stored.
func LoadFEN(game *chess.Game, fen string) (chess.Side, error) {
	game.Init()

	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Invalid, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	if err := parsePiecePositions(game, parts[0]); err != nil {
		game.Init()
		return chess.Invalid, err
	}

	side, err := parseSideToMove(parts)
	if err != nil {
		game.Init()
		return chess.Invalid, err
	}

	if err := parseCastlingRights(game, parts); err != nil {
		game.Init()
		return chess.Invalid, err
	}

	return side, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(game *chess.Game, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in piece placement, want 8: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			cell, ok := chess.CellFromGlyph(c)
			if !ok || cell == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", row+1, errors.ErrInvalidFEN)
			}
			game.Set(chess.Pos(row, col), cell)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares, want 8: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Side, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.Invalid, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights parses the castling availability field into the
// game's moved flags. Without the field all rights are assumed.
func parseCastlingRights(game *chess.Game, parts []string) error {
	if len(parts) < 3 {
		return nil
	}
	field := parts[2]
	if field != "-" {
		for _, c := range field {
			if !strings.ContainsRune("KQkq", c) {
				return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
			}
		}
	}

	game.WhiteKingsideRookMoved = !strings.ContainsRune(field, 'K')
	game.WhiteQueensideRookMoved = !strings.ContainsRune(field, 'Q')
	game.BlackKingsideRookMoved = !strings.ContainsRune(field, 'k')
	game.BlackQueensideRookMoved = !strings.ContainsRune(field, 'q')
	game.WhiteKingMoved = game.WhiteKingsideRookMoved && game.WhiteQueensideRookMoved
	game.BlackKingMoved = game.BlackKingsideRookMoved && game.BlackQueensideRookMoved
	return nil
}

// ToFEN converts the game to a six-field FEN string with toMove as the
// side to move. Castling rights are written only when the flags allow
// them and the king and rook still stand on their home squares. The en
// passant field is always "-" and the clocks are "0 1".
func ToFEN(game *chess.Game, toMove chess.Side) string {
	var sb strings.Builder

	writePiecePositions(&sb, game)
	sb.WriteByte(' ')
	if toMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, game)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, game *chess.Game) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			cell := game.Get(chess.Pos(row, col))
			if cell == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(cell.Glyph())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// castlingRight pairs a FEN letter with the squares and flags it needs.
type castlingRight struct {
	letter    byte
	king      chess.Cell
	kingSq    string
	rook      chess.Cell
	rookSq    string
	kingMoved func(*chess.Game) bool
	rookMoved func(*chess.Game) bool
}

var castlingRights = []castlingRight{
	{'K', chess.WhiteKing, "e1", chess.WhiteRook, "h1",
		func(g *chess.Game) bool { return g.WhiteKingMoved },
		func(g *chess.Game) bool { return g.WhiteKingsideRookMoved }},
	{'Q', chess.WhiteKing, "e1", chess.WhiteRook, "a1",
		func(g *chess.Game) bool { return g.WhiteKingMoved },
		func(g *chess.Game) bool { return g.WhiteQueensideRookMoved }},
	{'k', chess.BlackKing, "e8", chess.BlackRook, "h8",
		func(g *chess.Game) bool { return g.BlackKingMoved },
		func(g *chess.Game) bool { return g.BlackKingsideRookMoved }},
	{'q', chess.BlackKing, "e8", chess.BlackRook, "a8",
		func(g *chess.Game) bool { return g.BlackKingMoved },
		func(g *chess.Game) bool { return g.BlackQueensideRookMoved }},
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, game *chess.Game) {
	hasCastling := false
	for _, r := range castlingRights {
		if r.kingMoved(game) || r.rookMoved(game) {
			continue
		}
		if game.Get(chess.MustParsePosition(r.kingSq)) != r.king ||
			game.Get(chess.MustParsePosition(r.rookSq)) != r.rook {
			continue
		}
		sb.WriteByte(r.letter)
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
