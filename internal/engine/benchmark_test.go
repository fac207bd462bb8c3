package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkLoadFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			game := chess.NewGame()
			for i := 0; i < b.N; i++ {
				LoadFEN(game, fen)
			}
		})
	}
}

func BenchmarkToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			game := chess.NewGame()
			side, _ := LoadFEN(game, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ToFEN(game, side)
			}
		})
	}
}

func BenchmarkGenerateMoves(b *testing.B) {
	cases := []struct {
		name   string
		fen    string
		square string
	}{
		{"Knight", benchFENs["Initial"], "g1"},
		{"Pawn", benchFENs["Initial"], "e2"},
		{"Queen", benchFENs["Complex"], "f3"},
		{"Rook", benchFENs["Endgame"], "e1"},
		{"King", benchFENs["Endgame"], "f2"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			game := chess.NewGame()
			LoadFEN(game, tt.fen)
			origin := chess.MustParsePosition(tt.square)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateMoves(game, origin)
			}
		})
	}
}

func BenchmarkAllMoves(b *testing.B) {
	for _, name := range []string{"Initial", "Midgame", "Complex"} {
		b.Run(name, func(b *testing.B) {
			game := chess.NewGame()
			side, _ := LoadFEN(game, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				AllMoves(game, side)
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"}

	for i := 0; i < b.N; i++ {
		game := chess.NewStartGame()
		for _, text := range moves {
			m, _ := ParseMove(game, text)
			ApplyMove(game, m)
		}
	}
}
