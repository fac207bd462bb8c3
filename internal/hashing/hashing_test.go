package hashing

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func loadFEN(t *testing.T, fen string) (*chess.Game, chess.Side) {
	t.Helper()
	game := chess.NewGame()
	side, err := engine.LoadFEN(game, fen)
	testutil.AssertNoError(t, err)
	return game, side
}

func TestZobristHashConsistency(t *testing.T) {
	g1, s1 := loadFEN(t, engine.InitialFEN)
	g2 := chess.NewStartGame()

	if h1, h2 := GenerateZobristHash(g1, s1), GenerateZobristHash(g2, chess.White); h1 != h2 {
		t.Errorf("Identical positions produced different hashes: %x != %x", h1, h2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	start := chess.NewStartGame()

	moved := chess.NewStartGame()
	engine.ApplyMove(moved, chess.Move{From: testutil.Sq(t, "e2"), To: testutil.Sq(t, "e4")})

	noCastling, _ := loadFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")

	base := GenerateZobristHash(start, chess.White)
	tests := []struct {
		name string
		hash uint64
	}{
		{"pawn moved", GenerateZobristHash(moved, chess.White)},
		{"black to move", GenerateZobristHash(start, chess.Black)},
		{"castling rights gone", GenerateZobristHash(noCastling, chess.White)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.hash == base {
				t.Errorf("hash %x equals the start position's", tt.hash)
			}
		})
	}
}

func TestZobristHashEmptyBoard(t *testing.T) {
	testutil.AssertEqual(t, GenerateZobristHash(chess.NewGame(), chess.White), uint64(0))
}

func TestWeakHash(t *testing.T) {
	testutil.AssertEqual(t, WeakHash(chess.NewStartGame()), WeakHash(chess.NewStartGame()))
	testutil.AssertEqual(t, WeakHash(chess.NewGame()), uint32(0))

	game := chess.NewGame()
	game.Set(testutil.Sq(t, "b1"), chess.WhiteKnight) // square 2, cell 2
	testutil.AssertEqual(t, WeakHash(game), uint32(4))
}

func TestDuplicateDetector(t *testing.T) {
	d := NewDuplicateDetector(0)

	start, white := loadFEN(t, engine.InitialFEN)
	testutil.AssertFalse(t, d.CheckAndAdd(start, white), "first sighting")
	testutil.AssertTrue(t, d.CheckAndAdd(start, white), "second sighting")

	// Same placement, other side to move.
	testutil.AssertFalse(t, d.CheckAndAdd(start, chess.Black))

	// Clocks and en passant square are not part of the position.
	again, side := loadFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 12 40")
	testutil.AssertTrue(t, d.CheckAndAdd(again, side))

	testutil.AssertEqual(t, d.DuplicateCount(), 2)
	testutil.AssertEqual(t, d.UniqueCount(), 2)

	d.Reset()
	testutil.AssertEqual(t, d.DuplicateCount(), 0)
	testutil.AssertEqual(t, d.UniqueCount(), 0)
	testutil.AssertFalse(t, d.CheckAndAdd(start, white))
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	d := NewDuplicateDetector(1)
	start, white := loadFEN(t, engine.InitialFEN)
	rook, side := loadFEN(t, "8/8/8/8/8/8/8/R3K2k w - - 0 1")

	testutil.AssertFalse(t, d.IsFull())
	testutil.AssertFalse(t, d.CheckAndAdd(start, white))
	testutil.AssertTrue(t, d.IsFull())

	// Not stored once full, so never reported as a duplicate.
	testutil.AssertFalse(t, d.CheckAndAdd(rook, side))
	testutil.AssertFalse(t, d.CheckAndAdd(rook, side))

	// Stored positions are still found.
	testutil.AssertTrue(t, d.CheckAndAdd(start, white))
	testutil.AssertEqual(t, d.UniqueCount(), 1)
}
