package worker

import (
	"context"
	"sort"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/legality"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestCountMoves(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		side     chess.Side
		moves    int
		captures int
	}{
		{"start", engine.InitialFEN, chess.White, 20, 0},
		{"start black", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1", chess.Black, 20, 0},
		{"lone rook", "8/8/8/8/8/8/8/R3K2k w - - 0 1", chess.White, 15, 0},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", chess.White, 7, 1},
	}

	count := CountMoves(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := count(WorkItem{FEN: tt.fen, Index: 7})
			testutil.AssertNoError(t, res.Error)
			testutil.AssertEqual(t, res.Index, 7)
			testutil.AssertEqual(t, res.FEN, tt.fen)
			testutil.AssertEqual(t, res.Side, tt.side)
			testutil.AssertEqual(t, res.Moves, tt.moves)
			testutil.AssertEqual(t, res.Captures, tt.captures)
			testutil.AssertEqual(t, res.Legal, -1)
		})
	}
}

func TestCountMoves_Legal(t *testing.T) {
	// The e2 rook is pinned: 13 rook moves, 6 of them legal. The king has
	// 4 pseudo-legal moves (d1, d2, f1, f2), all legal.
	fen := "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1"
	res := CountMoves(legality.New())(WorkItem{FEN: fen})
	testutil.AssertNoError(t, res.Error)
	testutil.AssertEqual(t, res.Moves, 17)
	testutil.AssertEqual(t, res.Legal, 10)
}

func TestCountMoves_Errors(t *testing.T) {
	res := CountMoves(nil)(WorkItem{FEN: "not/a/fen", Index: 3})
	testutil.AssertErrorIs(t, res.Error, errors.ErrInvalidFEN)
	testutil.AssertEqual(t, res.Index, 3)

	res = CountMoves(legality.New())(WorkItem{FEN: "8/8/8/8/8/8/8/R3K3 w - - 0 1"})
	testutil.AssertErrorIs(t, res.Error, errors.ErrMissingKing)
}

func TestCountMoves_InPool(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"8/8/8/8/8/8/8/R3K2k w - - 0 1",
		"bad",
		"4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1",
	}
	pool := New(CountMoves(nil), WithWorkers(3), WithBufferSize(2))
	pool.Start()

	go func() {
		for i, fen := range fens {
			pool.Submit(context.Background(), WorkItem{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	var results []ProcessResult
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	testutil.AssertEqual(t, len(results), len(fens))
	testutil.AssertEqual(t, results[0].Moves, 20)
	testutil.AssertEqual(t, results[1].Moves, 15)
	testutil.AssertErrorIs(t, results[2].Error, errors.ErrInvalidFEN)
	testutil.AssertEqual(t, results[3].Moves, 7)
}
