package worker

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// MoveFilter narrows a pseudo-legal move list. *legality.Checker
// satisfies it.
type MoveFilter interface {
	Filter(game *chess.Game, moves []chess.Move) ([]chess.Move, error)
}

// CountMoves returns a ProcessFunc that loads each item's FEN into a fresh
// game and counts the pseudo-legal moves of the side to move. When filter
// is non-nil the legal count is filled in as well.
func CountMoves(filter MoveFilter) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, FEN: item.FEN, Legal: -1}

		game := chess.NewGame()
		side, err := engine.LoadFEN(game, item.FEN)
		if err != nil {
			res.Error = err
			return res
		}
		res.Side = side

		moves := engine.AllMoves(game, side)
		res.Moves = len(moves)
		for _, m := range moves {
			if m.IsCapture() {
				res.Captures++
			}
		}

		if filter != nil {
			legal, err := filter.Filter(game, moves)
			if err != nil {
				res.Error = err
				return res
			}
			res.Legal = len(legal)
		}
		return res
	}
}
