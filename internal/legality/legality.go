// Package legality discards pseudo-legal moves that would leave the
// mover's own king in check.
//
// The check is layered on top of the engine package: the position is
// exported as FEN and handed to github.com/notnil/chess, whose legal move
// list is used as a membership test. The inspected game is never modified.
package legality

import (
	"fmt"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// squarePair identifies a move by its origin and destination indexes.
type squarePair struct {
	from, to int
}

// Checker filters moves against the full rules of chess.
// The zero value is ready to use.
type Checker struct{}

// New returns a Checker.
func New() *Checker {
	return &Checker{}
}

// Filter returns the moves whose mover would not be left in check. Each
// move is judged with its own piece's side to move. The result is a new
// slice; moves is not modified.
//
// Both kings must be on the board, otherwise errors.ErrMissingKing is
// returned.
func (c *Checker) Filter(game *chess.Game, moves []chess.Move) ([]chess.Move, error) {
	legal := make(map[chess.Side]map[squarePair]bool, 2)
	out := make([]chess.Move, 0, len(moves))

	for _, m := range moves {
		side := m.Piece.Side()
		if side == chess.Invalid {
			continue
		}
		pairs, ok := legal[side]
		if !ok {
			var err error
			pairs, err = legalPairs(game, side)
			if err != nil {
				return nil, err
			}
			legal[side] = pairs
		}
		if pairs[squarePair{m.From.Index(), m.To.Index()}] {
			out = append(out, m)
		}
	}
	return out, nil
}

// IsLegal reports whether a single move keeps its mover's king safe.
func (c *Checker) IsLegal(game *chess.Game, m chess.Move) (bool, error) {
	kept, err := c.Filter(game, []chess.Move{m})
	if err != nil {
		return false, err
	}
	return len(kept) == 1, nil
}

// legalPairs collects the origin/destination pairs of every legal move of
// side in the current position.
func legalPairs(game *chess.Game, side chess.Side) (map[squarePair]bool, error) {
	for _, king := range []chess.Cell{chess.WhiteKing, chess.BlackKing} {
		if _, ok := game.Find(king); !ok {
			return nil, fmt.Errorf("no %s on the board: %w", king, errors.ErrMissingKing)
		}
	}

	fen := engine.ToFEN(game, side)
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%s: %v", fen, err)
	}

	pairs := make(map[squarePair]bool)
	for _, m := range notnil.NewGame(opt).ValidMoves() {
		pairs[squarePair{int(m.S1()), int(m.S2())}] = true
	}
	return pairs, nil
}
