package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ParseMove reads a move written as two square names, "e2e4" or "e2-e4",
// and fills in the piece on the origin and the cell on the destination
// from the current board. It does not check that the move is possible.
func ParseMove(game *chess.Game, text string) (chess.Move, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(s) != 4 {
		return chess.Move{}, fmt.Errorf("move %q: want two squares like e2e4: %w", text, errors.ErrInvalidPosition)
	}
	from, err := chess.ParsePosition(s[:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := chess.ParsePosition(s[2:])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move %q", text)
	}
	return newMove(game.Get(from), from, to, game.Get(to)), nil
}

// FindMove generates the moves of the piece on from and returns the one
// landing on to. It returns errors.ErrIllegalMove when no generated move
// matches.
func FindMove(game *chess.Game, from, to chess.Position) (chess.Move, error) {
	if err := GenerateMoves(game, from); err != nil {
		return chess.Move{}, err
	}
	if m, ok := game.Scratch().Contains(from, to); ok {
		return m, nil
	}
	return chess.Move{}, fmt.Errorf("%s to %s: %w", from, to, errors.ErrIllegalMove)
}
