// Package engine generates pseudo-legal moves and applies moves to a game.
//
// Generation enumerates the geometrically reachable destinations of one
// piece. It does not check whether the mover's own king is left in check.
package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// GenerateMoves resets the game's scratch move list and fills it with the
// pseudo-legal moves of the piece on origin. Read the result with
// game.ValidMoves(); it is replaced by the next call.
//
// It returns errors.ErrEmptyCell when origin holds no piece and
// errors.ErrInvalidPosition when origin is off the board. In both cases the
// scratch list is left empty.
func GenerateMoves(game *chess.Game, origin chess.Position) error {
	list := game.Scratch()
	list.Reset()

	if !origin.IsOnBoard() {
		return errors.Wrapf(errors.ErrInvalidPosition, "generate moves from %s", origin)
	}
	cell := game.Get(origin)
	if cell == chess.Empty {
		return errors.Wrapf(errors.ErrEmptyCell, "generate moves from %s", origin)
	}

	switch cell.Kind() {
	case chess.King:
		generateStepMoves(game, list, cell, origin, kingOffsets)
	case chess.Knight:
		generateStepMoves(game, list, cell, origin, knightOffsets)
	case chess.Rook:
		generateRayMoves(game, list, cell, origin, rookDirections)
	case chess.Bishop:
		generateRayMoves(game, list, cell, origin, bishopDirections)
	case chess.Queen:
		generateRayMoves(game, list, cell, origin, rookDirections)
		generateRayMoves(game, list, cell, origin, bishopDirections)
	case chess.Pawn:
		generatePawnMoves(game, list, cell, origin)
	}
	return nil
}

// AllMoves returns the pseudo-legal moves of every piece of side, origins
// visited a1, b1, ... h8. The returned slice is a copy and stays valid
// across later generation calls. The game's scratch list holds the moves
// of the last piece visited.
func AllMoves(game *chess.Game, side chess.Side) []chess.Move {
	var all []chess.Move
	for i := 0; i < chess.NumSquares; i++ {
		pos := chess.Pos(i/chess.BoardSize, i%chess.BoardSize)
		if game.Get(pos).Side() != side {
			continue
		}
		if err := GenerateMoves(game, pos); err != nil {
			continue
		}
		all = append(all, game.ValidMoves()...)
	}
	return all
}

// newMove builds a move of piece from origin to dst, recording the
// captured cell when dst is occupied.
func newMove(piece chess.Cell, origin, dst chess.Position, take chess.Cell) chess.Move {
	return chess.Move{
		From:  origin,
		To:    dst,
		Piece: piece,
		Take:  take,
	}
}
