package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// offset is a (row, column) displacement.
type offset struct {
	dr, dc int
}

// kingOffsets are the eight unit steps around a square.
var kingOffsets = []offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// knightOffsets are the eight L-shaped jumps.
var knightOffsets = []offset{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// generateStepMoves adds one candidate per offset for non-sliding pieces.
// Destinations off the board or held by a friendly piece are skipped.
// No castling move is ever produced for the king.
func generateStepMoves(game *chess.Game, list *chess.MoveList, piece chess.Cell, origin chess.Position, offsets []offset) {
	for _, o := range offsets {
		dst := origin.Add(o.dr, o.dc)
		if !dst.IsOnBoard() {
			continue
		}
		target := game.Get(dst)
		if target != chess.Empty && target.Side() == piece.Side() {
			continue
		}
		list.Push(newMove(piece, origin, dst, target))
	}
}
