package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// rookDirections scans increasing column, decreasing column,
// increasing row, decreasing row, in that order.
var rookDirections = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// bishopDirections scans the four diagonals.
var bishopDirections = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// generateRayMoves walks each direction from origin one square at a time.
// Every empty square is a move. The first occupied square ends the ray:
// an enemy piece there adds one capturing move, a friendly piece adds none.
func generateRayMoves(game *chess.Game, list *chess.MoveList, piece chess.Cell, origin chess.Position, dirs []offset) {
	for _, dir := range dirs {
		dst := origin.Add(dir.dr, dir.dc)
		for dst.IsOnBoard() {
			target := game.Get(dst)
			if target != chess.Empty {
				if target.Side() != piece.Side() {
					list.Push(newMove(piece, origin, dst, target))
				}
				break // Blocked
			}
			list.Push(newMove(piece, origin, dst, chess.Empty))
			dst = dst.Add(dir.dr, dir.dc)
		}
	}
}
