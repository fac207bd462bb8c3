package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// ApplyMove moves whatever stands on move.From to move.To and empties
// move.From.
//
// The application is blind: it does not check the move against any
// generated list, ignores move.Piece, move.Take and move.Promote, does not
// move a rook when castling, does not remove a pawn taken en passant and
// does not update the castling flags. Callers wanting those rules layer
// them around this call.
func ApplyMove(game *chess.Game, move chess.Move) {
	piece := game.Get(move.From)
	game.Set(move.From, chess.Empty)
	game.Set(move.To, piece)
}
