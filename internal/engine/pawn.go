package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// pawnRules holds the side-dependent constants of pawn movement.
type pawnRules struct {
	dir       int        // row step toward the promotion rank
	startRow  int8       // row the double step is allowed from
	lastRow   int8       // promotion row
	promoteTo chess.Cell // fixed promotion piece
}

func pawnRulesFor(side chess.Side) pawnRules {
	if side == chess.White {
		return pawnRules{dir: 1, startRow: 1, lastRow: 7, promoteTo: chess.WhiteQueen}
	}
	return pawnRules{dir: -1, startRow: 6, lastRow: 0, promoteTo: chess.BlackQueen}
}

// generatePawnMoves adds the forward steps and diagonal captures of a pawn.
// Diagonal squares only produce a move when an enemy piece stands there;
// en passant is never generated. A move reaching the last row promotes to
// the side's queen.
func generatePawnMoves(game *chess.Game, list *chess.MoveList, pawn chess.Cell, origin chess.Position) {
	rules := pawnRulesFor(pawn.Side())

	push := func(dst chess.Position, take chess.Cell) {
		m := newMove(pawn, origin, dst, take)
		if dst.Row == rules.lastRow {
			m.Promote = rules.promoteTo
		}
		list.Push(m)
	}

	// Forward
	one := origin.Add(rules.dir, 0)
	if one.IsOnBoard() && game.Get(one) == chess.Empty {
		push(one, chess.Empty)

		if origin.Row == rules.startRow {
			two := origin.Add(2*rules.dir, 0)
			if two.IsOnBoard() && game.Get(two) == chess.Empty {
				push(two, chess.Empty)
			}
		}
	}

	// Captures
	for _, dc := range []int{-1, 1} {
		dst := origin.Add(rules.dir, dc)
		if !dst.IsOnBoard() {
			continue
		}
		target := game.Get(dst)
		if target.IsEnemyOf(pawn) {
			push(dst, target)
		}
	}
}
