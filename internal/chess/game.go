package chess

// Game holds the board and all bookkeeping for one match.
//
// A Game is not safe for concurrent use. Hosts serving several sessions
// should keep one Game per session.
type Game struct {
	// Row-major board storage: index = row*8 + col.
	// Only Get and Set touch it.
	board [NumSquares]Cell

	// Castling rights bookkeeping. Nothing in the core updates these.
	WhiteKingMoved          bool
	WhiteKingsideRookMoved  bool
	WhiteQueensideRookMoved bool
	BlackKingMoved          bool
	BlackKingsideRookMoved  bool
	BlackQueensideRookMoved bool

	// Not set by any code path; kept for callers layering check detection.
	WhiteKingInCheck bool
	BlackKingInCheck bool

	// Moves recorded by the caller. Never read by generation or application.
	History MoveList

	// Result of the last GenerateMoves call.
	scratch MoveList
}

// NewGame creates a game with an empty board.
func NewGame() *Game {
	g := &Game{}
	g.Init()
	return g
}

// NewStartGame creates a game set up in the standard starting position.
func NewStartGame() *Game {
	g := NewGame()
	g.ResetToStartPosition()
	return g
}

// Init zeroes the game: empty board, cleared flags and empty move lists.
func (g *Game) Init() {
	*g = Game{}
}

// Scratch returns the move list that generation resets and fills.
// Its contents are replaced by every generation call.
func (g *Game) Scratch() *MoveList {
	return &g.scratch
}

// ValidMoves returns the moves produced by the last generation call.
// The slice is invalidated by the next generation call.
func (g *Game) ValidMoves() []Move {
	return g.scratch.Moves()
}

// RecordMove appends a move to the history list.
func (g *Game) RecordMove(m Move) {
	g.History.Push(m)
}

// CastlingFlags returns the six castling bookkeeping flags in the order
// white king, white kingside rook, white queenside rook, then black.
func (g *Game) CastlingFlags() [6]bool {
	return [6]bool{
		g.WhiteKingMoved, g.WhiteKingsideRookMoved, g.WhiteQueensideRookMoved,
		g.BlackKingMoved, g.BlackKingsideRookMoved, g.BlackQueensideRookMoved,
	}
}
