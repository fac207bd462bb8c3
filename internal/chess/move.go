package chess

import "strings"

// Move describes one ply.
//
// Castling, EnPassant, Check and Mate are never computed by the move
// generators. They are always false unless a caller sets them.
type Move struct {
	From Position
	To   Position

	// The piece on From before the move.
	Piece Cell

	// The piece captured on To (Empty if none).
	Take Cell

	// The piece a pawn promotes to (Empty if not a promotion).
	Promote Cell

	Castling  bool
	EnPassant bool
	Check     bool
	Mate      bool
}

// IsCapture returns true if the move takes a piece.
func (m Move) IsCapture() bool {
	return m.Take != Empty
}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promote != Empty
}

// String returns the transcript form of the move: piece glyph, origin,
// 'x' for a capture, destination, promotion glyph, then '#' for a checking
// mate or '+' for any other check.
// For example "Pe2e4", "Nb1c3" or "Pd7xc8Q".
func (m Move) String() string {
	var sb strings.Builder
	sb.Grow(8)
	sb.WriteByte(m.Piece.Glyph())
	sb.WriteString(m.From.String())
	if m.Take != Empty {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Promote != Empty {
		sb.WriteByte(m.Promote.Glyph())
	}
	switch {
	case m.Check && m.Mate:
		sb.WriteByte('#')
	case m.Check:
		sb.WriteByte('+')
	}
	return sb.String()
}
