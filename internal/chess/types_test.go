package chess

import "testing"

func TestCellProjections(t *testing.T) {
	tests := []struct {
		cell  Cell
		glyph byte
		side  Side
		kind  PieceKind
	}{
		{Empty, '.', Invalid, NoPiece},
		{WhitePawn, 'P', White, Pawn},
		{WhiteKnight, 'N', White, Knight},
		{WhiteBishop, 'B', White, Bishop},
		{WhiteRook, 'R', White, Rook},
		{WhiteQueen, 'Q', White, Queen},
		{WhiteKing, 'K', White, King},
		{BlackPawn, 'p', Black, Pawn},
		{BlackKnight, 'n', Black, Knight},
		{BlackBishop, 'b', Black, Bishop},
		{BlackRook, 'r', Black, Rook},
		{BlackQueen, 'q', Black, Queen},
		{BlackKing, 'k', Black, King},
	}
	if len(tests) != NumCells {
		t.Fatalf("table covers %d cells, want %d", len(tests), NumCells)
	}

	for _, tt := range tests {
		t.Run(tt.cell.String(), func(t *testing.T) {
			if got := tt.cell.Glyph(); got != tt.glyph {
				t.Errorf("Glyph() = %q; want %q", got, tt.glyph)
			}
			if got := tt.cell.Side(); got != tt.side {
				t.Errorf("Side() = %v; want %v", got, tt.side)
			}
			if got := tt.cell.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v; want %v", got, tt.kind)
			}
			if got := MakeCell(tt.side, tt.kind); got != tt.cell {
				t.Errorf("MakeCell(%v, %v) = %v; want %v", tt.side, tt.kind, got, tt.cell)
			}
			if got, ok := CellFromGlyph(tt.glyph); !ok || got != tt.cell {
				t.Errorf("CellFromGlyph(%q) = %v, %v; want %v, true", tt.glyph, got, ok, tt.cell)
			}
		})
	}
}

func TestCellFromGlyphRejects(t *testing.T) {
	for _, g := range []byte{'x', ' ', '1', 'Z'} {
		if _, ok := CellFromGlyph(g); ok {
			t.Errorf("CellFromGlyph(%q) ok = true; want false", g)
		}
	}
}

func TestMakeCellInvalid(t *testing.T) {
	if got := MakeCell(Invalid, Queen); got != Empty {
		t.Errorf("MakeCell(Invalid, Queen) = %v; want Empty", got)
	}
	if got := MakeCell(White, NoPiece); got != Empty {
		t.Errorf("MakeCell(White, NoPiece) = %v; want Empty", got)
	}
}

func TestIsEnemyOf(t *testing.T) {
	tests := []struct {
		a, b Cell
		want bool
	}{
		{WhitePawn, BlackPawn, true},
		{BlackKing, WhiteQueen, true},
		{WhitePawn, WhiteKing, false},
		{WhitePawn, Empty, false},
		{Empty, BlackPawn, false},
		{Empty, Empty, false},
	}
	for _, tt := range tests {
		if got := tt.a.IsEnemyOf(tt.b); got != tt.want {
			t.Errorf("%v.IsEnemyOf(%v) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSideOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White || Invalid.Opposite() != Invalid {
		t.Error("Opposite() mapping is wrong")
	}
}
