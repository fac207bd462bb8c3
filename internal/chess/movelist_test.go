package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func numberedMove(i int) Move {
	return Move{
		From:  Pos(i%8, (i/8)%8),
		To:    Pos((i/64)%8, i%7),
		Piece: Cell(1 + i%12),
	}
}

func TestMoveListPreservesOrder(t *testing.T) {
	const n = 1000
	var list MoveList
	want := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		m := numberedMove(i)
		list.Push(m)
		want = append(want, m)
	}

	if list.Len() != n {
		t.Fatalf("Len() = %d; want %d", list.Len(), n)
	}
	if diff := cmp.Diff(want, list.Moves()); diff != "" {
		t.Errorf("Moves() mismatch (-want +got):\n%s", diff)
	}
	for i := 0; i < n; i++ {
		if list.At(i) != want[i] {
			t.Fatalf("At(%d) = %+v; want %+v", i, list.At(i), want[i])
		}
	}
}

func TestMoveListGrowth(t *testing.T) {
	var list MoveList
	if list.Cap() != 0 {
		t.Fatalf("zero list Cap() = %d; want 0", list.Cap())
	}

	wantCaps := map[int]int{1: 32, 32: 32, 33: 64, 64: 64, 65: 128, 129: 256}
	for i := 1; i <= 129; i++ {
		list.Push(numberedMove(i))
		if want, ok := wantCaps[i]; ok && list.Cap() != want {
			t.Errorf("after %d pushes Cap() = %d; want %d", i, list.Cap(), want)
		}
	}
}

func TestMoveListResetKeepsCapacity(t *testing.T) {
	var list MoveList
	for i := 0; i < 40; i++ {
		list.Push(numberedMove(i))
	}
	list.Reset()
	if list.Len() != 0 {
		t.Errorf("Len() after Reset = %d; want 0", list.Len())
	}
	if list.Cap() != 64 {
		t.Errorf("Cap() after Reset = %d; want 64", list.Cap())
	}
}

func TestMoveListCloneIsIndependent(t *testing.T) {
	var list MoveList
	list.Push(numberedMove(1))
	list.Push(numberedMove(2))

	clone := list.Clone()
	list.Reset()
	list.Push(numberedMove(3))

	if diff := cmp.Diff([]Move{numberedMove(1), numberedMove(2)}, clone); diff != "" {
		t.Errorf("Clone() changed after Reset (-want +got):\n%s", diff)
	}
	var empty MoveList
	if empty.Clone() != nil {
		t.Error("Clone() of empty list should be nil")
	}
}

func TestMoveListContains(t *testing.T) {
	var list MoveList
	m := Move{From: MustParsePosition("g1"), To: MustParsePosition("f3"), Piece: WhiteKnight}
	list.Push(m)

	if got, ok := list.Contains(m.From, m.To); !ok || got != m {
		t.Errorf("Contains(g1, f3) = %+v, %v; want %+v, true", got, ok, m)
	}
	if _, ok := list.Contains(m.From, MustParsePosition("h3")); ok {
		t.Error("Contains(g1, h3) = true; want false")
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{
			name: "quiet",
			move: Move{From: MustParsePosition("e2"), To: MustParsePosition("e4"), Piece: WhitePawn},
			want: "Pe2e4",
		},
		{
			name: "capture",
			move: Move{From: MustParsePosition("f3"), To: MustParsePosition("e5"), Piece: WhiteKnight, Take: BlackPawn},
			want: "Nf3xe5",
		},
		{
			name: "capture promotion",
			move: Move{From: MustParsePosition("b2"), To: MustParsePosition("a1"), Piece: BlackPawn, Take: WhiteRook, Promote: BlackQueen},
			want: "pb2xa1q",
		},
		{
			name: "check",
			move: Move{From: MustParsePosition("d1"), To: MustParsePosition("h5"), Piece: WhiteQueen, Check: true},
			want: "Qd1h5+",
		},
		{
			name: "mate",
			move: Move{From: MustParsePosition("d1"), To: MustParsePosition("f7"), Piece: WhiteQueen, Take: BlackPawn, Check: true, Mate: true},
			want: "Qd1xf7#",
		},
		{
			name: "mate without check",
			move: Move{From: MustParsePosition("a7"), To: MustParsePosition("a6"), Piece: WhiteKing, Mate: true},
			want: "Ka7a6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}
