package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// These tests verify the helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Pos(1, 2), chess.Pos(1, 2), "positions should match")
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertNoError(t, nil)
}

func TestAssertBooleans_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false)
	AssertContains(t, "hello world", "world")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"value %d", 42}, "value 42"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoardFromDiagram(t *testing.T) {
	g := BoardFromDiagram(t,
		"r n b q k b n r",
		"p p p p p p p p",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		"P P P P P P P P",
		"R N B Q K B N R",
	)
	want := chess.NewStartGame()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Pos(row, col)
			if got := g.Get(pos); got != want.Get(pos) {
				t.Errorf("Get(%s) = %v, want %v", pos, got, want.Get(pos))
			}
		}
	}
}

func TestDestinations(t *testing.T) {
	moves := []chess.Move{
		{From: Sq(t, "b1"), To: Sq(t, "c3")},
		{From: Sq(t, "b1"), To: Sq(t, "a3"), Take: chess.BlackPawn},
	}
	AssertEqual(t, Destinations(moves), []string{"a3", "c3"})
	AssertEqual(t, Captures(moves), []string{"a3"})
}
