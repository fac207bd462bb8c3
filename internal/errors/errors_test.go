package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrEmptyCell,
		ErrInvalidPosition,
		ErrInvalidFEN,
		ErrIllegalMove,
		ErrMissingKing,
		ErrInvalidConfig,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
			for _, other := range sentinels {
				if other != sentinel && errors.Is(wrapped, other) {
					t.Errorf("errors.Is(wrapped %v, %v) = true, want false", sentinel, other)
				}
			}
		})
	}
}

func TestPositionError(t *testing.T) {
	err := &PositionError{Err: ErrInvalidPosition, Input: "z9", Reason: "column must be a-h"}

	msg := err.Error()
	for _, s := range []string{`"z9"`, "column must be a-h", "invalid position"} {
		if !strings.Contains(msg, s) {
			t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
		}
	}

	wrapped := fmt.Errorf("reading square: %w", err)
	if !errors.Is(wrapped, ErrInvalidPosition) {
		t.Error("errors.Is(wrapped, ErrInvalidPosition) = false, want true")
	}
	var pe *PositionError
	if !errors.As(wrapped, &pe) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if pe.Input != "z9" {
		t.Errorf("pe.Input = %q, want %q", pe.Input, "z9")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MoveError
		want string
	}{
		{
			name: "full context",
			err:  &MoveError{Err: ErrEmptyCell, PlyNum: 3, MoveText: "e3e4"},
			want: `ply 3, move "e3e4": empty cell`,
		},
		{
			name: "error only",
			err:  &MoveError{Err: ErrIllegalMove},
			want: "illegal move",
		},
		{
			name: "no error",
			err:  &MoveError{PlyNum: 1},
			want: "ply 1",
		},
		{
			name: "nothing",
			err:  &MoveError{},
			want: "move error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, PlyNum: 24, MoveText: "a1a8"}
	wrapped := fmt.Errorf("applying moves: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.PlyNum != 24 {
		t.Errorf("extracted.PlyNum = %d, want 24", extracted.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "loading start position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyCell, "square %s", "d4")

	if !errors.Is(wrapped, ErrEmptyCell) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "square d4") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
	if Wrapf(nil, "x %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
