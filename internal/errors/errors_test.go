package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Distinct verifies that no two sentinels match each other,
// so an integrity failure can never be mistaken for another condition.
func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidFEN,
		ErrIllegalMove,
		ErrUnknownMove,
		ErrDataIntegrity,
		ErrNoPuzzle,
		ErrNotAccepting,
		ErrParseFailure,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestPuzzleError_Error verifies the error message format
func TestPuzzleError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PuzzleError
		contains []string
		excludes []string
	}{
		{
			name: "full context",
			err: &PuzzleError{
				Err:      ErrDataIntegrity,
				PuzzleID: "12",
				PlyIndex: 1,
				MoveText: "g7g6",
				File:     "puzzles.csv",
				Line:     13,
			},
			contains: []string{"puzzles.csv:13", "puzzle 12", "ply 1", "g7g6", "integrity"},
		},
		{
			name: "no ply",
			err: &PuzzleError{
				Err:      ErrParseFailure,
				PuzzleID: "3",
				PlyIndex: -1,
			},
			contains: []string{"puzzle 3", "parse failure"},
			excludes: []string{"ply"},
		},
		{
			name:     "bare error",
			err:      &PuzzleError{Err: ErrNoPuzzle, PlyIndex: -1},
			contains: []string{"no puzzle available"},
			excludes: []string{":"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PuzzleError.Error() = %q, should contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if containsIgnoreCase(msg, s) {
					t.Errorf("PuzzleError.Error() = %q, should not contain %q", msg, s)
				}
			}
		})
	}
}

// TestPuzzleError_Unwrap verifies that PuzzleError properly implements Unwrap
func TestPuzzleError_Unwrap(t *testing.T) {
	puzzleErr := &PuzzleError{
		Err:      ErrDataIntegrity,
		PuzzleID: "7",
		PlyIndex: 1,
	}

	if !errors.Is(errors.Unwrap(puzzleErr), ErrDataIntegrity) {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(puzzleErr), ErrDataIntegrity)
	}
	if !Is(puzzleErr, ErrDataIntegrity) {
		t.Error("Is(puzzleErr, ErrDataIntegrity) = false, want true")
	}
}

// TestPuzzleError_As verifies that errors.As works with PuzzleError
func TestPuzzleError_As(t *testing.T) {
	puzzleErr := &PuzzleError{
		Err:      ErrIllegalMove,
		PuzzleID: "3",
		PlyIndex: 0,
		MoveText: "O-O-O",
	}

	wrapped := fmt.Errorf("submit failed: %w", puzzleErr)

	var extractedErr *PuzzleError
	if !As(wrapped, &extractedErr) {
		t.Fatal("As() could not extract PuzzleError")
	}

	if extractedErr.PuzzleID != "3" {
		t.Errorf("extractedErr.PuzzleID = %q, want 3", extractedErr.PuzzleID)
	}
	if extractedErr.MoveText != "O-O-O" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "O-O-O")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading puzzle")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading puzzle") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of puzzle %s", 1, "42")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 1 of puzzle 42") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
