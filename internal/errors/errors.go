// Package errors provides sentinel errors and error types for mate-puzzle.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnknownMove indicates move text that could not be decoded.
	ErrUnknownMove = errors.New("unrecognised move text")

	// ErrDataIntegrity indicates stored puzzle data that the rules engine
	// rejected. It is never a user mistake.
	ErrDataIntegrity = errors.New("puzzle data integrity failure")

	// ErrNoPuzzle indicates no puzzle could be supplied or loaded.
	ErrNoPuzzle = errors.New("no puzzle available")

	// ErrNotAccepting indicates an input arrived while the session was not
	// waiting for one.
	ErrNotAccepting = errors.New("session is not accepting input")

	// ErrParseFailure indicates a puzzle source row could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PuzzleError wraps errors with puzzle context, including the puzzle id,
// the solution ply and the move text involved. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type PuzzleError struct {
	Err      error  // The underlying error
	PuzzleID string // Puzzle identifier (if known)
	PlyIndex int    // 0-based solution ply (-1 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *PuzzleError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	if e.PuzzleID != "" {
		parts = append(parts, fmt.Sprintf("puzzle %s", e.PuzzleID))
	}

	if e.PlyIndex >= 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyIndex))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PuzzleError wrapper.
func (e *PuzzleError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
