// Package session implements the puzzle verification and progression state
// machine.
//
// Every operation is a pure transition from one State to the next. Session
// wraps those transitions and owns exactly one State, replacing it wholesale
// after each call. Nothing here logs or touches a clock; the caller drives
// ticks and reacts to outcomes.
package session

import (
	"github.com/google/uuid"

	"github.com/lgbarn/mate-puzzle-go/internal/fen"
	"github.com/lgbarn/mate-puzzle-go/internal/notation"
	"github.com/lgbarn/mate-puzzle-go/internal/puzzle"
)

// Status is the verification status of an attempt.
type Status int

const (
	Idle Status = iota
	AwaitingInput
	Correct
	Incorrect
	Solved
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingInput:
		return "awaiting-input"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Solved:
		return "solved"
	default:
		return "unknown"
	}
}

// Outcome describes what a single input did.
type Outcome int

const (
	// OutcomeIgnored means the input changed nothing.
	OutcomeIgnored Outcome = iota
	// OutcomePending means a first square was recorded.
	OutcomePending
	// OutcomeIncorrect means the move did not match the expected ply.
	OutcomeIncorrect
	// OutcomeCorrect means the move matched and the reply was played.
	OutcomeCorrect
	// OutcomeSolved means the final ply was matched.
	OutcomeSolved
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomePending:
		return "pending"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeCorrect:
		return "correct"
	case OutcomeSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// Rules applies moves to positions. Positions are FEN strings.
type Rules interface {
	// ApplyMove returns the position after token is played.
	ApplyMove(position, token string) (string, error)
	// Validate reports whether a position can be played from.
	Validate(position string) error
}

// State is a snapshot of one puzzle attempt. Values are never mutated in
// place; transitions return a new State.
type State struct {
	// Attempt identifies the attempt. Each load gets a new one.
	Attempt uuid.UUID

	// Puzzle is nil while Idle.
	Puzzle *puzzle.Puzzle

	// Position is the FEN of the board, as produced by the rules engine.
	Position string
	Board    fen.Board

	// PlyIndex is the next expected solution ply.
	PlyIndex int
	Status   Status

	ElapsedSeconds int
	// SolveSeconds is set once Status is Solved.
	SolveSeconds *int

	AnswerRevealed bool

	// Pending is the first square of a two-click move.
	Pending *notation.Square
}

// Loaded reports whether a puzzle is loaded.
func (s State) Loaded() bool {
	return s.Puzzle != nil
}

// Accepting reports whether a move may be submitted.
func (s State) Accepting() bool {
	return s.Puzzle != nil && (s.Status == AwaitingInput || s.Status == Incorrect)
}

// Answer returns the full solution text, or "" while Idle.
func (s State) Answer() string {
	if s.Puzzle == nil {
		return ""
	}
	return s.Puzzle.Answer()
}

// ShowAnswer reports whether the solution text should be displayed.
func (s State) ShowAnswer() bool {
	return s.AnswerRevealed || s.Status == Solved
}

// Expected returns the next expected ply, or "" when none remains.
func (s State) Expected() string {
	if s.Puzzle == nil || s.PlyIndex >= len(s.Puzzle.Solution) {
		return ""
	}
	return s.Puzzle.Solution[s.PlyIndex]
}
