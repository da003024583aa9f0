package session

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
	"github.com/lgbarn/mate-puzzle-go/internal/fen"
	"github.com/lgbarn/mate-puzzle-go/internal/notation"
	"github.com/lgbarn/mate-puzzle-go/internal/puzzle"
)

// Load starts a new attempt at p. When the rules engine rejects the
// position, or p has no solution, the returned state is Idle and the error
// wraps ErrNoPuzzle.
func Load(p puzzle.Puzzle, rules Rules, attempt uuid.UUID) (State, error) {
	idle := State{Attempt: attempt}

	if len(p.Solution) == 0 {
		return idle, &errors.PuzzleError{Err: errors.ErrNoPuzzle, PuzzleID: p.ID, PlyIndex: -1}
	}
	if err := rules.Validate(p.Position); err != nil {
		return idle, &errors.PuzzleError{
			Err:      fmt.Errorf("%w: %w", errors.ErrNoPuzzle, err),
			PuzzleID: p.ID,
			PlyIndex: -1,
		}
	}

	p.Solution = slices.Clone(p.Solution)
	return State{
		Attempt:  attempt,
		Puzzle:   &p,
		Position: p.Position,
		Board:    fen.Decode(p.Position),
		Status:   AwaitingInput,
	}, nil
}

// Submit checks token against the expected ply.
//
// A blank token, or one made only of check and mate marks, is ignored. A
// mismatch marks the state Incorrect and
// changes nothing else. A match plays the stored ply and, when the
// solution continues, the scripted reply after it. If the rules engine
// rejects a stored ply the input state is returned unchanged with an error
// wrapping ErrDataIntegrity.
func Submit(s State, token string, rules Rules) (State, Outcome, error) {
	if notation.Normalize(token) == "" {
		return s, OutcomeIgnored, nil
	}
	if s.Puzzle == nil {
		return s, OutcomeIgnored, errors.ErrNoPuzzle
	}
	if !s.Accepting() {
		return s, OutcomeIgnored, fmt.Errorf("status %s: %w", s.Status, errors.ErrNotAccepting)
	}

	next := s
	next.Pending = nil

	if !notation.Equal(token, s.Expected()) {
		next.Status = Incorrect
		return next, OutcomeIncorrect, nil
	}

	next, err := playPly(next, rules)
	if err != nil {
		return s, OutcomeIgnored, err
	}
	if next.PlyIndex == len(next.Puzzle.Solution) {
		return solve(next), OutcomeSolved, nil
	}

	// The solver never enters the opponent's reply.
	next, err = playPly(next, rules)
	if err != nil {
		return s, OutcomeIgnored, err
	}
	if next.PlyIndex == len(next.Puzzle.Solution) {
		return solve(next), OutcomeSolved, nil
	}
	next.Status = AwaitingInput
	return next, OutcomeCorrect, nil
}

// playPly applies the expected stored ply. The rules engine always gets the
// stored text, never the user's spelling of it.
func playPly(s State, rules Rules) (State, error) {
	ply := s.Puzzle.Solution[s.PlyIndex]
	position, err := rules.ApplyMove(s.Position, ply)
	if err != nil {
		return s, &errors.PuzzleError{
			Err:      fmt.Errorf("%w: %w", errors.ErrDataIntegrity, err),
			PuzzleID: s.Puzzle.ID,
			PlyIndex: s.PlyIndex,
			MoveText: ply,
		}
	}
	s.Position = position
	s.Board = fen.Decode(position)
	s.PlyIndex++
	return s, nil
}

func solve(s State) State {
	elapsed := s.ElapsedSeconds
	s.Status = Solved
	s.SolveSeconds = &elapsed
	return s
}

// Select records one click of a two-click move. The first valid square is
// held as pending. A later click on a piece of the side to move replaces
// it; any other click completes a coordinate token that is submitted, and
// the pending square is then cleared whatever the result. Unreadable
// squares are ignored.
func Select(s State, square string, rules Rules) (State, Outcome, error) {
	sq, err := notation.ParseSquare(square)
	if err != nil {
		return s, OutcomeIgnored, nil
	}
	if s.Puzzle == nil {
		return s, OutcomeIgnored, errors.ErrNoPuzzle
	}
	if !s.Accepting() {
		return s, OutcomeIgnored, fmt.Errorf("status %s: %w", s.Status, errors.ErrNotAccepting)
	}

	// Clicking another piece of the side to move picks a new first square.
	if s.Pending == nil || s.Board.Owns(sq) {
		next := s
		next.Pending = &sq
		return next, OutcomePending, nil
	}

	next, outcome, err := Submit(s, notation.Pair(*s.Pending, sq), rules)
	next.Pending = nil
	return next, outcome, err
}

// Reveal marks the answer as shown and clears any Incorrect marker. The
// ply index, board and timer are untouched.
func Reveal(s State) (State, error) {
	if s.Puzzle == nil {
		return s, errors.ErrNoPuzzle
	}
	if s.Status == Solved {
		return s, fmt.Errorf("status %s: %w", s.Status, errors.ErrNotAccepting)
	}
	next := s
	next.AnswerRevealed = true
	next.Status = AwaitingInput
	return next, nil
}

// Tick advances the elapsed time by one second while an unsolved puzzle is
// loaded.
func Tick(s State) State {
	if s.Puzzle == nil || s.Status == Idle || s.Status == Solved {
		return s
	}
	s.ElapsedSeconds++
	return s
}
