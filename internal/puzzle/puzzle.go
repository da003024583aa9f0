// Package puzzle supplies mate puzzles: the Puzzle value, a CSV source, a
// SQLite store, random selection and a bulk integrity check.
package puzzle

import (
	"context"
	"fmt"
	"strings"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// Puzzle is an immutable mate puzzle. Solution holds the plies in order,
// alternating sides and starting with the solver.
type Puzzle struct {
	ID       string
	Position string
	Solution []string
}

// Parse builds a puzzle from a position and a space separated solution.
func Parse(id, position, solution string) (Puzzle, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return Puzzle{}, fmt.Errorf("puzzle %s: empty position: %w", id, errors.ErrParseFailure)
	}
	plies := strings.Fields(solution)
	if len(plies) == 0 {
		return Puzzle{}, fmt.Errorf("puzzle %s: empty solution: %w", id, errors.ErrParseFailure)
	}
	return Puzzle{ID: id, Position: position, Solution: plies}, nil
}

// Answer returns the full solution as display text.
func (p Puzzle) Answer() string {
	return strings.Join(p.Solution, " ")
}

// MateIn returns the number of solver moves in the solution.
func (p Puzzle) MateIn() int {
	return (len(p.Solution) + 1) / 2
}

// FilterMateIn returns the puzzles needing n solver moves. n <= 0 returns
// puzzles unchanged.
func FilterMateIn(puzzles []Puzzle, n int) []Puzzle {
	if n <= 0 {
		return puzzles
	}
	var kept []Puzzle
	for _, p := range puzzles {
		if p.MateIn() == n {
			kept = append(kept, p)
		}
	}
	return kept
}

// Source supplies an ordered list of puzzles.
type Source interface {
	Puzzles(ctx context.Context) ([]Puzzle, error)
}
