package puzzle

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
	"github.com/lgbarn/mate-puzzle-go/internal/hashing"
	"github.com/lgbarn/mate-puzzle-go/internal/worker"
)

// Replayer applies moves to positions.
type Replayer interface {
	ApplyMove(position, token string) (string, error)
	Validate(position string) error
}

// Failure is a puzzle whose stored data the rules engine rejected.
type Failure struct {
	Index  int // Position in the checked list
	Puzzle Puzzle
	Err    error
}

// Duplicate is a puzzle whose position already appeared earlier in the
// list.
type Duplicate struct {
	Index   int
	Puzzle  Puzzle
	FirstID string
}

// Report summarises an integrity check.
type Report struct {
	Checked    int
	Failures   []Failure
	Duplicates []Duplicate
}

// Check replays every solution through rules using a worker pool and
// reports the puzzles whose position or plies are rejected. It does not
// check that the final position is mate.
func Check(ctx context.Context, puzzles []Puzzle, rules Replayer, workers int) (Report, error) {
	pool := worker.NewPool(replayFunc(rules),
		worker.WithWorkers(workers),
		worker.WithBufferSize(2*max(workers, 1)),
	)
	pool.Start()

	submitErr := make(chan error, 1)
	go func() {
		defer pool.Close()
		for i, p := range puzzles {
			item := worker.WorkItem{Index: i, ID: p.ID, Position: p.Position, Solution: p.Solution}
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				submitErr <- err
				return
			}
		}
		submitErr <- nil
	}()

	var report Report
	for result := range pool.Results() {
		report.Checked++
		if result.Error != nil {
			report.Failures = append(report.Failures, Failure{
				Index:  result.Index,
				Puzzle: puzzles[result.Index],
				Err:    result.Error,
			})
		}
	}
	if err := <-submitErr; err != nil {
		return report, err
	}

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].Index < report.Failures[j].Index
	})

	detector := hashing.NewDuplicateDetector()
	for i, p := range puzzles {
		if first, dup := detector.CheckAndAdd(p.ID, p.Position); dup {
			report.Duplicates = append(report.Duplicates, Duplicate{Index: i, Puzzle: p, FirstID: first})
		}
	}
	return report, nil
}

func replayFunc(rules Replayer) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index, ID: item.ID, Final: item.Position}
		if err := rules.Validate(item.Position); err != nil {
			result.Error = &errors.PuzzleError{
				Err:      fmt.Errorf("%w: %w", errors.ErrDataIntegrity, err),
				PuzzleID: item.ID,
				PlyIndex: -1,
			}
			return result
		}
		for i, ply := range item.Solution {
			next, err := rules.ApplyMove(result.Final, ply)
			if err != nil {
				result.Error = &errors.PuzzleError{
					Err:      fmt.Errorf("%w: %w", errors.ErrDataIntegrity, err),
					PuzzleID: item.ID,
					PlyIndex: i,
					MoveText: ply,
				}
				return result
			}
			result.Final = next
			result.Applied++
		}
		return result
	}
}
