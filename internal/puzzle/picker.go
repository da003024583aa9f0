package puzzle

import (
	"math/rand/v2"
	"time"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// Picker chooses puzzles at random, never the same one twice in a row
// when there is more than one to choose from.
type Picker struct {
	puzzles []Puzzle
	rng     *rand.Rand
	last    int
}

// NewPicker creates a picker over puzzles. A zero seed is replaced by the
// current time.
func NewPicker(puzzles []Puzzle, seed uint64) (*Picker, error) {
	if len(puzzles) == 0 {
		return nil, errors.ErrNoPuzzle
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Picker{
		puzzles: puzzles,
		rng:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		last:    -1,
	}, nil
}

// Next returns the next puzzle.
func (p *Picker) Next() Puzzle {
	n := len(p.puzzles)
	var idx int
	if p.last < 0 || n == 1 {
		idx = p.rng.IntN(n)
	} else {
		idx = p.rng.IntN(n - 1)
		if idx >= p.last {
			idx++
		}
	}
	p.last = idx
	return p.puzzles[idx]
}

// Len returns the number of puzzles available.
func (p *Picker) Len() int {
	return len(p.puzzles)
}
