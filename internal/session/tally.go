package session

// Tally keeps score across the attempts of one run.
type Tally struct {
	Attempts  int
	Solved    int
	Revealed  int
	Incorrect int

	TotalSolveSeconds int
	// BestSolveSeconds is the fastest solve, or -1 before the first.
	BestSolveSeconds int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{BestSolveSeconds: -1}
}

// Observe records the effect of one transition.
func (t *Tally) Observe(before, after State, outcome Outcome) {
	if after.Attempt != before.Attempt && after.Loaded() {
		t.Attempts++
	}
	if after.AnswerRevealed && !before.AnswerRevealed {
		t.Revealed++
	}

	switch outcome {
	case OutcomeIncorrect:
		t.Incorrect++
	case OutcomeSolved:
		t.Solved++
		if after.SolveSeconds != nil {
			secs := *after.SolveSeconds
			t.TotalSolveSeconds += secs
			if t.BestSolveSeconds < 0 || secs < t.BestSolveSeconds {
				t.BestSolveSeconds = secs
			}
		}
	}
}

// AverageSolveSeconds returns the mean solve time, or 0 with no solves.
func (t *Tally) AverageSolveSeconds() float64 {
	if t.Solved == 0 {
		return 0
	}
	return float64(t.TotalSolveSeconds) / float64(t.Solved)
}
