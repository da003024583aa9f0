package output

import (
	"github.com/lgbarn/mate-puzzle-go/internal/session"
)

// JSONSnapshot is the machine-readable form of a Snapshot.
type JSONSnapshot struct {
	Attempt      string     `json:"attempt"`
	PuzzleID     string     `json:"puzzleId,omitempty"`
	MateIn       int        `json:"mateIn,omitempty"`
	Position     string     `json:"position,omitempty"`
	SideToMove   string     `json:"sideToMove,omitempty"`
	Board        []string   `json:"board,omitempty"`
	PlyIndex     int        `json:"plyIndex"`
	Status       string     `json:"status"`
	Outcome      string     `json:"outcome"`
	Pending      string     `json:"pending,omitempty"`
	Elapsed      int        `json:"elapsedSeconds"`
	SolveSeconds *int       `json:"solveSeconds,omitempty"`
	Answer       string     `json:"answer,omitempty"`
	Banner       string     `json:"banner,omitempty"`
	Error        string     `json:"error,omitempty"`
	Tally        *JSONTally `json:"tally,omitempty"`
	Tick         bool       `json:"tick,omitempty"`
}

// JSONTally is the machine-readable form of a session.Tally.
type JSONTally struct {
	Attempts  int     `json:"attempts"`
	Solved    int     `json:"solved"`
	Revealed  int     `json:"revealed"`
	Incorrect int     `json:"incorrect"`
	Best      int     `json:"bestSolveSeconds"`
	Average   float64 `json:"averageSolveSeconds"`
}

// SnapshotToJSON converts a snapshot. The answer is only included once it
// may be shown.
func SnapshotToJSON(snap Snapshot) *JSONSnapshot {
	st := snap.State
	js := &JSONSnapshot{
		Attempt:  st.Attempt.String(),
		PlyIndex: st.PlyIndex,
		Status:   st.Status.String(),
		Outcome:  snap.Outcome.String(),
		Elapsed:  st.ElapsedSeconds,
		Banner:   Banner(snap),
		Tick:     snap.Tick,
	}
	if st.Loaded() {
		js.PuzzleID = st.Puzzle.ID
		js.MateIn = st.Puzzle.MateIn()
		js.Position = st.Position
		js.SideToMove = st.Board.SideToMove.String()
		js.Board = boardRows(st)
	}
	if st.Pending != nil {
		js.Pending = st.Pending.String()
	}
	if st.SolveSeconds != nil {
		secs := *st.SolveSeconds
		js.SolveSeconds = &secs
	}
	if st.ShowAnswer() {
		js.Answer = st.Answer()
	}
	if snap.Err != nil {
		js.Error = snap.Err.Error()
	}
	if snap.Tally != nil {
		js.Tally = tallyToJSON(snap.Tally)
	}
	return js
}

func boardRows(st session.State) []string {
	rows := make([]string, 0, len(st.Board.Grid))
	for _, row := range st.Board.Grid {
		var line []rune
		for _, r := range row {
			if r == 0 {
				r = '.'
			}
			line = append(line, r)
		}
		rows = append(rows, string(line))
	}
	return rows
}

func tallyToJSON(t *session.Tally) *JSONTally {
	return &JSONTally{
		Attempts:  t.Attempts,
		Solved:    t.Solved,
		Revealed:  t.Revealed,
		Incorrect: t.Incorrect,
		Best:      t.BestSolveSeconds,
		Average:   t.AverageSolveSeconds(),
	}
}
