package puzzle

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/lgbarn/mate-puzzle-go/internal/errors"
	"github.com/lgbarn/mate-puzzle-go/internal/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		position string
		solution string
		want     Puzzle
		wantErr  bool
	}{
		{
			name:     "mate in one",
			position: testutil.MateInOneFEN,
			solution: "h8e8",
			want:     Puzzle{ID: "1", Position: testutil.MateInOneFEN, Solution: []string{"h8e8"}},
		},
		{
			name:     "mate in two with extra spaces",
			position: "  " + testutil.KingsPawnFEN + " ",
			solution: " Qd1h5  g7g6 h5e5 ",
			want:     Puzzle{ID: "1", Position: testutil.KingsPawnFEN, Solution: testutil.MateInTwoPlies},
		},
		{name: "no position", position: " ", solution: "h8e8", wantErr: true},
		{name: "no solution", position: testutil.MateInOneFEN, solution: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse("1", tt.position, tt.solution)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, apperrors.ErrParseFailure)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPuzzle_AnswerAndMateIn(t *testing.T) {
	one := Puzzle{Solution: []string{"h8e8"}}
	two := Puzzle{Solution: testutil.MateInTwoPlies}

	testutil.AssertEqual(t, one.Answer(), "h8e8")
	testutil.AssertEqual(t, two.Answer(), "Qd1h5 g7g6 h5e5")
	testutil.AssertEqual(t, one.MateIn(), 1)
	testutil.AssertEqual(t, two.MateIn(), 2)
}

func TestFilterMateIn(t *testing.T) {
	one := Puzzle{ID: "1", Solution: []string{"h8e8"}}
	two := Puzzle{ID: "2", Solution: testutil.MateInTwoPlies}
	all := []Puzzle{one, two, one}

	tests := []struct {
		name string
		n    int
		want []Puzzle
	}{
		{"zero keeps all", 0, all},
		{"mate in one", 1, []Puzzle{one, one}},
		{"mate in two", 2, []Puzzle{two}},
		{"none match", 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, FilterMateIn(all, tt.n), tt.want)
		})
	}
}

func TestReadCSV(t *testing.T) {
	input := "fen,moves\n" +
		testutil.MateInOneFEN + ",h8e8\n" +
		"\n" +
		testutil.KingsPawnFEN + ", Qd1h5 g7g6 h5e5\n"

	got, err := ReadCSV(context.Background(), strings.NewReader(input), "inline")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []Puzzle{
		{ID: "2", Position: testutil.MateInOneFEN, Solution: []string{"h8e8"}},
		{ID: "4", Position: testutil.KingsPawnFEN, Solution: testutil.MateInTwoPlies},
	})
}

func TestReadCSV_HeaderOptional(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"no header", testutil.MateInOneFEN + ",h8e8\n", 1},
		{"upper-case header", "FEN,Best\n" + testutil.MateInOneFEN + ",h8e8\n", 1},
		{"header only", "fen,moves\n", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(context.Background(), strings.NewReader(tt.input), "inline")
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(got), tt.want)
		})
	}
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"missing moves column", "fen,moves\n" + testutil.MateInOneFEN + "\n", 2},
		{"empty moves", "fen,moves\n" + testutil.MateInOneFEN + ",\n", 2},
		{"bad quoting", "fen,moves\n\"unterminated,h8e8\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(context.Background(), strings.NewReader(tt.input), "bad.csv")
			testutil.AssertErrorIs(t, err, apperrors.ErrParseFailure)

			var perr *apperrors.PuzzleError
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not a *PuzzleError", err)
			}
			testutil.AssertEqual(t, perr.File, "bad.csv")
			testutil.AssertEqual(t, perr.Line, tt.wantLine)
		})
	}
}

func TestReadCSV_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadCSV(ctx, strings.NewReader(testutil.PuzzleCSV([2]string{testutil.MateInOneFEN, "h8e8"})), "x")
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestCSVSource(t *testing.T) {
	path := testutil.WriteFile(t, "puzzles.csv", testutil.PuzzleCSV(
		[2]string{testutil.MateInOneFEN, testutil.MateInOneMove},
		[2]string{testutil.KingsPawnFEN, strings.Join(testutil.MateInTwoPlies, " ")},
	))

	var src Source = CSVSource{Path: path}
	got, err := src.Puzzles(context.Background())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(got), 2)
	testutil.AssertEqual(t, got[1].Solution, testutil.MateInTwoPlies)

	_, err = CSVSource{Path: path + ".missing"}.Puzzles(context.Background())
	testutil.AssertErrorIs(t, err, apperrors.ErrNoPuzzle)
}
