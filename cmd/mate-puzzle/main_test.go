package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/mate-puzzle-go/internal/config"
	"github.com/lgbarn/mate-puzzle-go/internal/output"
	"github.com/lgbarn/mate-puzzle-go/internal/testutil"
)

var (
	mateInOneRow = [2]string{testutil.MateInOneFEN, testutil.MateInOneMove}
	mateInTwoRow = [2]string{testutil.KingsPawnFEN, strings.Join(testutil.MateInTwoPlies, " ")}
	brokenRow    = [2]string{testutil.KingsPawnFEN, "Qd1h5 a1a1 h5e5"}
)

func TestRun_Import(t *testing.T) {
	csvPath := testutil.WriteFile(t, "puzzles.csv", testutil.PuzzleCSV(mateInOneRow, mateInTwoRow, mateInOneRow))
	dbPath := filepath.Join(t.TempDir(), "puzzles.db")

	cfg := config.NewConfigBuilder().WithDatabase(dbPath).Build()
	cfg.Source.ImportFile = csvPath
	testutil.AssertNoError(t, cfg.Validate())

	var out bytes.Buffer
	code := run(context.Background(), cfg, zerolog.Nop(), strings.NewReader(""), &out)
	testutil.AssertEqual(t, code, 0)
	testutil.AssertContains(t, out.String(), "Imported 2 of 3 puzzles (2 in ")

	// A second import adds nothing.
	out.Reset()
	code = run(context.Background(), cfg, zerolog.Nop(), strings.NewReader(""), &out)
	testutil.AssertEqual(t, code, 0)
	testutil.AssertContains(t, out.String(), "Imported 0 of 3 puzzles (2 in ")
}

func TestRun_Check(t *testing.T) {
	tests := []struct {
		name     string
		rules    string
		rows     [][2]string
		wantCode int
		wantOut  string
	}{
		{"all good", "native", [][2]string{mateInOneRow, mateInTwoRow}, 0, "Checked 2 puzzles, 0 failed"},
		{"strict engine", "strict", [][2]string{mateInOneRow, mateInTwoRow}, 0, "Checked 2 puzzles, 0 failed"},
		{"broken reply", "native", [][2]string{mateInOneRow, brokenRow}, 2, "Checked 2 puzzles, 1 failed"},
		{"repeated position", "native", [][2]string{mateInTwoRow, mateInOneRow, brokenRow}, 2, "DUP puzzle 4 repeats the position of puzzle 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, "puzzles.csv", testutil.PuzzleCSV(tt.rows...))
			cfg := config.NewConfigBuilder().WithPuzzleFile(path).WithRules(tt.rules).WithWorkers(2).Build()
			cfg.Check.Run = true

			var out bytes.Buffer
			code := run(context.Background(), cfg, zerolog.Nop(), strings.NewReader(""), &out)
			testutil.AssertEqual(t, code, tt.wantCode)
			testutil.AssertContains(t, out.String(), tt.wantOut)
		})
	}
}

func TestRun_PlayJSON(t *testing.T) {
	path := testutil.WriteFile(t, "puzzles.csv", testutil.PuzzleCSV(mateInOneRow))
	cfg := config.NewConfigBuilder().
		WithPuzzleFile(path).
		WithJSON(true).
		WithSeed(1).
		WithTick(time.Hour).
		Build()

	var out bytes.Buffer
	in := strings.NewReader("d8\nanswer\nh8e8#\nquit\n")
	code := run(context.Background(), cfg, zerolog.Nop(), in, &out)
	testutil.AssertEqual(t, code, 0)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, len(lines), 4)

	var snaps []output.JSONSnapshot
	for _, line := range lines {
		var snap output.JSONSnapshot
		testutil.AssertNoError(t, json.Unmarshal([]byte(line), &snap), line)
		snaps = append(snaps, snap)
	}

	testutil.AssertEqual(t, snaps[0].Status, "awaiting-input")
	testutil.AssertEqual(t, snaps[0].Answer, "")
	testutil.AssertEqual(t, snaps[1].Outcome, "incorrect")
	testutil.AssertEqual(t, snaps[1].Banner, output.IncorrectBanner)
	testutil.AssertEqual(t, snaps[2].Answer, testutil.MateInOneMove)
	testutil.AssertEqual(t, snaps[3].Status, "solved")
	testutil.AssertEqual(t, snaps[3].Banner, output.CorrectBanner)
	testutil.AssertEqual(t, snaps[3].Tally.Solved, 1)
}

func TestRun_PlayTextCelebrates(t *testing.T) {
	path := testutil.WriteFile(t, "puzzles.csv", testutil.PuzzleCSV(mateInOneRow))

	for i := 0; i < 20; i++ {
		cfg := config.NewConfigBuilder().WithPuzzleFile(path).WithSeed(1).WithTick(time.Hour).Build()

		var out bytes.Buffer
		code := run(context.Background(), cfg, zerolog.Nop(), strings.NewReader("h8e8\nnext\n"), &out)
		testutil.AssertEqual(t, code, 0)
		testutil.AssertContains(t, out.String(), output.CorrectBanner)
		testutil.AssertContains(t, out.String(), "Solved in 00:00")
		testutil.AssertContains(t, out.String(), "*** Checkmate in 00:00 ***")
	}
}

func TestLockedWriter_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	w := &lockedWriter{w: &buf}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = w.Write([]byte("ab\n"))
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, strings.Count(buf.String(), "ab\n"), 400)
}

func TestRun_MissingPuzzleFile(t *testing.T) {
	cfg := config.NewConfigBuilder().WithPuzzleFile(filepath.Join(t.TempDir(), "missing.csv")).Build()

	var out bytes.Buffer
	code := run(context.Background(), cfg, zerolog.Nop(), strings.NewReader(""), &out)
	testutil.AssertEqual(t, code, 1)
}

func TestRun_PlayFromDatabase(t *testing.T) {
	csvPath := testutil.WriteFile(t, "puzzles.csv", testutil.PuzzleCSV(mateInOneRow))
	dbPath := filepath.Join(t.TempDir(), "puzzles.db")

	cfg := config.NewConfigBuilder().WithDatabase(dbPath).Build()
	cfg.Source.ImportFile = csvPath
	testutil.AssertEqual(t, run(context.Background(), cfg, zerolog.Nop(), strings.NewReader(""), &bytes.Buffer{}), 0)

	cfg.Source.ImportFile = ""
	cfg.Output.JSON = true
	cfg.Play.Tick = time.Hour

	var out bytes.Buffer
	code := run(context.Background(), cfg, zerolog.Nop(), strings.NewReader("h8e8\n"), &out)
	testutil.AssertEqual(t, code, 0)
	testutil.AssertContains(t, out.String(), `"status":"solved"`)
}

func TestRun_PlayMateIn(t *testing.T) {
	csvPath := testutil.WriteFile(t, "puzzles.csv", testutil.PuzzleCSV(mateInOneRow, mateInTwoRow))
	dbPath := filepath.Join(t.TempDir(), "puzzles.db")

	importCfg := config.NewConfigBuilder().WithDatabase(dbPath).Build()
	importCfg.Source.ImportFile = csvPath
	testutil.AssertEqual(t, run(context.Background(), importCfg, zerolog.Nop(), strings.NewReader(""), &bytes.Buffer{}), 0)

	tests := []struct {
		name    string
		builder *config.ConfigBuilder
	}{
		{name: "csv", builder: config.NewConfigBuilder().WithPuzzleFile(csvPath)},
		{name: "database", builder: config.NewConfigBuilder().WithDatabase(dbPath)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range []int{1, 2} {
				cfg := tt.builder.WithMateIn(n).WithJSON(true).WithSeed(3).WithTick(time.Hour).Build()

				var out bytes.Buffer
				code := run(context.Background(), cfg, zerolog.Nop(), strings.NewReader("next\nnext\nquit\n"), &out)
				testutil.AssertEqual(t, code, 0)

				for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
					var snap output.JSONSnapshot
					testutil.AssertNoError(t, json.Unmarshal([]byte(line), &snap), line)
					testutil.AssertEqual(t, snap.MateIn, n, line)
				}
			}
		})
	}

	t.Run("no puzzle of that length", func(t *testing.T) {
		cfg := config.NewConfigBuilder().WithPuzzleFile(csvPath).WithMateIn(3).WithTick(time.Hour).Build()
		code := run(context.Background(), cfg, zerolog.Nop(), strings.NewReader(""), &bytes.Buffer{})
		testutil.AssertEqual(t, code, 1)
	})
}

func TestSetupLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mate.log")
	logger, closeLog, err := setupLogger(config.LogConfig{Level: "info", File: path})
	testutil.AssertNoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("puzzle", "7").Msg("puzzle loaded")
	closeLog()

	content := testutil.ReadFile(t, path)
	testutil.AssertContains(t, content, `"puzzle":"7"`)
	testutil.AssertNotContains(t, content, "hidden")
}
