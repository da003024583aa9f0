// mate-puzzle is a terminal trainer for mate-in-one and mate-in-two chess
// puzzles.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/mate-puzzle-go/internal/clock"
	"github.com/lgbarn/mate-puzzle-go/internal/config"
	"github.com/lgbarn/mate-puzzle-go/internal/output"
	"github.com/lgbarn/mate-puzzle-go/internal/play"
	"github.com/lgbarn/mate-puzzle-go/internal/puzzle"
	"github.com/lgbarn/mate-puzzle-go/internal/rules"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("mate-puzzle version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, setFlags())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.Log.File, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, logger, os.Stdin, os.Stdout)
	stop()
	closeLog()
	os.Exit(code)
}

// setupLogger builds the zerolog logger for cfg. The returned func closes
// the log file, if one was opened.
func setupLogger(cfg config.LogConfig) (zerolog.Logger, func(), error) {
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeFn := func() {}
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return zerolog.Nop(), closeFn, err
		}
		w = file
		closeFn = func() { _ = file.Close() }
	}
	logger := zerolog.New(w).Level(cfg.ZerologLevel()).With().Timestamp().Logger()
	return logger, closeFn, nil
}

// run executes the mode selected by cfg and returns the exit code.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, in io.Reader, out io.Writer) int {
	engine, err := rules.ByName(cfg.Play.Rules)
	if err != nil {
		log.Error().Err(err).Msg("rules")
		return 1
	}

	switch {
	case cfg.Source.ImportFile != "":
		err = importPuzzles(ctx, cfg, log, out)
	default:
		var puzzles []puzzle.Puzzle
		puzzles, err = loadPuzzles(ctx, cfg)
		if err != nil {
			break
		}
		if cfg.Check.Run {
			return checkPuzzles(ctx, cfg, log, engine, puzzles, out)
		}
		err = playPuzzles(ctx, cfg, log, engine, puzzles, in, out)
	}

	if err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("mate-puzzle")
		return 1
	}
	return 0
}

// loadPuzzles reads the puzzles from the database when one is configured,
// otherwise from the CSV file. A positive MateIn keeps only puzzles of that
// length.
func loadPuzzles(ctx context.Context, cfg *config.Config) ([]puzzle.Puzzle, error) {
	n := cfg.Source.MateIn
	if cfg.Source.Database == "" {
		puzzles, err := puzzle.CSVSource{Path: cfg.Source.PuzzleFile}.Puzzles(ctx)
		if err != nil {
			return nil, err
		}
		return puzzle.FilterMateIn(puzzles, n), nil
	}
	store, err := puzzle.Open(ctx, cfg.Source.Database)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	if n > 0 {
		return store.PuzzlesMateIn(ctx, n)
	}
	return store.Puzzles(ctx)
}

// importPuzzles loads the import CSV into the database.
func importPuzzles(ctx context.Context, cfg *config.Config, log zerolog.Logger, out io.Writer) error {
	puzzles, err := puzzle.CSVSource{Path: cfg.Source.ImportFile}.Puzzles(ctx)
	if err != nil {
		return err
	}

	store, err := puzzle.Open(ctx, cfg.Source.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	added, err := store.Import(ctx, puzzles, cfg.Source.ImportFile)
	if err != nil {
		return err
	}
	total, err := store.Count(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Str("file", cfg.Source.ImportFile).
		Int("read", len(puzzles)).
		Int("added", added).
		Int("total", total).
		Msg("import complete")
	fmt.Fprintf(out, "Imported %d of %d puzzles (%d in %s)\n", added, len(puzzles), total, cfg.Source.Database)
	return nil
}

// checkPuzzles replays every solution and reports the broken ones along
// with repeated positions. It returns 2 when any puzzle fails.
func checkPuzzles(ctx context.Context, cfg *config.Config, log zerolog.Logger, engine rules.Engine,
	puzzles []puzzle.Puzzle, out io.Writer) int {
	report, err := puzzle.Check(ctx, puzzles, engine, cfg.Check.Workers)
	if err != nil {
		log.Error().Err(err).Msg("integrity check")
		return 1
	}

	for _, f := range report.Failures {
		fmt.Fprintf(out, "FAIL %v\n", f.Err)
	}
	for _, d := range report.Duplicates {
		fmt.Fprintf(out, "DUP puzzle %s repeats the position of puzzle %s\n", d.Puzzle.ID, d.FirstID)
	}
	fmt.Fprintf(out, "Checked %d puzzles, %d failed\n", report.Checked, len(report.Failures))
	log.Info().
		Int("checked", report.Checked).
		Int("failed", len(report.Failures)).
		Int("duplicates", len(report.Duplicates)).
		Int("workers", cfg.Check.Workers).
		Msg("integrity check complete")

	if len(report.Failures) > 0 {
		return 2
	}
	return 0
}

// playPuzzles runs the interactive loop over puzzles until input ends.
func playPuzzles(ctx context.Context, cfg *config.Config, log zerolog.Logger, engine rules.Engine,
	puzzles []puzzle.Puzzle, in io.Reader, out io.Writer) error {
	picker, err := puzzle.NewPicker(puzzles, cfg.Source.Seed)
	if err != nil {
		return err
	}
	log.Info().Int("puzzles", picker.Len()).Int("mate_in", cfg.Source.MateIn).Msg("puzzles loaded")

	// The celebrator writes from its own goroutine; both share one lock.
	shared := &lockedWriter{w: out}
	writer := output.NewWriter(shared, cfg.Output.JSON)
	celebrator := play.Bell(shared)
	if cfg.Output.JSON {
		celebrator = nil
	}
	driver, err := play.NewDriver(play.Config{
		Rules:      engine,
		Picker:     picker,
		Output:     writer,
		Clock:      clock.Real,
		Interval:   cfg.Play.Tick,
		Celebrator: celebrator,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan play.Event)
	go func() {
		if err := readEvents(ctx, in, events); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("read input")
		}
	}()

	err = driver.Run(ctx, events)
	tally := driver.Tally()
	log.Info().
		Int("attempts", tally.Attempts).
		Int("solved", tally.Solved).
		Int("revealed", tally.Revealed).
		Int("incorrect", tally.Incorrect).
		Int("best_seconds", tally.BestSolveSeconds).
		Float64("average_seconds", tally.AverageSolveSeconds()).
		Msg("session summary")

	if flushErr := writer.Flush(); err == nil {
		err = flushErr
	}
	return err
}

// lockedWriter serializes writes from the driver loop and the celebrator.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
