// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/mate-puzzle-go/internal/config"
)

var (
	// Puzzle source
	puzzleFile = flag.String("f", "", "Puzzle CSV file (fen,moves)")
	database   = flag.String("db", "", "SQLite puzzle database (used instead of -f)")
	importFile = flag.String("import", "", "Import this CSV into -db and exit")
	seed       = flag.Uint64("seed", 0, "Puzzle picker seed (0 = time based)")
	mateIn     = flag.Int("matein", 0, "Only play or check mate-in-N puzzles (0 = all)")

	// Play
	rulesName = flag.String("rules", "", "Rules engine: native or strict")
	tick      = flag.Duration("tick", 0, "Clock tick interval")

	// Integrity check
	checkOnly = flag.Bool("check", false, "Replay every stored solution and exit")
	workers   = flag.Int("workers", 0, "Integrity check workers")

	// Output and logging
	jsonOutput = flag.Bool("J", false, "Write one JSON object per snapshot")
	logLevel   = flag.String("loglevel", "", "Log level: trace, debug, info, warn, error")
	logFile    = flag.String("L", "", "Write the log to this file (default: stderr)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags overlays the flags named in set onto cfg. Flags that were not
// given leave the environment or default value alone.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applySourceFlags(cfg, set)
	applyPlayFlags(cfg, set)
	applyOutputFlags(cfg, set)

	cfg.Check.Run = *checkOnly
	if set["workers"] {
		cfg.Check.Workers = *workers
	}
}

// applySourceFlags configures where puzzles come from.
func applySourceFlags(cfg *config.Config, set map[string]bool) {
	if set["f"] {
		cfg.Source.PuzzleFile = *puzzleFile
	}
	if set["db"] {
		cfg.Source.Database = *database
	}
	if set["seed"] {
		cfg.Source.Seed = *seed
	}
	if set["matein"] {
		cfg.Source.MateIn = *mateIn
	}
	cfg.Source.ImportFile = *importFile
}

// applyPlayFlags configures the session rules and clock.
func applyPlayFlags(cfg *config.Config, set map[string]bool) {
	if set["rules"] {
		cfg.Play.Rules = *rulesName
	}
	if set["tick"] {
		cfg.Play.Tick = *tick
	}
}

// applyOutputFlags configures rendering and logging.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["J"] {
		cfg.Output.JSON = *jsonOutput
	}
	if set["loglevel"] {
		cfg.Log.Level = *logLevel
	}
	if set["L"] {
		cfg.Log.File = *logFile
	}
}

// usageHeader opens the help text. Moves must match the stored solution
// text, so the examples show the forms puzzle files use.
const usageHeader = `mate-puzzle - checkmate puzzle trainer

Usage: mate-puzzle [options]

Type a move (Qe8#, h8e8), "click <square>" to pick squares,
"answer" to reveal, "next" for another puzzle, "quit" to leave.

Options:
`

func usage() {
	fmt.Fprint(os.Stderr, usageHeader)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Every option except -import, -check, -h and -version can also be set with
MATE_PUZZLES, MATE_DB, MATE_SEED, MATE_MATE_IN, MATE_RULES, MATE_TICK, MATE_WORKERS,
MATE_JSON, MATE_LOG_LEVEL and MATE_LOG_FILE. Flags win.
`)
}
