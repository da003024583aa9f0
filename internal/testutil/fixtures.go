package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Known positions used across package tests.
const (
	// MateInOneFEN is solved by MateInOneMove.
	MateInOneFEN  = "7Q/3Bk3/2P1p3/4P2P/7b/5K2/B7/1b6 w - - 3 78"
	MateInOneMove = "h8e8"

	// KingsPawnFEN is the position after 1.e4 e5; MateInTwoPlies is a
	// scripted line from it.
	KingsPawnFEN = "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"
)

// MateInTwoPlies is a solver move, a scripted reply and a final solver move.
var MateInTwoPlies = []string{"Qd1h5", "g7g6", "h5e5"}

// PuzzleCSV renders rows as a puzzle CSV with a header row.
func PuzzleCSV(rows ...[2]string) string {
	var sb strings.Builder
	sb.WriteString("fen,moves\n")
	for _, row := range rows {
		sb.WriteString(row[0])
		sb.WriteByte(',')
		sb.WriteString(row[1])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteFile writes content to name inside a per-test temporary directory
// and returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
