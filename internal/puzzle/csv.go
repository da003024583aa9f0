package puzzle

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// CSVSource reads puzzles from a "fen,moves" CSV file, one puzzle per row.
// A first row whose first field is "fen" is a header and is skipped.
type CSVSource struct {
	Path string
}

// Puzzles reads every puzzle in the file.
func (s CSVSource) Puzzles(ctx context.Context) ([]Puzzle, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrNoPuzzle, err)
	}
	defer f.Close()
	return ReadCSV(ctx, f, s.Path)
}

// ReadCSV parses puzzles from r. The name is used in error messages. Row
// numbers, counted from 1 including any header, become puzzle IDs.
func ReadCSV(ctx context.Context, r io.Reader, name string) ([]Puzzle, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var puzzles []Puzzle
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.PuzzleError{
				Err:      fmt.Errorf("%w: %w", errors.ErrParseFailure, err),
				PlyIndex: -1,
				File:     name,
			}
		}
		line, _ := reader.FieldPos(0)

		if row == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "fen") {
			continue
		}
		if len(record) < 2 {
			return nil, &errors.PuzzleError{
				Err:      fmt.Errorf("want fen and moves columns, got %d: %w", len(record), errors.ErrParseFailure),
				PlyIndex: -1,
				File:     name,
				Line:     line,
			}
		}

		p, err := Parse(strconv.Itoa(line), record[0], record[1])
		if err != nil {
			return nil, &errors.PuzzleError{Err: err, PlyIndex: -1, File: name, Line: line}
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}
