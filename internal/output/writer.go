package output

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/mate-puzzle-go/internal/session"
)

// Snapshot is everything a renderer needs after one input.
type Snapshot struct {
	State   session.State
	Outcome session.Outcome
	// Err is the error the input produced, if any.
	Err   error
	Tally *session.Tally
	// Tick marks a snapshot produced by a clock tick alone.
	Tick bool
}

// SnapshotWriter is the interface for writing snapshots to output.
// Different implementations handle different formats (text, JSON).
type SnapshotWriter interface {
	// WriteSnapshot writes a single snapshot.
	WriteSnapshot(snap Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error
}

// NewWriter returns a JSON writer when asJSON is set, else a text writer.
func NewWriter(w io.Writer, asJSON bool) SnapshotWriter {
	if asJSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes snapshots as a terminal board.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteSnapshot renders the snapshot followed by a separator line. Tick
// snapshots are skipped so the board is not redrawn every second.
func (tw *TextWriter) WriteSnapshot(snap Snapshot) error {
	if snap.Tick {
		return nil
	}
	if _, err := tw.w.WriteString(RenderText(snap)); err != nil {
		return err
	}
	if _, err := tw.w.WriteString(strings.Repeat("-", 17) + "\n"); err != nil {
		return err
	}
	return tw.w.Flush()
}

// Flush flushes buffered output.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// JSONWriter writes one JSON object per line.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// WriteSnapshot encodes the snapshot as a single line.
func (jw *JSONWriter) WriteSnapshot(snap Snapshot) error {
	return jw.enc.Encode(SnapshotToJSON(snap))
}

// Flush is a no-op; every snapshot is written immediately.
func (jw *JSONWriter) Flush() error {
	return nil
}
