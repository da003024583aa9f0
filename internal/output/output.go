// Package output renders session snapshots as a text board or as JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
	"github.com/lgbarn/mate-puzzle-go/internal/fen"
	"github.com/lgbarn/mate-puzzle-go/internal/session"
)

// Banner texts shown after an input.
const (
	CorrectBanner   = "Correct! Well done."
	IncorrectBanner = "Not quite, try again!"
	IntegrityBanner = "This puzzle's stored solution is broken. Press n for the next one."
	NoPuzzleBanner  = "No puzzle available."
)

var glyphs = map[rune]string{
	'p': "♟", 'r': "♜", 'n': "♞", 'b': "♝", 'q': "♛", 'k': "♚",
	'P': "♙", 'R': "♖", 'N': "♘", 'B': "♗", 'Q': "♕", 'K': "♔",
}

// Glyph returns the Unicode chess symbol for a FEN piece letter, "." for an
// empty square and the letter itself when it is not a piece.
func Glyph(piece rune) string {
	if piece == 0 {
		return "."
	}
	if g, ok := glyphs[piece]; ok {
		return g
	}
	return string(piece)
}

// FormatTime formats seconds as mm:ss. Minutes are not capped.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// RenderBoard draws the board from rank 8 down with rank and file labels,
// followed by the side to move.
func RenderBoard(b fen.Board) string {
	var sb strings.Builder
	for row := 0; row < fen.Size; row++ {
		fmt.Fprintf(&sb, "%d ", fen.Size-row)
		for col := 0; col < fen.Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Glyph(b.Grid[row][col]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move\n", b.SideToMove)
	return sb.String()
}

// Banner returns the feedback line for a snapshot, or "" when there is none.
func Banner(snap Snapshot) string {
	switch {
	case errors.Is(snap.Err, errors.ErrDataIntegrity):
		return IntegrityBanner
	case errors.Is(snap.Err, errors.ErrNoPuzzle):
		return NoPuzzleBanner
	case snap.Err != nil:
		return ""
	}
	switch snap.Outcome {
	case session.OutcomeCorrect, session.OutcomeSolved:
		return CorrectBanner
	case session.OutcomeIncorrect:
		return IncorrectBanner
	}
	switch snap.State.Status {
	case session.Solved:
		return CorrectBanner
	case session.Incorrect:
		return IncorrectBanner
	}
	return ""
}

// RenderText renders a full snapshot for a terminal.
func RenderText(snap Snapshot) string {
	var sb strings.Builder
	st := snap.State

	if !st.Loaded() {
		sb.WriteString(NoPuzzleBanner)
		sb.WriteByte('\n')
		return sb.String()
	}

	fmt.Fprintf(&sb, "Find the mate in %d!\n\n", st.Puzzle.MateIn())
	sb.WriteString(RenderBoard(st.Board))
	if st.Pending != nil {
		fmt.Fprintf(&sb, "Selected: %s\n", st.Pending)
	}

	sb.WriteString("Time: ")
	sb.WriteString(FormatTime(st.ElapsedSeconds))
	if st.SolveSeconds != nil {
		sb.WriteString("  Solved in ")
		sb.WriteString(FormatTime(*st.SolveSeconds))
	}
	sb.WriteByte('\n')

	if banner := Banner(snap); banner != "" {
		sb.WriteString(banner)
		sb.WriteByte('\n')
	}
	if st.ShowAnswer() {
		fmt.Fprintf(&sb, "Answer: %s\n", st.Answer())
	}
	if snap.Tally != nil && snap.Tally.Attempts > 0 {
		fmt.Fprintf(&sb, "Solved %d of %d\n", snap.Tally.Solved, snap.Tally.Attempts)
	}
	return sb.String()
}
