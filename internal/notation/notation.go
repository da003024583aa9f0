// Package notation turns raw user input into comparable move tokens.
//
// Two input modes feed it: pairs of clicked squares, which are joined into
// coordinate tokens such as "e2e4", and typed text such as "Qf7#". Neither
// mode is checked for legality here.
package notation

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// Square is a board square label such as e4.
type Square struct {
	File byte // 'a'..'h'
	Rank byte // '1'..'8'
}

// ParseSquare reads a two character square label. Surrounding whitespace
// and upper-case files are accepted.
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(width.Fold.String(s)))
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrParseFailure)
	}
	sq := Square{File: s[0], Rank: s[1]}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrParseFailure)
	}
	return sq, nil
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 'a' && s.File <= 'h' && s.Rank >= '1' && s.Rank <= '8'
}

// String returns the square label, e.g. "e4".
func (s Square) String() string {
	return string([]byte{s.File, s.Rank})
}

// Row returns the display row of the square, 0 being rank 8.
func (s Square) Row() int {
	return int('8' - s.Rank)
}

// Column returns the display column of the square, 0 being the a-file.
func (s Square) Column() int {
	return int(s.File - 'a')
}

// Pair joins a from and a to square into a coordinate token.
func Pair(from, to Square) string {
	return from.String() + to.String()
}

// IsBlank reports whether raw holds no input at all.
func IsBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

// Normalize trims raw, folds full-width characters to ASCII and strips
// trailing check and mate marks. Case is preserved.
func Normalize(raw string) string {
	s := strings.TrimSpace(width.Fold.String(raw))
	s = strings.TrimRight(s, "+#")
	return strings.TrimSpace(s)
}

// Canonical returns the form of raw used for comparison: Normalize followed
// by full case folding. Folding applies to SAN piece letters as well, so
// "qf7" and "Qf7" compare equal.
func Canonical(raw string) string {
	return cases.Fold().String(Normalize(raw))
}

// Equal reports whether two move tokens are the same once canonicalized.
func Equal(a, b string) bool {
	return Canonical(a) == Canonical(b)
}
