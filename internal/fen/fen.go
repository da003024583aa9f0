// Package fen decodes position strings for display.
//
// The decoder is lenient: puzzles are vetted data, so malformed placement
// is dropped rather than reported. Validation and encoding belong to the
// rules engine.
package fen

import (
	"strings"
	"unicode"

	"github.com/lgbarn/mate-puzzle-go/internal/chess"
	"github.com/lgbarn/mate-puzzle-go/internal/notation"
)

// Size is the number of ranks and files.
const Size = 8

// Board is an 8x8 grid of piece symbols plus the side to move. Grid[0] is
// rank 8 and Grid[r][0] is the a-file. Zero means an empty square.
type Board struct {
	Grid       [Size][Size]rune
	SideToMove chess.Colour
}

// Decode reads the placement and side-to-move fields of a FEN string. Any
// placement that falls outside the board is dropped. A missing or unknown
// side-to-move field means White.
func Decode(position string) Board {
	board := Board{SideToMove: chess.White}

	fields := strings.Fields(position)
	if len(fields) == 0 {
		return board
	}

	rank, file := 0, 0
	for _, r := range fields[0] {
		switch {
		case r == '/':
			rank++
			file = 0
		case r >= '0' && r <= '9':
			file += int(r - '0')
		default:
			if rank < Size && file < Size {
				board.Grid[rank][file] = r
			}
			file++
		}
	}

	if len(fields) > 1 && fields[1] == "b" {
		board.SideToMove = chess.Black
	}
	return board
}

// At returns the symbol on a square, or zero when it is empty or invalid.
func (b Board) At(sq notation.Square) rune {
	if !sq.Valid() {
		return 0
	}
	return b.Grid[sq.Row()][sq.Column()]
}

// Owns reports whether the square holds a piece of the side to move.
// Upper-case symbols are White.
func (b Board) Owns(sq notation.Square) bool {
	r := b.At(sq)
	if r == 0 {
		return false
	}
	return unicode.IsUpper(r) == (b.SideToMove == chess.White)
}

// Pieces counts the occupied squares.
func (b Board) Pieces() int {
	n := 0
	for _, row := range b.Grid {
		for _, r := range row {
			if r != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid as eight lines from rank 8 down, '.' for empty.
func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b.Grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range row {
			if r == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
