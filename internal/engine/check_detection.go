package engine

import "github.com/lgbarn/mate-puzzle-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalOffsets = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightOffsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// offset returns the square dc files and dr ranks away, and whether it is
// on the board.
func offset(col chess.Col, rank chess.Rank, dc, dr int) (chess.Col, chess.Rank, bool) {
	c := chess.Col(int(col) + dc)
	r := chess.Rank(int(rank) + dr)
	return c, r, chess.OnBoard(c, r)
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingCol, kingRank := board.King(colour)

	// If king position not tracked, search for it
	if kingCol == 0 || kingRank == 0 {
		kingCol, kingRank = findKing(board, colour)
		if kingCol == 0 {
			return false
		}
	}

	return isSquareAttacked(board, kingCol, kingRank, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Col, chess.Rank) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.FirstCol; col <= chess.LastCol; col++ {
		for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
			if board.Get(col, rank) == king {
				return col, rank
			}
		}
	}
	return 0, 0
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(board *chess.Board, col chess.Col, rank chess.Rank, byColour chess.Colour) bool {
	// Pawns attack from one rank behind, relative to their direction.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, dc := range []int{-1, 1} {
		if c, r, ok := offset(col, rank, dc, pawnDir); ok && board.Get(c, r) == pawn {
			return true
		}
	}

	if attackedByStep(board, col, rank, knightOffsets, chess.MakeColouredPiece(byColour, chess.Knight)) {
		return true
	}
	if attackedByStep(board, col, rank, kingOffsets, chess.MakeColouredPiece(byColour, chess.King)) {
		return true
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if attackedBySlide(board, col, rank, diagonalOffsets, chess.MakeColouredPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return attackedBySlide(board, col, rank, straightOffsets, chess.MakeColouredPiece(byColour, chess.Rook), queen)
}

// attackedByStep reports whether attacker stands one step away along any offset.
func attackedByStep(board *chess.Board, col chess.Col, rank chess.Rank, offsets [][2]int, attacker chess.Piece) bool {
	for _, o := range offsets {
		if c, r, ok := offset(col, rank, o[0], o[1]); ok && board.Get(c, r) == attacker {
			return true
		}
	}
	return false
}

// attackedBySlide reports whether the first piece met along any ray is one
// of the attackers.
func attackedBySlide(board *chess.Board, col chess.Col, rank chess.Rank, dirs [][2]int, attackers ...chess.Piece) bool {
	for _, dir := range dirs {
		c, r, ok := offset(col, rank, dir[0], dir[1])
		for ok {
			piece := board.Get(c, r)
			if piece != chess.Empty {
				for _, a := range attackers {
					if piece == a {
						return true
					}
				}
				break
			}
			c, r, ok = offset(c, r, dir[0], dir[1])
		}
	}
	return false
}
