package engine

import (
	"github.com/lgbarn/mate-puzzle-go/internal/chess"
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= byte(chess.FirstCol) && c <= byte(chess.LastCol)
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= byte(chess.FirstRank) && c <= byte(chess.LastRank)
}

// pieceLetter returns the piece named by an English SAN letter. Lowercase
// 'b' is left to the caller because it is also a file.
func pieceLetter(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B':
		return chess.Bishop
	}
	return chess.Empty
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// tokenReader walks a move token one byte at a time.
type tokenReader struct {
	text string
	pos  int
}

func (r *tokenReader) current() byte {
	if r.pos >= len(r.text) {
		return 0
	}
	return r.text[r.pos]
}

func (r *tokenReader) advance() {
	if r.pos < len(r.text) {
		r.pos++
	}
}

// DecodeToken parses a move token without looking at a board. It accepts
// coordinate tokens (h8e8, e7e8q), long algebraic (Qd1h5, Ng1-f3), SAN
// (Qf7#, exd5, Rae1) and castling (O-O, 0-0-0). Anything else comes back
// with Class UnknownMove.
func DecodeToken(token string) *chess.Move {
	move := chess.NewMove()
	move.Text = token
	r := &tokenReader{text: token}

	ok := false
	switch c := r.current(); {
	case isCol(c):
		ok = decodePawnOrCoordinate(r, move)
	case pieceLetter(c) != chess.Empty:
		ok = decodePieceMove(r, move)
	case isCastlingChar(c):
		ok = decodeCastle(r, move)
	}

	if ok {
		for isCheck(r.current()) {
			r.advance()
		}
		if r.current() != 0 {
			ok = false
		}
	}

	if !ok {
		move.Class = chess.UnknownMove
	}
	return move
}

// decodePawnOrCoordinate handles tokens starting with a file: SAN pawn moves
// and coordinate pairs. Coordinate pairs are decoded as pawn moves with a
// source square; ResolveMove reclassifies them against the board.
func decodePawnOrCoordinate(r *tokenReader, move *chess.Move) bool {
	move.Class = chess.PawnMove
	move.PieceToMove = chess.Pawn
	col := chess.Col(r.current())
	r.advance()

	if isRank(r.current()) {
		// e4, e2e4, e2-e4
		rank := chess.Rank(r.current())
		r.advance()
		if isCapture(r.current()) {
			r.advance()
		}
		if isCol(r.current()) {
			move.FromCol, move.FromRank = col, rank
			move.ToCol = chess.Col(r.current())
			r.advance()
			if !isRank(r.current()) {
				return false
			}
			move.ToRank = chess.Rank(r.current())
			r.advance()
		} else {
			move.ToCol, move.ToRank = col, rank
		}
	} else {
		// exd5
		if isCapture(r.current()) {
			r.advance()
		}
		if !isCol(r.current()) {
			return false
		}
		move.FromCol = col
		move.ToCol = chess.Col(r.current())
		r.advance()
		if !isRank(r.current()) {
			return false
		}
		move.ToRank = chess.Rank(r.current())
		r.advance()
		if move.FromCol != move.ToCol+1 && move.FromCol != move.ToCol-1 {
			return false
		}
	}

	// Promotion: e8=Q, e8Q, e7e8q
	if r.current() == '=' {
		r.advance()
	}
	promoted := pieceLetter(r.current())
	if r.current() == 'b' {
		promoted = chess.Bishop
	}
	if promoted != chess.Empty && promoted != chess.King {
		move.Class = chess.PawnMoveWithPromotion
		move.PromotedPiece = promoted
		r.advance()
	}
	return true
}

// decodePieceMove handles SAN and long algebraic piece moves.
func decodePieceMove(r *tokenReader, move *chess.Move) bool {
	move.Class = chess.PieceMove
	move.PieceToMove = pieceLetter(r.current())
	r.advance()

	if isRank(r.current()) {
		// R1e1, R1xe3
		move.FromRank = chess.Rank(r.current())
		r.advance()
		if isCapture(r.current()) {
			r.advance()
		}
		return readDestination(r, move)
	}

	if isCapture(r.current()) {
		// Rxe1
		r.advance()
		return readDestination(r, move)
	}

	if !isCol(r.current()) {
		return false
	}
	col := chess.Col(r.current())
	r.advance()
	if isCapture(r.current()) {
		// Raxe1
		r.advance()
		if !isRank(r.current()) {
			move.FromCol = col
			return readDestination(r, move)
		}
	}

	if isRank(r.current()) {
		rank := chess.Rank(r.current())
		r.advance()
		if isCapture(r.current()) {
			r.advance()
		}
		if isCol(r.current()) {
			// Qd1h5, Re1xd1
			move.FromCol, move.FromRank = col, rank
			return readDestination(r, move)
		}
		// Re1
		move.ToCol, move.ToRank = col, rank
		return true
	}

	if isCol(r.current()) {
		// Rae1
		move.FromCol = col
		return readDestination(r, move)
	}
	return false
}

// readDestination reads a two character destination square.
func readDestination(r *tokenReader, move *chess.Move) bool {
	if !isCol(r.current()) {
		return false
	}
	move.ToCol = chess.Col(r.current())
	r.advance()
	if !isRank(r.current()) {
		return false
	}
	move.ToRank = chess.Rank(r.current())
	r.advance()
	return true
}

// decodeCastle handles O-O and O-O-O in their common spellings.
func decodeCastle(r *tokenReader, move *chess.Move) bool {
	r.advance()
	if r.current() == '-' {
		r.advance()
	}
	if !isCastlingChar(r.current()) {
		return false
	}
	r.advance()

	move.Class = chess.KingsideCastle
	if r.current() == '-' {
		r.advance()
		if !isCastlingChar(r.current()) {
			return false
		}
	}
	if isCastlingChar(r.current()) {
		move.Class = chess.QueensideCastle
		r.advance()
	}
	move.PieceToMove = chess.King
	return true
}

// ResolveMove refines a decoded move using the board: a coordinate pair
// takes the class of the piece standing on its source square, and a king
// moving two files becomes a castle.
func ResolveMove(move *chess.Move, board *chess.Board) *chess.Move {
	if !move.HasSource() || move.IsCastle() {
		return move
	}

	colouredPiece := board.Get(move.FromCol, move.FromRank)
	if colouredPiece == chess.Empty {
		return move
	}
	pieceToMove := chess.ExtractPiece(colouredPiece)

	switch {
	case pieceToMove == chess.King && abs(int(move.ToCol)-int(move.FromCol)) == 2 && move.ToRank == move.FromRank:
		if move.ToCol > move.FromCol {
			move.Class = chess.KingsideCastle
		} else {
			move.Class = chess.QueensideCastle
		}
	case pieceToMove == chess.Pawn:
		if move.Class != chess.PawnMoveWithPromotion {
			move.Class = chess.PawnMove
		}
	default:
		if move.Class == chess.PawnMoveWithPromotion {
			// A promotion letter on a non-pawn move is nonsense.
			move.Class = chess.UnknownMove
			return move
		}
		if move.Class == chess.PieceMove && move.PieceToMove != pieceToMove {
			// Qd1h5 with no queen on d1.
			move.Class = chess.UnknownMove
			return move
		}
		move.Class = chess.PieceMove
	}
	move.PieceToMove = pieceToMove
	return move
}
