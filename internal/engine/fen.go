// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/mate-puzzle-go/internal/chess"
	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Unlike the display
// codec in package fen, it rejects anything malformed.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	parseCastlingRights(board, parts)
	parseEnPassant(board, parts)
	parseClocks(board, parts)

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.Rank('8')
	col := chess.Col('a')
	kings := map[chess.Colour]int{}

	for _, c := range positions {
		switch {
		case c == '/':
			if col != 'h'+1 {
				return fmt.Errorf("rank %c has %d files: %w", rank, col-'a', errors.ErrInvalidFEN)
			}
			rank--
			col = 'a'
		case c >= '1' && c <= '8':
			col += chess.Col(c - '0')
			if col > 'h'+1 {
				return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
			}
		default:
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col > 'h' || rank < '1' {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			board.Set(col, rank, chess.MakeColouredPiece(colour, piece))

			if piece == chess.King {
				board.SetKing(colour, col, rank)
				kings[colour]++
			}
			col++
		}
	}

	if rank != '1' || col != 'h'+1 {
		return fmt.Errorf("placement does not cover 8 ranks: %w", errors.ErrInvalidFEN)
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("each side needs exactly one king: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) {
	board.ClearCastling(chess.White)
	board.ClearCastling(chess.Black)

	if len(parts) < 3 || parts[2] == "-" {
		return
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.WKingCastle = 'h'
		case 'Q':
			board.WQueenCastle = 'a'
		case 'k':
			board.BKingCastle = 'h'
		case 'q':
			board.BQueenCastle = 'a'
		}
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" || len(parts[3]) != 2 {
		return
	}
	col, rank := chess.Col(parts[3][0]), chess.Rank(parts[3][1])
	if !chess.OnBoard(col, rank) {
		return
	}
	board.EnPassant = true
	board.EPCol = col
	board.EPRank = rank
}

// parseClocks parses the halfmove clock and fullmove number fields.
// Unreadable clocks keep their defaults; puzzles rarely care about them.
func parseClocks(board *chess.Board, parts []string) {
	if len(parts) >= 5 {
		if n, err := strconv.ParseUint(parts[4], 10, 32); err == nil {
			board.HalfmoveClock = uint(n)
		}
	}
	if len(parts) >= 6 {
		if n, err := strconv.ParseUint(parts[5], 10, 32); err == nil && n > 0 {
			board.MoveNumber = uint(n)
		}
	}
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	start := sb.Len()
	if board.WKingCastle != 0 {
		sb.WriteByte('K')
	}
	if board.WQueenCastle != 0 {
		sb.WriteByte('Q')
	}
	if board.BKingCastle != 0 {
		sb.WriteByte('k')
	}
	if board.BQueenCastle != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteByte(byte(board.EPCol))
		sb.WriteByte(byte(board.EPRank))
	} else {
		sb.WriteByte('-')
	}
}
