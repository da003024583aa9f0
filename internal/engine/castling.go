package engine

import (
	"fmt"

	"github.com/lgbarn/mate-puzzle-go/internal/chess"
	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// applyCastle applies a castling move.
func applyCastle(board *chess.Board, kingside bool) error {
	colour := board.ToMove
	rank := chess.Rank('1')
	if colour == chess.Black {
		rank = '8'
	}
	kingFromCol, kingRank := board.King(colour)

	var kingToCol, rookFromCol, rookToCol chess.Col
	if kingside {
		kingToCol, rookToCol = 'g', 'f'
		rookFromCol = board.WKingCastle
		if colour == chess.Black {
			rookFromCol = board.BKingCastle
		}
	} else {
		kingToCol, rookToCol = 'c', 'd'
		rookFromCol = board.WQueenCastle
		if colour == chess.Black {
			rookFromCol = board.BQueenCastle
		}
	}

	if rookFromCol == 0 || kingRank != rank {
		return fmt.Errorf("%s has no castling right: %w", colour, errors.ErrIllegalMove)
	}
	if board.Get(rookFromCol, rank) != chess.MakeColouredPiece(colour, chess.Rook) {
		return fmt.Errorf("no rook on %c%c: %w", rookFromCol, rank, errors.ErrIllegalMove)
	}
	if !isStraightClear(board, kingFromCol, rank, rookFromCol, rank) {
		return fmt.Errorf("castling path blocked: %w", errors.ErrIllegalMove)
	}

	// The king may not castle out of, through, or into check.
	step := sign(int(kingToCol) - int(kingFromCol))
	for col := kingFromCol; ; col = chess.Col(int(col) + step) {
		if isSquareAttacked(board, col, rank, colour.Opposite()) {
			return fmt.Errorf("king passes attacked square %c%c: %w", col, rank, errors.ErrIllegalMove)
		}
		if col == kingToCol {
			break
		}
	}

	king := board.Get(kingFromCol, rank)
	rook := board.Get(rookFromCol, rank)
	board.Set(kingFromCol, rank, chess.Empty)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(kingToCol, rank, king)
	board.Set(rookToCol, rank, rook)

	board.SetKing(colour, kingToCol, rank)
	board.ClearCastling(colour)
	board.EnPassant = false
	finishMove(board, colour, false)

	return nil
}

// updateCastlingRightsForRook removes castling rights when a rook moves or is captured.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if colour == chess.White && rank == '1' {
		if col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else if colour == chess.Black && rank == '8' {
		if col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}
