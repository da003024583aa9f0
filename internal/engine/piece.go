package engine

import (
	"fmt"

	"github.com/lgbarn/mate-puzzle-go/internal/chess"
	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// applyPieceMove applies a piece (non-pawn) move.
func applyPieceMove(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	fromCol, fromRank := move.FromCol, move.FromRank
	toCol, toRank := move.ToCol, move.ToRank
	pieceType := move.PieceToMove

	if !move.HasSource() {
		var err error
		fromCol, fromRank, err = findPieceSource(board, move, colour)
		if err != nil {
			return err
		}
	}

	piece := board.Get(fromCol, fromRank)
	if piece != chess.MakeColouredPiece(colour, pieceType) {
		return fmt.Errorf("no %s %s on %c%c: %w", colour, pieceType, fromCol, fromRank, errors.ErrIllegalMove)
	}
	if !canPieceMove(board, pieceType, fromCol, fromRank, toCol, toRank) {
		return fmt.Errorf("%s on %c%c cannot reach %c%c: %w", pieceType, fromCol, fromRank, toCol, toRank, errors.ErrIllegalMove)
	}

	capturedPiece := board.Get(toCol, toRank)
	if capturedPiece != chess.Empty && chess.ExtractColour(capturedPiece) == colour {
		return fmt.Errorf("%c%c holds a %s piece: %w", toCol, toRank, colour, errors.ErrIllegalMove)
	}

	board.Set(fromCol, fromRank, chess.Empty)
	board.Set(toCol, toRank, piece)

	if pieceType == chess.King {
		board.SetKing(colour, toCol, toRank)
		board.ClearCastling(colour)
	}

	// Update castling rights if rook moved or captured
	if pieceType == chess.Rook {
		updateCastlingRightsForRook(board, colour, fromCol, fromRank)
	}
	if capturedPiece != chess.Empty && chess.ExtractPiece(capturedPiece) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(capturedPiece), toCol, toRank)
	}

	board.EnPassant = false
	finishMove(board, colour, capturedPiece != chess.Empty)
	return nil
}

// findPieceSource finds the single piece that can make a SAN move. More
// than one candidate means the notation was ambiguous.
func findPieceSource(board *chess.Board, move *chess.Move, colour chess.Colour) (chess.Col, chess.Rank, error) {
	piece := chess.MakeColouredPiece(colour, move.PieceToMove)

	var foundCol chess.Col
	var foundRank chess.Rank
	candidates := 0

	for col := chess.FirstCol; col <= chess.LastCol; col++ {
		for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
			if board.Get(col, rank) != piece {
				continue
			}
			if move.FromCol != 0 && col != move.FromCol {
				continue
			}
			if move.FromRank != 0 && rank != move.FromRank {
				continue
			}
			if !canPieceMove(board, move.PieceToMove, col, rank, move.ToCol, move.ToRank) {
				continue
			}
			// A pinned piece is not a candidate.
			if !tryMove(board, col, rank, move.ToCol, move.ToRank, colour) {
				continue
			}
			foundCol, foundRank = col, rank
			candidates++
		}
	}

	switch candidates {
	case 0:
		return 0, 0, fmt.Errorf("no %s can reach %c%c: %w", move.PieceToMove, move.ToCol, move.ToRank, errors.ErrIllegalMove)
	case 1:
		return foundCol, foundRank, nil
	default:
		return 0, 0, fmt.Errorf("ambiguous %s move to %c%c: %w", move.PieceToMove, move.ToCol, move.ToRank, errors.ErrIllegalMove)
	}
}

// tryMove reports whether moving a piece between the squares keeps the
// colour's king out of check.
func tryMove(board *chess.Board, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank, colour chess.Colour) bool {
	testBoard := board.Copy()

	piece := testBoard.Get(fromCol, fromRank)
	testBoard.Set(fromCol, fromRank, chess.Empty)
	testBoard.Set(toCol, toRank, piece)

	if chess.ExtractPiece(piece) == chess.King {
		testBoard.SetKing(colour, toCol, toRank)
	}

	return !IsInCheck(testBoard, colour)
}
