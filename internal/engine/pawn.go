package engine

import (
	"fmt"

	"github.com/lgbarn/mate-puzzle-go/internal/chess"
	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// applyPawnMove applies a pawn move, including en passant and promotion.
func applyPawnMove(board *chess.Board, move *chess.Move) error {
	colour := board.ToMove
	toCol, toRank := move.ToCol, move.ToRank
	fromCol, fromRank := move.FromCol, move.FromRank

	if !move.HasSource() {
		fromCol, fromRank = findPawnSource(board, move, colour)
		if fromCol == 0 {
			return fmt.Errorf("no pawn can reach %c%c: %w", toCol, toRank, errors.ErrIllegalMove)
		}
	}

	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	if board.Get(fromCol, fromRank) != pawn {
		return fmt.Errorf("no %s pawn on %c%c: %w", colour, fromCol, fromRank, errors.ErrIllegalMove)
	}

	direction := chess.ColourOffset(colour)
	rankStep := int(toRank) - int(fromRank)
	colStep := abs(int(toCol) - int(fromCol))
	target := board.Get(toCol, toRank)
	enPassant := false

	switch {
	case colStep == 0 && rankStep == direction:
		if target != chess.Empty {
			return fmt.Errorf("pawn push blocked on %c%c: %w", toCol, toRank, errors.ErrIllegalMove)
		}
	case colStep == 0 && rankStep == 2*direction:
		middle := chess.Rank(int(fromRank) + direction)
		if fromRank != pawnStartRank(colour) || target != chess.Empty || board.Get(fromCol, middle) != chess.Empty {
			return fmt.Errorf("illegal double pawn push: %w", errors.ErrIllegalMove)
		}
	case colStep == 1 && rankStep == direction:
		switch {
		case target != chess.Empty && chess.ExtractColour(target) != colour:
		case target == chess.Empty && board.EnPassant && toCol == board.EPCol && toRank == board.EPRank:
			enPassant = true
		default:
			return fmt.Errorf("pawn has nothing to capture on %c%c: %w", toCol, toRank, errors.ErrIllegalMove)
		}
	default:
		return fmt.Errorf("pawn cannot move %c%c-%c%c: %w", fromCol, fromRank, toCol, toRank, errors.ErrIllegalMove)
	}

	if enPassant {
		board.Set(toCol, fromRank, chess.Empty)
	}

	board.Set(fromCol, fromRank, chess.Empty)

	lastRank := chess.Rank('8')
	if colour == chess.Black {
		lastRank = '1'
	}
	if toRank == lastRank {
		if move.PromotedPiece == chess.Empty {
			return fmt.Errorf("promotion needs a piece: %w", errors.ErrIllegalMove)
		}
		board.Set(toCol, toRank, chess.MakeColouredPiece(colour, move.PromotedPiece))
	} else {
		if move.Class == chess.PawnMoveWithPromotion {
			return fmt.Errorf("promotion before the last rank: %w", errors.ErrIllegalMove)
		}
		board.Set(toCol, toRank, pawn)
	}

	if target != chess.Empty && chess.ExtractPiece(target) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(target), toCol, toRank)
	}

	// Set en passant square if double pawn push
	board.EnPassant = false
	if abs(rankStep) == 2 {
		board.EnPassant = true
		board.EPCol = toCol
		board.EPRank = chess.Rank(int(fromRank) + direction)
	}

	finishMove(board, colour, true)
	return nil
}

// pawnStartRank returns the rank a colour's pawns start on.
func pawnStartRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return '2'
	}
	return '7'
}

// findPawnSource finds the source square of a pawn move.
func findPawnSource(board *chess.Board, move *chess.Move, colour chess.Colour) (chess.Col, chess.Rank) {
	toCol := move.ToCol
	toRank := move.ToRank
	fromCol := move.FromCol

	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	direction := chess.ColourOffset(colour)
	fromRank := chess.Rank(int(toRank) - direction)

	// Capture: the file is known, look one rank back
	if fromCol != 0 {
		if board.Get(fromCol, fromRank) == pawn {
			return fromCol, fromRank
		}
		return 0, 0
	}

	if board.Get(toCol, fromRank) == pawn {
		return toCol, fromRank
	}

	// Double pawn push
	doubleRank := chess.Rank(int(toRank) - 2*direction)
	if doubleRank == pawnStartRank(colour) && board.Get(toCol, fromRank) == chess.Empty && board.Get(toCol, doubleRank) == pawn {
		return toCol, doubleRank
	}

	return 0, 0
}
