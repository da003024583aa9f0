package engine

import (
	"fmt"

	"github.com/lgbarn/mate-puzzle-go/internal/chess"
	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// ApplyToken decodes token, resolves it against the board and applies it.
// The returned move carries the resolved squares and the check status of
// the resulting position. The board is left untouched on error.
func ApplyToken(board *chess.Board, token string) (*chess.Move, error) {
	move := DecodeToken(token)
	if move.Class == chess.UnknownMove {
		return nil, fmt.Errorf("%q: %w", token, errors.ErrUnknownMove)
	}
	ResolveMove(move, board)
	if err := ApplyMove(board, move); err != nil {
		return nil, err
	}
	return move, nil
}

// ApplyMove applies a move to the board and updates the board state.
// The move is made on a copy and committed only when it is legal, so a
// rejected move never leaves the board half updated.
func ApplyMove(board *chess.Board, move *chess.Move) error {
	if move == nil {
		return fmt.Errorf("nil move: %w", errors.ErrIllegalMove)
	}

	next := board.Copy()
	var err error

	switch move.Class {
	case chess.KingsideCastle:
		err = applyCastle(next, true)

	case chess.QueensideCastle:
		err = applyCastle(next, false)

	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		err = applyPawnMove(next, move)

	case chess.PieceMove:
		err = applyPieceMove(next, move)

	default:
		err = errors.ErrUnknownMove
	}
	if err != nil {
		return fmt.Errorf("%q: %w", move.Text, err)
	}

	if IsInCheck(next, board.ToMove) {
		return fmt.Errorf("%q leaves the %s king in check: %w", move.Text, board.ToMove, errors.ErrIllegalMove)
	}

	*board = *next
	return nil
}

// finishMove flips the side to move and advances the clocks.
func finishMove(board *chess.Board, colour chess.Colour, resetClock bool) {
	if resetClock {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}
