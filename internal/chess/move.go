package chess

// Move is a decoded move token. From squares are zero when the notation did
// not name them and the engine must find the moving piece itself.
type Move struct {
	// The token the move was decoded from (e.g. "Qf7#", "h8e8").
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Source square.
	FromCol  Col
	FromRank Rank

	// Destination square.
	ToCol  Col
	ToRank Rank

	// The piece being moved.
	PieceToMove Piece

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		Class:         UnknownMove,
		PromotedPiece: Empty,
	}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// HasSource reports whether the notation named the full source square.
func (m *Move) HasSource() bool {
	return m.FromCol != 0 && m.FromRank != 0
}
