package chess

// Board holds a position together with the state needed to apply moves to it.
type Board struct {
	// Squares is indexed [file][rank], both 0-based from a1.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current full move number.
	MoveNumber uint

	// Rook starting files for the four castling options; 0 when lost.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Where the two kings stand, for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is an en passant capture possible? If so EPCol and EPRank name the
	// target square.
	EnPassant bool
	EPRank    Rank
	EPCol     Col

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// Get returns the piece on the given square, or Empty when the square is
// off the board.
func (b *Board) Get(col Col, rank Rank) Piece {
	if !OnBoard(col, rank) {
		return Empty
	}
	return b.Squares[col-FirstCol][rank-FirstRank]
}

// Set places a piece on the given square. Off-board squares are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	if OnBoard(col, rank) {
		b.Squares[col-FirstCol][rank-FirstRank] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// King returns the tracked square of the given colour's king.
func (b *Board) King(colour Colour) (Col, Rank) {
	if colour == White {
		return b.WKingCol, b.WKingRank
	}
	return b.BKingCol, b.BKingRank
}

// SetKing records the square of the given colour's king.
func (b *Board) SetKing(colour Colour, col Col, rank Rank) {
	if colour == White {
		b.WKingCol, b.WKingRank = col, rank
	} else {
		b.BKingCol, b.BKingRank = col, rank
	}
}

// ClearCastling removes both castling rights for a colour.
func (b *Board) ClearCastling(colour Colour) {
	if colour == White {
		b.WKingCastle, b.WQueenCastle = 0, 0
	} else {
		b.BKingCastle, b.BQueenCastle = 0, 0
	}
}
