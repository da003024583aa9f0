package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for col := Col('a'); col <= 'h'; col++ {
			for rank := Rank('1'); rank <= '8'; rank++ {
				if got := b.Get(col, rank); got != Empty {
					t.Errorf("Get(%c, %c) = %v; want Empty", col, rank, got)
				}
			}
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	b := NewBoard()
	b.Set('h', '8', W(Queen))
	b.Set('e', '7', B(King))

	tests := []struct {
		name  string
		col   Col
		rank  Rank
		piece Piece
	}{
		{"white queen h8", 'h', '8', W(Queen)},
		{"black king e7", 'e', '7', B(King)},
		{"empty a1", 'a', '1', Empty},
		{"off board file", 'i', '1', Empty},
		{"off board rank", 'a', '9', Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.col, tt.rank); got != tt.piece {
				t.Errorf("Get(%c, %c) = %v; want %v", tt.col, tt.rank, got, tt.piece)
			}
		})
	}
}

func TestBoardSetOffBoardIgnored(t *testing.T) {
	b := NewBoard()
	b.Set('z', '1', W(Rook))
	b.Set('a', '0', W(Rook))

	for col := Col('a'); col <= 'h'; col++ {
		for rank := Rank('1'); rank <= '8'; rank++ {
			if b.Get(col, rank) != Empty {
				t.Fatalf("square %c%c changed by off-board Set", col, rank)
			}
		}
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Set('e', '1', W(King))
	b.SetKing(White, 'e', '1')

	c := b.Copy()
	c.Set('e', '1', Empty)
	c.SetKing(White, 'f', '1')

	if b.Get('e', '1') != W(King) {
		t.Error("Copy shares squares with the original")
	}
	if col, rank := b.King(White); col != 'e' || rank != '1' {
		t.Errorf("original king = %c%c; want e1", col, rank)
	}
}

func TestColouredPieces(t *testing.T) {
	for _, piece := range []Piece{Pawn, Knight, Bishop, Rook, Queen, King} {
		for _, colour := range []Colour{White, Black} {
			cp := MakeColouredPiece(colour, piece)
			if ExtractPiece(cp) != piece {
				t.Errorf("ExtractPiece(%v %v) = %v", colour, piece, ExtractPiece(cp))
			}
			if ExtractColour(cp) != colour {
				t.Errorf("ExtractColour(%v %v) = %v", colour, piece, ExtractColour(cp))
			}
		}
	}
}

func TestClearCastling(t *testing.T) {
	b := NewBoard()
	b.WKingCastle, b.WQueenCastle = 'h', 'a'
	b.BKingCastle, b.BQueenCastle = 'h', 'a'

	b.ClearCastling(White)

	if b.WKingCastle != 0 || b.WQueenCastle != 0 {
		t.Error("white castling rights not cleared")
	}
	if b.BKingCastle != 'h' || b.BQueenCastle != 'a' {
		t.Error("black castling rights changed")
	}
}
