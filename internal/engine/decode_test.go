package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/mate-puzzle-go/internal/chess"
)

func TestDecodeToken(t *testing.T) {
	tests := []struct {
		token string
		want  chess.Move
	}{
		{
			token: "h8e8",
			want: chess.Move{Class: chess.PawnMove, PieceToMove: chess.Pawn,
				FromCol: 'h', FromRank: '8', ToCol: 'e', ToRank: '8'},
		},
		{
			token: "Qd1h5",
			want: chess.Move{Class: chess.PieceMove, PieceToMove: chess.Queen,
				FromCol: 'd', FromRank: '1', ToCol: 'h', ToRank: '5'},
		},
		{
			token: "Qf7#",
			want:  chess.Move{Class: chess.PieceMove, PieceToMove: chess.Queen, ToCol: 'f', ToRank: '7'},
		},
		{
			token: "exd5",
			want:  chess.Move{Class: chess.PawnMove, PieceToMove: chess.Pawn, FromCol: 'e', ToCol: 'd', ToRank: '5'},
		},
		{
			token: "e7e8q",
			want: chess.Move{Class: chess.PawnMoveWithPromotion, PieceToMove: chess.Pawn, PromotedPiece: chess.Queen,
				FromCol: 'e', FromRank: '7', ToCol: 'e', ToRank: '8'},
		},
		{
			token: "e8=N+",
			want: chess.Move{Class: chess.PawnMoveWithPromotion, PieceToMove: chess.Pawn, PromotedPiece: chess.Knight,
				ToCol: 'e', ToRank: '8'},
		},
		{
			token: "O-O",
			want:  chess.Move{Class: chess.KingsideCastle, PieceToMove: chess.King},
		},
		{
			token: "0-0-0",
			want:  chess.Move{Class: chess.QueensideCastle, PieceToMove: chess.King},
		},
		{
			token: "Nbd7",
			want:  chess.Move{Class: chess.PieceMove, PieceToMove: chess.Knight, FromCol: 'b', ToCol: 'd', ToRank: '7'},
		},
		{
			token: "R1e2",
			want:  chess.Move{Class: chess.PieceMove, PieceToMove: chess.Rook, FromRank: '1', ToCol: 'e', ToRank: '2'},
		},
		{
			token: "Ng1-f3",
			want: chess.Move{Class: chess.PieceMove, PieceToMove: chess.Knight,
				FromCol: 'g', FromRank: '1', ToCol: 'f', ToRank: '3'},
		},
		{
			token: "Rxe1",
			want:  chess.Move{Class: chess.PieceMove, PieceToMove: chess.Rook, ToCol: 'e', ToRank: '1'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			tt.want.Text = tt.token
			got := DecodeToken(tt.token)
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("DecodeToken(%q) mismatch (-want +got):\n%s", tt.token, diff)
			}
		})
	}
}

func TestDecodeToken_Unknown(t *testing.T) {
	for _, token := range []string{"", "hello", "Qz9", "exe5", "O", "O-", "Xe4", "e2e"} {
		t.Run(token, func(t *testing.T) {
			if got := DecodeToken(token); got.Class != chess.UnknownMove {
				t.Errorf("DecodeToken(%q).Class = %v, want UnknownMove", token, got.Class)
			}
		})
	}
}

func TestResolveMove(t *testing.T) {
	board, err := NewBoardFromFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("NewBoardFromFEN() error = %v", err)
	}

	tests := []struct {
		token     string
		wantClass chess.MoveClass
		wantPiece chess.Piece
	}{
		{"e1g1", chess.KingsideCastle, chess.King},
		{"e1c1", chess.QueensideCastle, chess.King},
		{"e1f1", chess.PieceMove, chess.King},
		{"a1b1", chess.PieceMove, chess.Rook},
		{"e2e4", chess.PawnMove, chess.Pawn},
		{"Qa1b1", chess.UnknownMove, chess.Queen},
		{"a1b1q", chess.UnknownMove, chess.Pawn},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			move := ResolveMove(DecodeToken(tt.token), board)
			if move.Class != tt.wantClass {
				t.Errorf("Class = %v, want %v", move.Class, tt.wantClass)
			}
			if move.Class != chess.UnknownMove && move.PieceToMove != tt.wantPiece {
				t.Errorf("PieceToMove = %v, want %v", move.PieceToMove, tt.wantPiece)
			}
		})
	}
}
