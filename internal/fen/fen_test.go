package fen

import (
	"strings"
	"testing"

	"github.com/lgbarn/mate-puzzle-go/internal/chess"
	"github.com/lgbarn/mate-puzzle-go/internal/notation"
)

func TestDecode(t *testing.T) {
	board := Decode("7Q/3Bk3/2P1p3/4P2P/7b/5K2/B7/1b6 w - - 3 78")

	tests := []struct {
		square string
		want   rune
	}{
		{"h8", 'Q'},
		{"d7", 'B'},
		{"e7", 'k'},
		{"f3", 'K'},
		{"b1", 'b'},
		{"a1", 0},
		{"e8", 0},
	}
	for _, tt := range tests {
		sq, err := notation.ParseSquare(tt.square)
		if err != nil {
			t.Fatalf("ParseSquare(%q) error = %v", tt.square, err)
		}
		if got := board.At(sq); got != tt.want {
			t.Errorf("At(%s) = %q, want %q", tt.square, got, tt.want)
		}
	}
	if board.SideToMove != chess.White {
		t.Errorf("SideToMove = %v, want white", board.SideToMove)
	}
}

func TestDecode_SideToMove(t *testing.T) {
	tests := []struct {
		fen  string
		want chess.Colour
	}{
		{"8/8/8/8/8/8/8/8 b - - 0 1", chess.Black},
		{"8/8/8/8/8/8/8/8 w - - 0 1", chess.White},
		{"8/8/8/8/8/8/8/8", chess.White},
		{"8/8/8/8/8/8/8/8 ?", chess.White},
	}
	for _, tt := range tests {
		if got := Decode(tt.fen).SideToMove; got != tt.want {
			t.Errorf("Decode(%q).SideToMove = %v, want %v", tt.fen, got, tt.want)
		}
	}
}

func TestDecode_PieceCount(t *testing.T) {
	placements := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"7Q/3Bk3/2P1p3/4P2P/7b/5K2/B7/1b6",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR",
		"8/8/8/8/8/8/8/8",
		"4k3/8/8/8/8/8/8/4K3",
	}

	for _, placement := range placements {
		t.Run(placement, func(t *testing.T) {
			want := 0
			for _, r := range placement {
				if r != '/' && (r < '0' || r > '9') {
					want++
				}
			}

			board := Decode(placement + " w - - 0 1")
			if got := board.Pieces(); got != want {
				t.Errorf("Pieces() = %d, want %d", got, want)
			}

			lines := strings.Split(board.String(), "\n")
			if len(lines) != Size {
				t.Fatalf("String() has %d ranks, want %d", len(lines), Size)
			}
			for i, line := range lines {
				if n := len([]rune(line)); n != Size {
					t.Errorf("rank %d has %d files, want %d", Size-i, n, Size)
				}
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		pieces int
	}{
		{"empty", "", 0},
		{"too many ranks", "8/8/8/8/8/8/8/8/K", 0},
		{"rank overflow", "9K/8/8/8/8/8/8/8", 0},
		{"long rank", "KKKKKKKKK/8/8/8/8/8/8/8", 8},
		{"short", "K", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.fen).Pieces(); got != tt.pieces {
				t.Errorf("Pieces() = %d, want %d", got, tt.pieces)
			}
		})
	}
}

func TestString(t *testing.T) {
	got := Decode("7Q/3Bk3/2P1p3/4P2P/7b/5K2/B7/1b6 w - - 3 78").String()
	want := strings.Join([]string{
		".......Q",
		"...Bk...",
		"..P.p...",
		"....P..P",
		".......b",
		".....K..",
		"B.......",
		".b......",
	}, "\n")
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
