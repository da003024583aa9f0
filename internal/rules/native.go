package rules

import (
	"github.com/lgbarn/mate-puzzle-go/internal/engine"
)

// Native plays moves with the in-repo engine.
type Native struct{}

// Validate parses position strictly.
func (Native) Validate(position string) error {
	_, err := engine.NewBoardFromFEN(position)
	return err
}

// ApplyMove plays token on position and returns the new FEN.
func (Native) ApplyMove(position, token string) (string, error) {
	board, err := engine.NewBoardFromFEN(position)
	if err != nil {
		return "", err
	}
	if _, err := engine.ApplyToken(board, token); err != nil {
		return "", err
	}
	return engine.BoardToFEN(board), nil
}
