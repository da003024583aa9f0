package rules

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// Strict plays moves with github.com/notnil/chess, which checks full
// legality.
type Strict struct{}

// notations are tried in order when decoding a token.
var notations = []chess.Notation{
	chess.UCINotation{},
	chess.AlgebraicNotation{},
	chess.LongAlgebraicNotation{},
}

// Validate parses position.
func (Strict) Validate(position string) error {
	if _, err := chess.FEN(position); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return nil
}

// ApplyMove plays token on position and returns the new FEN.
func (Strict) ApplyMove(position, token string) (string, error) {
	fenOpt, err := chess.FEN(position)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	game := chess.NewGame(fenOpt)

	text := strings.TrimRight(strings.TrimSpace(token), "+#")
	move, err := decodeMove(game.Position(), text)
	if err != nil {
		return "", fmt.Errorf("%q: %w", token, errors.ErrUnknownMove)
	}
	if err := game.Move(move); err != nil {
		return "", fmt.Errorf("%q: %v: %w", token, err, errors.ErrIllegalMove)
	}
	return game.Position().String(), nil
}

func decodeMove(pos *chess.Position, text string) (*chess.Move, error) {
	var lastErr error
	for _, n := range notations {
		move, err := n.Decode(pos, text)
		if err == nil {
			return move, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
