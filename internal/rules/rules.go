// Package rules provides the chess rules engines a session plays moves
// through.
//
// Native uses the in-repo engine, which decodes coordinate, long algebraic
// and SAN tokens and rejects moves that leave the mover in check. Strict
// delegates to github.com/notnil/chess for complete legality.
package rules

import (
	"fmt"
	"strings"

	"github.com/lgbarn/mate-puzzle-go/internal/errors"
)

// Engine applies moves to FEN positions.
type Engine interface {
	ApplyMove(position, token string) (string, error)
	Validate(position string) error
}

// Engine names accepted by ByName.
const (
	NameNative = "native"
	NameStrict = "strict"
)

// ByName returns the engine with the given name.
func ByName(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameNative, "":
		return Native{}, nil
	case NameStrict:
		return Strict{}, nil
	default:
		return nil, fmt.Errorf("unknown rules engine %q: %w", name, errors.ErrInvalidConfig)
	}
}
