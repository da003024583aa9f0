package play

import (
	"time"

	"github.com/google/uuid"
)

// Event is an input to the driver loop.
type Event interface {
	event()
}

// Submit is a typed move.
type Submit struct {
	Text string
}

// Select is a clicked square such as "e2".
type Select struct {
	Square string
}

// Reveal asks for the answer.
type Reveal struct{}

// Next loads another puzzle.
type Next struct{}

// tick is a clock tick for one attempt.
type tick struct {
	attempt uuid.UUID
	at      time.Time
}

func (Submit) event() {}
func (Select) event() {}
func (Reveal) event() {}
func (Next) event() {}
func (tick) event() {}
