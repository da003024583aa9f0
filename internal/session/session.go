package session

import (
	"github.com/google/uuid"

	"github.com/lgbarn/mate-puzzle-go/internal/puzzle"
)

// Session owns the state of the current attempt. It is not safe for
// concurrent use; callers serialize events through a single goroutine.
type Session struct {
	rules      Rules
	newAttempt func() uuid.UUID
	state      State
}

// Option configures a Session.
type Option func(*Session)

// WithAttemptIDs sets the generator for attempt IDs.
func WithAttemptIDs(fn func() uuid.UUID) Option {
	return func(s *Session) {
		s.newAttempt = fn
	}
}

// New creates an idle session.
func New(rules Rules, opts ...Option) *Session {
	s := &Session{
		rules:      rules,
		newAttempt: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = State{Attempt: s.newAttempt()}
	return s
}

// State returns the current snapshot.
func (s *Session) State() State {
	return s.state
}

// Load replaces the current attempt with a new one at p.
func (s *Session) Load(p puzzle.Puzzle) (State, error) {
	next, err := Load(p, s.rules, s.newAttempt())
	s.state = next
	return next, err
}

// Submit checks a typed move.
func (s *Session) Submit(token string) (State, Outcome, error) {
	next, outcome, err := Submit(s.state, token, s.rules)
	s.state = next
	return next, outcome, err
}

// Select records a clicked square.
func (s *Session) Select(square string) (State, Outcome, error) {
	next, outcome, err := Select(s.state, square, s.rules)
	s.state = next
	return next, outcome, err
}

// Reveal shows the answer.
func (s *Session) Reveal() (State, error) {
	next, err := Reveal(s.state)
	s.state = next
	return next, err
}

// Tick advances the clock of the current attempt.
func (s *Session) Tick() State {
	s.state = Tick(s.state)
	return s.state
}
