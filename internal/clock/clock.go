// Package clock provides the periodic tick source that drives a session's
// elapsed time.
package clock

import (
	"sync"
	"time"
)

// Ticker delivers ticks on C until stopped. Stop may be called more than
// once.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Source starts a ticker firing every interval.
type Source func(interval time.Duration) Ticker

// Real is a Source backed by time.Ticker.
func Real(interval time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(interval)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }

func (r *realTicker) Stop() { r.t.Stop() }

// Manual is a ticker fired by hand, for tests. Fire blocks once the buffer
// is full.
type Manual struct {
	c chan time.Time

	mu      sync.Mutex
	stopped bool
}

// NewManual creates a manual ticker with room for buffered ticks.
func NewManual(buffer int) *Manual {
	return &Manual{c: make(chan time.Time, buffer)}
}

// C returns the tick channel.
func (m *Manual) C() <-chan time.Time { return m.c }

// Fire sends one tick and reports whether it was delivered. Stopped
// tickers drop ticks, as time.Ticker does.
func (m *Manual) Fire(at time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return false
	}
	m.c <- at
	return true
}

// Stop stops the ticker.
func (m *Manual) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

// Stopped reports whether Stop has been called.
func (m *Manual) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// ManualSource hands out Manual tickers and remembers each one.
type ManualSource struct {
	mu      sync.Mutex
	tickers []*Manual
	armed   chan *Manual
}

// NewManualSource creates a ManualSource. Every ticker it starts is also
// sent on Armed.
func NewManualSource() *ManualSource {
	return &ManualSource{armed: make(chan *Manual, 64)}
}

// Start implements Source.
func (s *ManualSource) Start(time.Duration) Ticker {
	m := NewManual(16)
	s.mu.Lock()
	s.tickers = append(s.tickers, m)
	s.mu.Unlock()
	s.armed <- m
	return m
}

// Armed delivers tickers in the order they were started.
func (s *ManualSource) Armed() <-chan *Manual { return s.armed }

// Tickers returns every ticker started so far.
func (s *ManualSource) Tickers() []*Manual {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Manual, len(s.tickers))
	copy(out, s.tickers)
	return out
}
