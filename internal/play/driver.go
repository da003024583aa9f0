// Package play runs the interactive puzzle loop: it serializes user events
// and clock ticks through one session, re-arms the clock on every load and
// hands each resulting snapshot to a writer.
package play

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/mate-puzzle-go/internal/clock"
	"github.com/lgbarn/mate-puzzle-go/internal/errors"
	"github.com/lgbarn/mate-puzzle-go/internal/output"
	"github.com/lgbarn/mate-puzzle-go/internal/puzzle"
	"github.com/lgbarn/mate-puzzle-go/internal/session"
)

// Picker supplies the next puzzle to play.
type Picker interface {
	Next() puzzle.Puzzle
}

// Config configures a Driver.
type Config struct {
	Rules      session.Rules
	Picker     Picker
	Output     output.SnapshotWriter
	Clock      clock.Source  // default clock.Real
	Interval   time.Duration // default one second
	Celebrator Celebrator    // default none
	Logger     zerolog.Logger
}

// Driver owns the session and the ticker of the current attempt. Only Run's
// goroutine touches the session.
type Driver struct {
	cfg     Config
	log     zerolog.Logger
	session *session.Session
	tally   *session.Tally

	ticks  chan Event
	ticker clock.Ticker
	// done stops the goroutine forwarding the current ticker.
	done chan struct{}

	wg sync.WaitGroup
}

// NewDriver creates a driver. Rules, Picker and Output are required.
func NewDriver(cfg Config) (*Driver, error) {
	if cfg.Rules == nil || cfg.Picker == nil || cfg.Output == nil {
		return nil, fmt.Errorf("driver needs rules, picker and output: %w", errors.ErrInvalidConfig)
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.Celebrator == nil {
		cfg.Celebrator = noCelebration{}
	}
	return &Driver{
		cfg:     cfg,
		log:     cfg.Logger,
		session: session.New(cfg.Rules),
		tally:   session.NewTally(),
		ticks:   make(chan Event),
	}, nil
}

// Run loads a first puzzle and then processes events until ctx is done or
// events is closed. It waits for its goroutines before returning.
func (d *Driver) Run(ctx context.Context, events <-chan Event) error {
	defer d.wg.Wait()
	defer d.disarm()

	d.next(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			d.dispatch(ctx, ev)
		case ev := <-d.ticks:
			d.dispatch(ctx, ev)
		}
	}
}

// State returns the current session state.
func (d *Driver) State() session.State {
	return d.session.State()
}

// Tally returns the running score.
func (d *Driver) Tally() session.Tally {
	return *d.tally
}

func (d *Driver) dispatch(ctx context.Context, ev Event) {
	switch ev := ev.(type) {
	case Submit:
		before := d.session.State()
		st, outcome, err := d.session.Submit(ev.Text)
		d.settle(ctx, before, st, outcome, err)
	case Select:
		before := d.session.State()
		st, outcome, err := d.session.Select(ev.Square)
		d.settle(ctx, before, st, outcome, err)
	case Reveal:
		before := d.session.State()
		st, err := d.session.Reveal()
		d.settle(ctx, before, st, session.OutcomeIgnored, err)
	case Next:
		d.next(ctx)
	case tick:
		d.onTick(ev)
	}
}

// next stops the old ticker, replaces the state and only then arms a new
// ticker for the new attempt.
func (d *Driver) next(ctx context.Context) {
	d.disarm()

	before := d.session.State()
	p := d.cfg.Picker.Next()
	st, err := d.session.Load(p)
	d.tally.Observe(before, st, session.OutcomeIgnored)

	if err != nil {
		d.log.Error().Err(err).Str("puzzle", p.ID).Msg("load puzzle")
	} else {
		d.log.Info().
			Str("attempt", st.Attempt.String()).
			Str("puzzle", p.ID).
			Int("mate_in", p.MateIn()).
			Msg("puzzle loaded")
		d.arm(ctx, st.Attempt)
	}
	d.render(output.Snapshot{State: st, Err: err})
}

func (d *Driver) settle(ctx context.Context, before, st session.State, outcome session.Outcome, err error) {
	d.tally.Observe(before, st, outcome)

	ev := d.log.Debug()
	switch {
	case errors.Is(err, errors.ErrDataIntegrity):
		ev = d.log.Error()
	case err != nil:
		ev = d.log.Warn()
	case outcome == session.OutcomeSolved:
		ev = d.log.Info()
	}
	ev.Err(err).
		Str("attempt", st.Attempt.String()).
		Int("ply", st.PlyIndex).
		Stringer("status", st.Status).
		Stringer("outcome", outcome).
		Msg("input")

	if outcome == session.OutcomeSolved {
		d.disarm()
		d.celebrate(ctx, st)
	}
	d.render(output.Snapshot{State: st, Outcome: outcome, Err: err})
}

func (d *Driver) onTick(t tick) {
	current := d.session.State()
	if t.attempt != current.Attempt {
		d.log.Debug().Str("attempt", t.attempt.String()).Time("at", t.at).Msg("stale tick dropped")
		return
	}
	before := current.ElapsedSeconds
	st := d.session.Tick()
	if st.ElapsedSeconds == before {
		return
	}
	d.render(output.Snapshot{State: st, Tick: true})
}

func (d *Driver) render(snap output.Snapshot) {
	snap.Tally = d.tally
	if err := d.cfg.Output.WriteSnapshot(snap); err != nil {
		d.log.Error().Err(err).Msg("write snapshot")
	}
}

// celebrate runs the celebrator without waiting for it.
func (d *Driver) celebrate(ctx context.Context, st session.State) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.cfg.Celebrator.Celebrate(ctx, st); err != nil {
			d.log.Warn().Err(err).Str("attempt", st.Attempt.String()).Msg("celebration failed")
		}
	}()
}

// arm starts a ticker whose ticks are tagged with attempt and forwarded
// into the loop.
func (d *Driver) arm(ctx context.Context, attempt uuid.UUID) {
	ticker := d.cfg.Clock(d.cfg.Interval)
	done := make(chan struct{})
	d.ticker, d.done = ticker, done

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case at := <-ticker.C():
				select {
				case d.ticks <- tick{attempt: attempt, at: at}:
				case <-done:
					return
				case <-ctx.Done():
					return
				}
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// disarm stops the current ticker. It is safe to call with none armed.
func (d *Driver) disarm() {
	if d.ticker == nil {
		return
	}
	d.ticker.Stop()
	close(d.done)
	d.ticker, d.done = nil, nil
}
