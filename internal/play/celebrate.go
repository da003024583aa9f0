package play

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/mate-puzzle-go/internal/output"
	"github.com/lgbarn/mate-puzzle-go/internal/session"
)

// Celebrator runs when a puzzle is solved. It is called on its own
// goroutine and its error is only logged.
type Celebrator interface {
	Celebrate(ctx context.Context, st session.State) error
}

// CelebratorFunc adapts a function to Celebrator.
type CelebratorFunc func(ctx context.Context, st session.State) error

// Celebrate calls f.
func (f CelebratorFunc) Celebrate(ctx context.Context, st session.State) error {
	return f(ctx, st)
}

// Bell rings the terminal bell and prints the solve time.
func Bell(w io.Writer) Celebrator {
	return CelebratorFunc(func(ctx context.Context, st session.State) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		secs := 0
		if st.SolveSeconds != nil {
			secs = *st.SolveSeconds
		}
		_, err := fmt.Fprintf(w, "\a*** Checkmate in %s ***\n", output.FormatTime(secs))
		return err
	})
}

type noCelebration struct{}

func (noCelebration) Celebrate(context.Context, session.State) error { return nil }
