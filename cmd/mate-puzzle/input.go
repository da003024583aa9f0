// input.go - Turning terminal lines into driver events
package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/lgbarn/mate-puzzle-go/internal/notation"
	"github.com/lgbarn/mate-puzzle-go/internal/play"
)

// parseLine maps one input line to an event. It returns quit for the exit
// commands and a nil event for blank lines.
func parseLine(line string) (ev play.Event, quit bool) {
	if notation.IsBlank(line) {
		return nil, false
	}
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "q", "quit", "exit":
		return nil, true
	case "n", "next", "new":
		return play.Next{}, false
	case "a", "answer", "reveal":
		return play.Reveal{}, false
	case "click", "select":
		if len(fields) < 2 {
			return nil, false
		}
		return play.Select{Square: fields[1]}, false
	}
	return play.Submit{Text: line}, false
}

// readEvents sends an event for each line of r until EOF, a quit command or
// ctx ends, then closes events.
func readEvents(ctx context.Context, r io.Reader, events chan<- play.Event) error {
	defer close(events)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ev, quit := parseLine(scanner.Text())
		if quit {
			return nil
		}
		if ev == nil {
			continue
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}
