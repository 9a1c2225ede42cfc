package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// runScanner is the non-TTY front-end: a plain line loop over the input
// reader. Interrupts are observed between iterations only; a blocking fetch
// runs to completion or timeout.
func (a *App) runScanner(ctx context.Context, scanner *bufio.Scanner) {
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out, "Exiting...")
			return
		default:
		}

		fmt.Fprint(a.out, "lore> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, "Exiting...")
			return
		}
		if a.dispatchSafe(ctx, scanner.Text()) {
			return
		}
	}
}

// dispatchSafe wraps dispatch so an unexpected failure in one iteration
// cannot take the loop down.
func (a *App) dispatchSafe(ctx context.Context, line string) (done bool) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error(ctx, "unexpected error in command loop", "panic", r)
		}
	}()
	return a.dispatch(ctx, line)
}

// dispatch executes one line of user input and reports whether the loop
// should terminate.
//
// Built-ins (exit/quit/q, help) match the whole trimmed line
// case-insensitively and always win over collection names. Anything else is
// a resource query: the first token must be a discovered collection, the
// remaining tokens joined with single spaces form an optional identifier.
// Usage errors are reported and never terminate the loop; fetch errors have
// already been logged by the services layer, so a missing result just means
// nothing is rendered.
func (a *App) dispatch(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	switch strings.ToLower(line) {
	case "exit", "quit", "q":
		fmt.Fprintln(a.out, "Bye!")
		return true
	case "help":
		a.presenter.Help(a.config.BaseURL, a.collections)
		return false
	}

	tokens, err := tokenize(line)
	if err != nil {
		a.log.Error(ctx, "unmatched quotes in input", "input", line)
		return false
	}
	if len(tokens) == 0 {
		return false
	}

	collection := tokens[0]
	if _, ok := a.known[collection]; !ok {
		a.log.Error(ctx, "unknown endpoint", "endpoint", collection, "hint", "type 'help' to see available endpoints")
		return false
	}

	identifier := strings.Join(tokens[1:], " ")

	if identifier == "" {
		items, err := a.catalog.List(ctx, collection)
		if err != nil {
			return false
		}
		a.presenter.List(collection, items)
		return false
	}

	record, err := a.catalog.Get(ctx, collection, identifier)
	if err != nil {
		return false
	}
	a.presenter.Detail(collection, identifier, record)
	return false
}
