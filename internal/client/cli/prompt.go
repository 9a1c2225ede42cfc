package cli

import (
	"context"
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"
)

// runPrompt is the TTY front-end: a go-prompt REPL with TAB completion over
// the discovered collection names and the built-in commands.
func (a *App) runPrompt(ctx context.Context) {
	p := prompt.New(
		func(line string) { a.done = a.dispatchSafe(ctx, line) },
		a.complete,
		prompt.OptionPrefix("lore> "),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool { return a.done }),
	)
	p.Run()

	// Run also returns on Ctrl-D; say goodbye if the user did not.
	if !a.done {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Exiting...")
	}
}

// complete suggests collections and built-ins for the first token only;
// identifiers are free text the API resolves, nothing to complete there.
func (a *App) complete(d prompt.Document) []prompt.Suggest {
	before := strings.TrimLeft(d.TextBeforeCursor(), " ")
	if strings.Contains(before, " ") {
		return nil
	}

	suggestions := make([]prompt.Suggest, 0, len(a.collections)+2)
	for _, c := range a.collections {
		suggestions = append(suggestions, prompt.Suggest{Text: c, Description: "list or fetch " + c})
	}
	suggestions = append(suggestions,
		prompt.Suggest{Text: "help", Description: "show help"},
		prompt.Suggest{Text: "exit", Description: "leave the application"},
	)

	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}
