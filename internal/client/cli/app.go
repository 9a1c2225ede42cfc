package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/lorekeeper/internal/client/config"
	"github.com/dmitrijs2005/lorekeeper/internal/client/services"
	"github.com/dmitrijs2005/lorekeeper/internal/logging"
)

// isTerminal is a test seam; tests force the scanner front-end through it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// App drives the interactive loop. The collection set is discovered once in
// Run and stays immutable for the process lifetime.
type App struct {
	config    *config.Config
	catalog   services.Catalog
	log       logging.Logger
	presenter *Presenter

	in  io.Reader
	out io.Writer

	collections []string
	known       map[string]struct{}
	done        bool
}

func NewApp(cfg *config.Config, catalog services.Catalog, log logging.Logger) *App {
	return &App{
		config:    cfg,
		catalog:   catalog,
		log:       log,
		in:        os.Stdin,
		out:       os.Stdout,
		presenter: NewPresenter(os.Stdout),
	}
}

// Run discovers the collection set and enters the command loop. A discovery
// failure is the only fatal condition; the caller turns it into a non-zero
// exit status.
func (a *App) Run(ctx context.Context) error {
	collections, err := a.catalog.DiscoverCollections(ctx)
	if err != nil {
		return fmt.Errorf("could not initialize API endpoints: %w", err)
	}
	a.setCollections(collections)

	fmt.Fprintln(a.out, "Interactive API navigator. Type 'help' for instructions, 'exit' to quit.")

	if isTerminal() {
		a.runPrompt(ctx)
		return nil
	}
	a.runScanner(ctx, bufio.NewScanner(a.in))
	return nil
}

func (a *App) setCollections(collections []string) {
	a.collections = collections
	a.known = make(map[string]struct{}, len(collections))
	for _, c := range collections {
		a.known[c] = struct{}{}
	}
}
