// Package cli provides the interactive lorekeeper command-line client.
//
// It wires configuration, the catalog service and a command loop that reads
// resource queries of the form
//
//	<endpoint> [name or index ...]
//
// plus the built-ins help and exit/quit/q. On a terminal the loop runs as a
// go-prompt REPL with TAB completion over the discovered endpoints; with
// piped input it falls back to a plain scanner loop.
//
// The loop is started via App.Run(ctx), which discovers the collection set
// first and blocks until the user exits. Fetch failures are logged by the
// lower layers and never terminate the loop.
package cli
