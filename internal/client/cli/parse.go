package cli

import (
	shellwords "github.com/mattn/go-shellwords"
)

// tokenize splits a command line using shell-style quoting rules, so
// `spells "Acid Arrow"` yields the same tokens as `spells Acid Arrow`.
// Unmatched quotes surface as an error and the line is discarded.
func tokenize(line string) ([]string, error) {
	return shellwords.Parse(line)
}
