package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Presenter renders query results to the output stream. Styling degrades to
// plain text on dumb terminals and in tests (lipgloss color profile).
type Presenter struct {
	out    io.Writer
	header lipgloss.Style
	rule   lipgloss.Style
	hint   lipgloss.Style
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out:    out,
		header: lipgloss.NewStyle().Bold(true),
		rule:   lipgloss.NewStyle().Faint(true),
		hint:   lipgloss.NewStyle().Italic(true),
	}
}

// extractor tries to pull one displayable string out of an item summary.
type extractor func(map[string]any) (string, bool)

// extractors are tried in order and short-circuit on the first success:
// a name field, then an index field, then a segment derived from the
// item's self-referential URL.
var extractors = []extractor{extractName, extractIndex, extractURLSegment}

func extractName(m map[string]any) (string, bool) {
	if s, ok := m["name"].(string); ok && s != "" {
		return s, true
	}
	return "", false
}

func extractIndex(m map[string]any) (string, bool) {
	switch v := m["index"].(type) {
	case string:
		if v != "" {
			return v, true
		}
	case float64:
		return formatJSONNumber(v), true
	}
	return "", false
}

// extractURLSegment falls back to the last non-empty path segment of a
// "url" field. A purely numeric trailing segment is rendered as "ID: <n>"
// when the URL has more than one segment.
func extractURLSegment(m map[string]any) (string, bool) {
	s, ok := m["url"].(string)
	if !ok || s == "" {
		return "", false
	}
	parts := strings.Split(strings.Trim(s, "/"), "/")
	last := ""
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			last = parts[i]
			break
		}
	}
	if last == "" {
		return "", false
	}
	if len(parts) > 1 && isDigits(last) {
		return "ID: " + last, true
	}
	return last, true
}

func displayName(m map[string]any) (string, bool) {
	for _, ex := range extractors {
		if s, ok := ex(m); ok {
			return s, true
		}
	}
	return "", false
}

// List prints one line per item summary, a footer rule and a usage hint for
// the collection. Items yielding no displayable text are printed raw; if no
// item yielded any, that is called out explicitly.
func (p *Presenter) List(collection string, items []any) {
	if len(items) == 0 {
		fmt.Fprintf(p.out, "No %s found.\n", collection)
		return
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.header.Render(fmt.Sprintf("--- Available %s ---", capitalize(collection))))

	displayed := 0
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			fmt.Fprintf(p.out, "- %v\n", item)
			continue
		}
		if name, ok := displayName(m); ok {
			fmt.Fprintf(p.out, "- %s\n", name)
			displayed++
			continue
		}
		fmt.Fprintf(p.out, "- %v\n", m)
	}
	if displayed == 0 {
		fmt.Fprintf(p.out, "Could not extract displayable names or indices from the %s list.\n", collection)
	}

	fmt.Fprintln(p.out, p.rule.Render(strings.Repeat("-", 31)))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.hint.Render(fmt.Sprintf("Use '%s <name or index>' to get details (JSON format).", collection)))
}

// Detail prints the full record pretty-printed as indented JSON.
func (p *Presenter) Detail(collection string, identifier string, record any) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.header.Render(fmt.Sprintf("--- Details for: %s/%s (JSON) ---", collection, identifier)))

	b, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Fprintf(p.out, "%v\n", record)
	} else {
		fmt.Fprintln(p.out, string(b))
	}

	fmt.Fprintln(p.out, p.rule.Render(strings.Repeat("-", 43)))
	fmt.Fprintln(p.out)
}

// helpColumns is how many endpoint names go on one help line.
const helpColumns = 3

// Help prints the base URL, a usage line, the discovered collections in
// columns, and the built-in command reference.
func (p *Presenter) Help(baseURL string, collections []string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.header.Render("--- Help ---"))
	fmt.Fprintf(p.out, "API base URL: %s\n", baseURL)
	fmt.Fprintln(p.out, "Usage: <endpoint> [name or index ...]")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Available endpoints (fetched from the API):")

	colWidth := 0
	for _, c := range collections {
		if len(c)+2 > colWidth {
			colWidth = len(c) + 2
		}
	}
	for i, c := range collections {
		fmt.Fprintf(p.out, "%-*s", colWidth, c)
		if (i+1)%helpColumns == 0 {
			fmt.Fprintln(p.out)
		}
	}
	if len(collections)%helpColumns != 0 {
		fmt.Fprintln(p.out)
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Commands:")
	fmt.Fprintln(p.out, "  <endpoint>             : list all items for that endpoint (e.g. 'monsters')")
	fmt.Fprintln(p.out, "  <endpoint> <name ...>  : show details for one item (raw JSON)")
	fmt.Fprintln(p.out, "                           names can be several words (e.g. 'spells Acid Arrow')")
	fmt.Fprintln(p.out, "  help                   : show this help message")
	fmt.Fprintln(p.out, "  exit / quit / q        : leave the application")
	fmt.Fprintln(p.out, p.rule.Render("--- End Help ---"))
	fmt.Fprintln(p.out)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// formatJSONNumber renders a decoded JSON number without a trailing ".0"
// for integral values.
func formatJSONNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", f)
}
