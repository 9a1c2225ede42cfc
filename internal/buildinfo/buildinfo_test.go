package buildinfo

import (
	"bytes"
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	Version, Commit, Date = "", "", ""
	if got := Summary(); got != "dev" {
		t.Fatalf("Summary() = %q, want %q", got, "dev")
	}

	Version, Commit, Date = "1.2.3", "abcdef1234567890", "2025-01-01"
	got := Summary()
	for _, want := range []string{"1.2.3", "commit=abcdef1", "date=2025-01-01"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Summary() = %q, missing %q", got, want)
		}
	}
}

func TestPrintBuildData(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)
	if !strings.Contains(buf.String(), "lorekeeper") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
