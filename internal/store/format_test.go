package store

import (
	"strings"
	"testing"
)

func TestFormatRecentEmpty(t *testing.T) {
	out := FormatRecent(nil)
	if !strings.Contains(out, "No reviews yet") {
		t.Errorf("expected empty message, got %q", out)
	}
}

func TestFormatRecent(t *testing.T) {
	entries := []Entry{
		{SessionID: "rev-001", Date: "2026-03-01", Items: 6, CoherenceScore: 0.73, TopicSwitches: 3, FocusScore: 45, OverallPattern: "mixed"},
		{SessionID: "rev-002-with-long-id", Date: "2026-03-08", Items: 4, CoherenceScore: 0.91, TopicSwitches: 1},
	}

	out := FormatRecent(entries)

	for _, want := range []string{"2026-03-01", "rev-001", "0.73", "45", "mixed", "2026-03-08"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output", want)
		}
	}

	// long IDs are truncated to the column width
	if strings.Contains(out, "rev-002-with-long-id") {
		t.Error("expected long session ID to be truncated")
	}
	if !strings.Contains(out, "rev-002-with-l") {
		t.Error("expected truncated session ID prefix")
	}

	// sessions without timing show a dash in the focus column
	lines := strings.Split(out, "\n")
	var secondRow string
	for _, l := range lines {
		if strings.Contains(l, "2026-03-08") {
			secondRow = l
		}
	}
	if !strings.Contains(secondRow, " - ") {
		t.Errorf("expected dash focus for session without timing: %q", secondRow)
	}
}
