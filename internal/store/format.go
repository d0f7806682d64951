package store

import (
	"fmt"
	"strings"
)

// FormatRecent renders recent index entries as aligned terminal output.
func FormatRecent(entries []Entry) string {
	if len(entries) == 0 {
		return "mindsift stats\n\n  No reviews yet. Run `mindsift analyze` first.\n"
	}

	var b strings.Builder
	b.WriteString("mindsift stats\n\n")
	fmt.Fprintf(&b, "  %-12s %-14s %5s %9s %8s %6s  %s\n",
		"Date", "Session", "Items", "Coherence", "Switches", "Focus", "Pattern")

	for _, e := range entries {
		id := e.SessionID
		if len(id) > 14 {
			id = id[:14]
		}
		focusStr := "-"
		if e.FocusScore > 0 {
			focusStr = fmt.Sprintf("%d", e.FocusScore)
		}
		pattern := e.OverallPattern
		if pattern == "" {
			pattern = "-"
		}
		fmt.Fprintf(&b, "  %-12s %-14s %5d %9.2f %8d %6s  %s\n",
			e.Date, id, e.Items, e.CoherenceScore, e.TopicSwitches, focusStr, pattern)
	}

	return b.String()
}
