// Package report renders weekly-review results as markdown notes and
// terminal summaries.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/johns/mindsift/internal/coherence"
	"github.com/johns/mindsift/internal/focus"
	"github.com/johns/mindsift/internal/switching"
)

// ReviewData holds everything needed to render a review note.
type ReviewData struct {
	Date         string // YYYY-MM-DD
	SessionID    string
	Items        int
	Interactions int
	Duration     int // minutes

	MindSweep    coherence.Result
	Switches     []switching.Event
	Interaction  switching.Summary
	Timing       *focus.Metrics           // nil when no timing export
	Patterns     *focus.Analysis          // nil when no timing export
	Correlation  *focus.CorrelationResult // nil when no timing export
}

// ReviewNote renders a full markdown review note from ReviewData.
func ReviewNote(d ReviewData) string {
	var b strings.Builder

	// Frontmatter
	b.WriteString("---\n")
	b.WriteString(fmt.Sprintf("date: %s\n", d.Date))
	b.WriteString("type: weekly-review\n")
	b.WriteString(fmt.Sprintf("session_id: \"%s\"\n", d.SessionID))
	b.WriteString(fmt.Sprintf("items: %d\n", d.Items))
	if d.Interactions > 0 {
		b.WriteString(fmt.Sprintf("interactions: %d\n", d.Interactions))
	}
	if d.Duration > 0 {
		b.WriteString(fmt.Sprintf("duration_minutes: %d\n", d.Duration))
	}
	b.WriteString(fmt.Sprintf("coherence_score: %.2f\n", d.MindSweep.CoherenceScore))
	b.WriteString(fmt.Sprintf("topic_switches: %d\n", d.MindSweep.TopicSwitches))
	if d.Timing != nil {
		b.WriteString(fmt.Sprintf("focus_score: %d\n", d.Timing.FocusScore))
	}
	if d.Correlation != nil && d.Correlation.OverallPattern != "" {
		b.WriteString(fmt.Sprintf("pattern: \"%s\"\n", escapeYAML(d.Correlation.OverallPattern)))
	}
	b.WriteString("tags: [mindsift-review]\n")
	b.WriteString("---\n\n")

	b.WriteString(fmt.Sprintf("# Weekly Review — %s\n\n", d.Date))

	// Mind-Sweep Coherence
	b.WriteString("## Mind-Sweep Coherence\n\n")
	b.WriteString(fmt.Sprintf("- **Coherence score:** %.2f\n", d.MindSweep.CoherenceScore))
	b.WriteString(fmt.Sprintf("- **Topic switches:** %d\n", d.MindSweep.TopicSwitches))
	b.WriteString(fmt.Sprintf("- **Lexical diversity:** %.2f\n", d.MindSweep.LexicalDiversity))
	b.WriteString(fmt.Sprintf("- **Average item length:** %.1f words\n", d.MindSweep.AverageItemLength))
	b.WriteString("\n")

	// Topic Flow
	if len(d.MindSweep.TopicSequence) > 0 {
		b.WriteString("## Topic Flow\n\n")
		var topics []string
		for _, t := range d.MindSweep.TopicSequence {
			topics = append(topics, string(t))
		}
		b.WriteString(strings.Join(topics, " → "))
		b.WriteString("\n\n")
	}

	// Fragmentation
	if len(d.MindSweep.Fragmentation) > 0 {
		b.WriteString("## Fragmentation\n\n")
		for _, f := range d.MindSweep.Fragmentation {
			switch f.Kind {
			case coherence.ConfusionExpression:
				b.WriteString(fmt.Sprintf("- item %d: confusion (%q)\n", f.Index+1, f.Content))
			default:
				b.WriteString(fmt.Sprintf("- item %d: short fragment (%q)\n", f.Index+1, f.Content))
			}
		}
		b.WriteString("\n")
	}

	// Task Switches
	if len(d.Switches) > 0 {
		b.WriteString("## Task Switches\n\n")
		for _, e := range d.Switches {
			marker := ""
			if e.IsAbrupt {
				marker = " (abrupt)"
			}
			if e.IncludesConfusion {
				marker += " (confusion)"
			}
			b.WriteString(fmt.Sprintf("- %s → %s%s\n", e.FromTopic, e.ToTopic, marker))
		}
		b.WriteString("\n")
	}

	// Interaction Patterns
	if d.Interaction.TotalInteractions > 0 {
		b.WriteString("## Interaction Patterns\n\n")
		b.WriteString(fmt.Sprintf("- **Clarification rate:** %.0f%%\n", d.Interaction.ClarificationRate*100))
		b.WriteString(fmt.Sprintf("- **Off-topic rate:** %.0f%%\n", d.Interaction.OffTopicRate*100))
		b.WriteString(fmt.Sprintf("- **Average response length:** %.1f words\n", d.Interaction.AverageResponseLength))
		b.WriteString("\n")
	}

	// Focus Metrics
	if d.Timing != nil {
		b.WriteString("## Focus Metrics\n\n")
		b.WriteString(fmt.Sprintf("- **Focus score:** %d/100\n", d.Timing.FocusScore))
		b.WriteString(fmt.Sprintf("- **Hyperfocus score:** %d/100\n", d.Timing.HyperfocusScore))
		b.WriteString(fmt.Sprintf("- **Switches per hour:** %.1f\n", d.Timing.SwitchesPerHour))
		b.WriteString(fmt.Sprintf("- %s\n", d.Timing.Interpretation))
		b.WriteString("\n")
	}

	// Attention Patterns
	if d.Patterns != nil && d.Patterns.PatternsDetected {
		b.WriteString("## Attention Patterns\n\n")
		for _, ind := range d.Patterns.Indicators {
			b.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", ind.Kind, ind.Severity, ind.Message))
		}
		if len(d.Patterns.Recommendations) > 0 {
			b.WriteString("\n### Recommendations\n\n")
			for _, r := range d.Patterns.Recommendations {
				b.WriteString(fmt.Sprintf("- %s\n", r))
			}
		}
		b.WriteString("\n")
	}

	// Correlations
	if d.Correlation != nil && len(d.Correlation.Correlations) > 0 {
		b.WriteString("## Correlations\n\n")
		for _, c := range d.Correlation.Correlations {
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", c.Kind, c.Insight))
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("**Overall:** %s\n\n", d.Correlation.OverallPattern))
	}

	// Footer
	b.WriteString("---\n")
	b.WriteString("*mindsift v0.1.0*\n")

	return b.String()
}

// NoteFilename returns the filename for a review note: YYYY-MM-DD-<id>.md
func NoteFilename(date, sessionID string) string {
	id := sessionID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s-%s.md", date, id)
}

// NoteRelPath returns the relative path within the data dir for a review note.
func NoteRelPath(date, sessionID string) string {
	return filepath.Join("Reviews", NoteFilename(date, sessionID))
}

func escapeYAML(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
