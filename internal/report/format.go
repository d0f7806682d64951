package report

import (
	"fmt"
	"strings"
)

// Summary renders a compact terminal summary of a review.
func Summary(d ReviewData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "mindsift analyze — %s\n", d.Date)

	b.WriteString("\nMind Sweep\n")
	fmt.Fprintf(&b, "  %-20s %d\n", "items", d.Items)
	fmt.Fprintf(&b, "  %-20s %.2f\n", "coherence", d.MindSweep.CoherenceScore)
	fmt.Fprintf(&b, "  %-20s %d\n", "topic switches", d.MindSweep.TopicSwitches)
	fmt.Fprintf(&b, "  %-20s %d\n", "fragments", len(d.MindSweep.Fragmentation))
	fmt.Fprintf(&b, "  %-20s %.2f\n", "lexical diversity", d.MindSweep.LexicalDiversity)

	if d.Interaction.TotalInteractions > 0 {
		b.WriteString("\nInteractions\n")
		fmt.Fprintf(&b, "  %-20s %d\n", "turns", d.Interaction.TotalInteractions)
		fmt.Fprintf(&b, "  %-20s %.0f%%\n", "clarifications", d.Interaction.ClarificationRate*100)
		fmt.Fprintf(&b, "  %-20s %.0f%%\n", "off-topic", d.Interaction.OffTopicRate*100)
	}

	if d.Timing != nil {
		b.WriteString("\nFocus\n")
		fmt.Fprintf(&b, "  %-20s %d/100\n", "focus score", d.Timing.FocusScore)
		fmt.Fprintf(&b, "  %-20s %d/100\n", "hyperfocus", d.Timing.HyperfocusScore)
		fmt.Fprintf(&b, "  %-20s %.1f\n", "switches/hour", d.Timing.SwitchesPerHour)
		fmt.Fprintf(&b, "  %-20s %s\n", "interpretation", d.Timing.Interpretation)
	}

	if d.Patterns != nil && d.Patterns.PatternsDetected {
		b.WriteString("\nPatterns\n")
		for _, ind := range d.Patterns.Indicators {
			fmt.Fprintf(&b, "  %-20s %s\n", ind.Kind, ind.Severity)
		}
	}

	if d.Correlation != nil && d.Correlation.OverallPattern != "" {
		fmt.Fprintf(&b, "\nOverall: %s\n", d.Correlation.OverallPattern)
	}

	return b.String()
}
