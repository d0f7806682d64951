package trends

import (
	"fmt"
	"strings"
)

// Format renders a Result as aligned terminal output.
func Format(r Result) string {
	if r.TotalSessions == 0 {
		return "mindsift trends\n\n  No review history yet. Run `mindsift analyze` first.\n"
	}

	var b strings.Builder
	b.WriteString("mindsift trends\n")

	fmt.Fprintf(&b, "\nOverview (%d sessions, %d weeks)\n", r.TotalSessions, r.TotalWeeks)
	for _, m := range r.Metrics {
		arrow := directionArrow(m.Direction)
		detail := ""
		if m.Direction != "stable" && m.DeltaPct != 0 {
			detail = fmt.Sprintf(" (%+.0f%%)", m.DeltaPct)
		}
		avgStr := formatMetricValue(m.Name, m.OverallAvg)
		fmt.Fprintf(&b, "  %-16s %8s avg  %s %s%s\n", m.Name, avgStr, arrow, m.Direction, detail)
	}

	for _, m := range r.Metrics {
		if len(m.Points) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s by week\n", metricTitle(m.Name))
		fmt.Fprintf(&b, "  %-10s %8s %8s\n", "Week", "Value", "Avg")
		for _, p := range m.Points {
			valStr := formatMetricValue(m.Name, p.Value)
			avgStr := ""
			if p.RollingAvg > 0 {
				avgStr = formatMetricValue(m.Name, p.RollingAvg)
			}
			marker := ""
			if p.Anomaly {
				if p.RollingAvg > 0 && p.Value > p.RollingAvg {
					marker = "  ^ spike"
				} else {
					marker = "  v dip"
				}
			}
			fmt.Fprintf(&b, "  %-10s %8s %8s%s\n", p.WeekLabel, valStr, avgStr, marker)
		}
	}

	return b.String()
}

func directionArrow(direction string) string {
	switch direction {
	case "improving":
		return "↑"
	case "worsening":
		return "↓"
	default:
		return "→"
	}
}

func metricTitle(name string) string {
	switch name {
	case "coherence":
		return "Coherence Score"
	case "focus":
		return "Focus Score"
	case "topic switches":
		return "Topic Switches per Session"
	case "fragments":
		return "Fragmentation Flags per Session"
	default:
		return name
	}
}

// formatMetricValue picks a precision per metric.
func formatMetricValue(name string, v float64) string {
	switch name {
	case "coherence":
		return fmt.Sprintf("%.2f", v)
	case "focus":
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
