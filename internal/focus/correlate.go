package focus

import (
	"math"

	"github.com/johns/mindsift/internal/coherence"
)

// Correlation thresholds comparing focus score (0-100) against coherence
// score scaled to the same range.
const (
	bothLowThreshold    = 50.0
	bothHighThreshold   = 70.0
	mismatchGap         = 30.0
	highSwitchesPerHour = 5.0
	highTopicSwitches   = 5
)

// Overall-pattern wording, first-match priority order.
const (
	PatternDoubleFragmentation = "Significant ADHD symptoms - comprehensive support needed"
	PatternStrongAlignment     = "Strong alignment - focus systems are working"
	PatternHighSwitching       = "High switching on both channels - reduce open loops before deep work"
	PatternMismatch            = "Mixed signals - time tracking and mind-sweep disagree"
	PatternMixed               = "Mixed indicators - no dominant pattern"
	PatternNone                = "No clear pattern detected"
)

// Correlate cross-references timing focus signals with mind-sweep coherence.
// Either input being absent yields an empty result with no pattern.
func Correlate(td *TimingData, ms *coherence.Result) CorrelationResult {
	if td == nil || ms == nil {
		return CorrelationResult{OverallPattern: PatternNone}
	}

	focusScore := td.FocusMetrics.FocusScore
	cohScore := ms.CoherenceScore * 100

	var insights []Insight

	switch {
	case focusScore < bothLowThreshold && cohScore < bothLowThreshold:
		insights = append(insights, Insight{
			Kind:    DoubleFragmentation,
			Message: "Low focus score and low mind-sweep coherence",
			Insight: "Attention fragmentation shows up in both time tracking and thought capture",
		})
	case focusScore > bothHighThreshold && cohScore > bothHighThreshold:
		insights = append(insights, Insight{
			Kind:    StrongAlignment,
			Message: "High focus score and high mind-sweep coherence",
			Insight: "Tracked focus and organized thinking reinforce each other this week",
		})
	case math.Abs(focusScore-cohScore) > mismatchGap:
		insights = append(insights, Insight{
			Kind:    Mismatch,
			Message: "Focus score and mind-sweep coherence diverge sharply",
			Insight: "One channel looks fine while the other struggles - check which reflects reality",
		})
	}

	if td.FocusMetrics.SwitchesPerHour > highSwitchesPerHour && ms.TopicSwitches > highTopicSwitches {
		insights = append(insights, Insight{
			Kind:    HighSwitching,
			Message: "Frequent app switching and frequent topic switching",
			Insight: "Switching pressure is high in both work and thought - too many open loops",
		})
	}

	return CorrelationResult{
		Correlations:   insights,
		OverallPattern: overallPattern(insights),
	}
}

// overallPattern picks the dominant pattern by fixed priority.
func overallPattern(insights []Insight) string {
	if len(insights) == 0 {
		return PatternNone
	}

	priority := []struct {
		kind    InsightKind
		pattern string
	}{
		{DoubleFragmentation, PatternDoubleFragmentation},
		{StrongAlignment, PatternStrongAlignment},
		{HighSwitching, PatternHighSwitching},
		{Mismatch, PatternMismatch},
	}

	for _, p := range priority {
		for _, in := range insights {
			if in.Kind == p.kind {
				return p.pattern
			}
		}
	}
	return PatternMixed
}
