package focus

import (
	"fmt"
	"strings"
)

// Indicator thresholds over the export's focus metrics.
const (
	lowFocusThreshold      = 40.0
	moderateFocusThreshold = 60.0
	excessiveSwitchesHour  = 8.0
	scatterEpisodeCount    = 2
	hyperfocusThreshold    = 80.0
	appHoppingMinPatterns  = 3
)

// distractionApps mark browser/communication destinations whose switch
// patterns suggest app hopping.
var distractionApps = []string{"safari", "chrome", "mail", "slack"}

// Recommendation wording per indicator kind. Fixed strings: weekly reports
// diff against previous output.
var recommendations = map[IndicatorKind]string{
	LowFocus:           "Try time-blocking: 25-minute focused sprints with 5-minute breaks",
	ModerateFocus:      "Group similar tasks together to cut context switching",
	ExcessiveSwitching: "Turn off notifications during focus blocks",
	ScatterEpisodes:    "Notice what triggers scatter periods - often an unclear next action",
	Hyperfocus:         "Hyperfocus is a strength - set timers to surface for breaks",
	AppHopping:         "Close browser and chat windows you don't need before starting",
}

// AnalyzeSwitches derives attention-pattern indicators from a timing export.
// Nil input or a non-detailed export yields a no-patterns result; a detailed
// export with missing sub-structures is treated as all-zero metrics rather
// than an error.
func AnalyzeSwitches(td *TimingData) Analysis {
	if td == nil || td.DataType != DataTypeDetailed {
		return Analysis{}
	}

	fm := td.FocusMetrics
	var a Analysis

	add := func(kind IndicatorKind, sev Severity, value float64, msg string) {
		a.Indicators = append(a.Indicators, Indicator{Kind: kind, Severity: sev, Value: value, Message: msg})
		a.Recommendations = append(a.Recommendations, recommendations[kind])
	}

	switch {
	case fm.FocusScore < lowFocusThreshold:
		add(LowFocus, SeverityHigh, fm.FocusScore,
			fmt.Sprintf("Focus score %.0f/100 indicates fragmented attention", fm.FocusScore))
	case fm.FocusScore < moderateFocusThreshold:
		add(ModerateFocus, SeverityMedium, fm.FocusScore,
			fmt.Sprintf("Focus score %.0f/100 shows room for improvement", fm.FocusScore))
	}

	if fm.SwitchesPerHour > excessiveSwitchesHour {
		add(ExcessiveSwitching, SeverityHigh, fm.SwitchesPerHour,
			fmt.Sprintf("%.1f context switches per hour is well above baseline", fm.SwitchesPerHour))
	}

	if fm.ScatterPeriodsCount > scatterEpisodeCount {
		add(ScatterEpisodes, SeverityMedium, float64(fm.ScatterPeriodsCount),
			fmt.Sprintf("%d scatter episodes detected in the tracked window", fm.ScatterPeriodsCount))
	}

	if fm.HyperfocusScore > hyperfocusThreshold {
		add(Hyperfocus, SeverityInfo, fm.HyperfocusScore,
			fmt.Sprintf("Hyperfocus score %.0f/100 - long unbroken single-task periods", fm.HyperfocusScore))
	}

	if n := distractionPatternCount(td.SwitchAnalysis.SwitchPatterns); n >= appHoppingMinPatterns {
		add(AppHopping, SeverityMedium, float64(n),
			fmt.Sprintf("%d of the top switch destinations are browser/communication apps", n))
	}

	a.PatternsDetected = len(a.Indicators) > 0
	a.FocusProfile = focusProfile(fm)
	return a
}

// distractionPatternCount counts switch patterns pointing at known
// browser/communication apps.
func distractionPatternCount(patterns []SwitchPattern) int {
	count := 0
	for _, p := range patterns {
		lower := strings.ToLower(p.App)
		for _, app := range distractionApps {
			if strings.Contains(lower, app) {
				count++
				break
			}
		}
	}
	return count
}

// focusProfile labels the overall attention shape. First match wins.
func focusProfile(fm MetricsSummary) string {
	switch {
	case fm.HyperfocusScore > 70 && fm.FocusScore > 60:
		return "hyperfocus-capable"
	case fm.FocusScore > 70:
		return "steady focus"
	case fm.ScatterPeriodsCount > fm.FocusPeriodsCount:
		return "scattered"
	case fm.FocusPeriodsCount > 0 && fm.FocusScore < 50:
		return "mixed"
	default:
		return "variable"
	}
}
