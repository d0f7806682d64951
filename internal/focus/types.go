// Package focus turns time-tracking switch statistics into a 0-100 focus
// score, qualitative attention-pattern indicators, and correlations with
// mind-sweep coherence.
package focus

import "encoding/json"

// DataTypeDetailed marks a timing export with full switch analysis.
// Anything else degrades to a "no patterns detected" result.
const DataTypeDetailed = "detailed"

// TimingData is the input contract for the external time-tracking export.
// The upstream integration performs its own context-switch detection; this
// package only consumes its aggregated output.
type TimingData struct {
	DataType       string         `json:"data_type"`
	FocusMetrics   MetricsSummary `json:"focus_metrics"`
	SwitchAnalysis SwitchAnalysis `json:"switch_analysis"`
}

// MetricsSummary is the pre-computed focus summary carried by a timing
// export. Missing fields decode to zero and degrade gracefully.
type MetricsSummary struct {
	FocusScore          float64 `json:"focus_score"`
	SwitchesPerHour     float64 `json:"switches_per_hour"`
	HyperfocusScore     float64 `json:"hyperfocus_score"`
	FocusPeriodsCount   int     `json:"focus_periods_count"`
	ScatterPeriodsCount int     `json:"scatter_periods_count"`
}

// SwitchAnalysis holds raw switch statistics from the time tracker.
type SwitchAnalysis struct {
	SwitchesPerHour float64         `json:"switches_per_hour"`
	FocusPeriods    []Period        `json:"focus_periods"`
	ScatterPeriods  []Period        `json:"scatter_periods"`
	SwitchPatterns  []SwitchPattern `json:"switch_patterns"`
}

// Period is one sustained-focus or scattered stretch of tracked time.
type Period struct {
	DurationMinutes float64 `json:"duration_minutes"`
	Start           string  `json:"start,omitempty"`
	End             string  `json:"end,omitempty"`
}

// SwitchPattern counts switches into a given application.
type SwitchPattern struct {
	App   string `json:"app"`
	Count int    `json:"count"`
}

// UnmarshalJSON accepts both the object form and the compact
// ["AppName", count] pair arrays the time tracker exports.
func (p *SwitchPattern) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) >= 1 {
			if err := json.Unmarshal(pair[0], &p.App); err != nil {
				return err
			}
		}
		if len(pair) >= 2 {
			if err := json.Unmarshal(pair[1], &p.Count); err != nil {
				return err
			}
		}
		return nil
	}

	type plain SwitchPattern
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*p = SwitchPattern(obj)
	return nil
}

// Metrics is the computed focus result for one tracked period.
type Metrics struct {
	FocusScore         int     `json:"focus_score"`
	HyperfocusScore    int     `json:"hyperfocus_score"`
	SwitchesPerHour    float64 `json:"switches_per_hour"`
	FocusPeriodCount   int     `json:"focus_periods_count"`
	ScatterPeriodCount int     `json:"scatter_periods_count"`
	Interpretation     string  `json:"interpretation"`
}

// IndicatorKind identifies a detected attention pattern.
type IndicatorKind string

const (
	LowFocus           IndicatorKind = "low_focus"
	ModerateFocus      IndicatorKind = "moderate_focus"
	ExcessiveSwitching IndicatorKind = "excessive_switching"
	ScatterEpisodes    IndicatorKind = "scatter_episodes"
	Hyperfocus         IndicatorKind = "hyperfocus"
	AppHopping         IndicatorKind = "app_hopping"
)

// Severity grades how strongly an indicator fired.
type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Indicator is a severity-tagged observation derived from focus metrics.
// It drives user-facing recommendations; it is not a diagnosis.
type Indicator struct {
	Kind     IndicatorKind `json:"kind"`
	Severity Severity      `json:"severity"`
	Value    float64       `json:"value"`
	Message  string        `json:"message"`
}

// Analysis holds the pattern-detection result over a timing export.
type Analysis struct {
	PatternsDetected bool        `json:"patterns_detected"`
	Indicators       []Indicator `json:"adhd_indicators"`
	Recommendations  []string    `json:"recommendations"`
	FocusProfile     string      `json:"focus_profile,omitempty"`
}

// InsightKind identifies a timing/mind-sweep correlation.
type InsightKind string

const (
	DoubleFragmentation InsightKind = "double_fragmentation"
	StrongAlignment     InsightKind = "strong_alignment"
	Mismatch            InsightKind = "mismatch"
	HighSwitching       InsightKind = "high_switching"
)

// Insight is one correlation between timing signals and mind-sweep output.
type Insight struct {
	Kind    InsightKind `json:"kind"`
	Message string      `json:"message"`
	Insight string      `json:"insight"`
}

// CorrelationResult holds all detected correlations and the dominant pattern.
type CorrelationResult struct {
	Correlations   []Insight `json:"correlations"`
	OverallPattern string    `json:"overall_pattern"`
}
