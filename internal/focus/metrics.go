package focus

import "math"

// Focus-score shaping constants. The piecewise base curve and the
// bonus-then-clamp, penalty-then-clamp ordering are load-bearing:
// reports are compared against stored golden values.
const (
	focusPeriodBonus  = 5
	maxFocusBonus     = 20
	scatterPenalty    = 10
	maxScatterPenalty = 30
	hyperfocusMinMean = 60.0 // minutes
)

// Interpretation strings, banded on the final focus score.
const (
	InterpretExcellent     = "Excellent focus - minimal context switching"
	InterpretGood          = "Good focus - occasional task switching"
	InterpretModerate      = "Moderate focus - regular task switching"
	InterpretScattered     = "Scattered focus - frequent context switching"
	InterpretVeryScattered = "Very scattered - constant context switching"
)

// CalculateMetrics derives focus and hyperfocus scores from raw switch
// statistics. Scores are clamped to [0, 100] and rounded to integers.
func CalculateMetrics(sw SwitchAnalysis) Metrics {
	score := baseScore(sw.SwitchesPerHour)

	bonus := float64(len(sw.FocusPeriods) * focusPeriodBonus)
	if bonus > maxFocusBonus {
		bonus = maxFocusBonus
	}
	score += bonus
	if score > 100 {
		score = 100
	}

	penalty := float64(len(sw.ScatterPeriods) * scatterPenalty)
	if penalty > maxScatterPenalty {
		penalty = maxScatterPenalty
	}
	score -= penalty
	if score < 0 {
		score = 0
	}

	final := int(math.Round(score))

	return Metrics{
		FocusScore:         final,
		HyperfocusScore:    int(math.Round(hyperfocusScore(sw.FocusPeriods))),
		SwitchesPerHour:    sw.SwitchesPerHour,
		FocusPeriodCount:   len(sw.FocusPeriods),
		ScatterPeriodCount: len(sw.ScatterPeriods),
		Interpretation:     interpret(final),
	}
}

// baseScore maps switches/hour onto the piecewise focus curve.
func baseScore(s float64) float64 {
	switch {
	case s <= 3:
		return 90 + (3-s)*3
	case s <= 6:
		return 70 + (6-s)*6.67
	case s <= 10:
		return 40 + (10-s)*7.5
	default:
		return math.Max(10, 40-(s-10)*3)
	}
}

// hyperfocusScore scores sustained single-topic periods. Only fires when
// the mean focus-period duration reaches an hour.
func hyperfocusScore(periods []Period) float64 {
	if len(periods) == 0 {
		return 0
	}
	var total float64
	for _, p := range periods {
		total += p.DurationMinutes
	}
	mean := total / float64(len(periods))
	if mean < hyperfocusMinMean {
		return 0
	}
	return math.Min(100, mean/60*50)
}

// interpret bands the final focus score into a qualitative reading.
func interpret(score int) string {
	switch {
	case score >= 80:
		return InterpretExcellent
	case score >= 60:
		return InterpretGood
	case score >= 40:
		return InterpretModerate
	case score >= 20:
		return InterpretScattered
	default:
		return InterpretVeryScattered
	}
}
