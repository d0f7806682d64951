// Package coherence scores how organized a batch of mind-sweep items
// appears, combining topic-switch rate, lexical diversity, and
// fragmentation markers into a single 0-1 score.
package coherence

import (
	"strings"

	"github.com/johns/mindsift/internal/topic"
)

// Penalty weights and thresholds for coherence scoring.
const (
	switchPenaltyWeight = 0.3
	fragPenaltyWeight   = 0.4

	lowDiversityThreshold  = 0.3
	highDiversityThreshold = 0.8
	lowDiversityPenalty    = 0.2
	highDiversityPenalty   = 0.1

	shortFragmentTokens = 3
)

// FlagKind distinguishes the two fragmentation signals.
type FlagKind string

const (
	ShortFragment       FlagKind = "short_fragment"
	ConfusionExpression FlagKind = "confusion_expression"
)

// Flag marks a fragmentation indicator on one input item. An item can carry
// both a short-fragment flag and a confusion flag, but at most one confusion
// flag (first marker wins).
type Flag struct {
	Index   int      `json:"index"`
	Kind    FlagKind `json:"kind"`
	Marker  string   `json:"marker,omitempty"`
	Content string   `json:"content"`
}

// Result holds the full coherence analysis for a list of captured items.
type Result struct {
	CoherenceScore    float64       `json:"coherence_score"`
	TopicSwitches     int           `json:"topic_switches"`
	TopicSequence     []topic.Label `json:"topic_sequence"`
	LexicalDiversity  float64       `json:"lexical_diversity"`
	Fragmentation     []Flag        `json:"fragmentation_indicators"`
	AverageItemLength float64       `json:"average_item_length"`
}

// Analyze computes the coherence result for an ordered list of mind-sweep
// items. Empty input returns a zero-valued result rather than faulting;
// the score is always clamped to [0, 1].
func Analyze(items []string) Result {
	if len(items) == 0 {
		return Result{}
	}

	seq := make([]topic.Label, len(items))
	for i, item := range items {
		seq[i] = topic.Categorize(item)
	}

	switches := 0
	for i := 1; i < len(seq); i++ {
		if seq[i] != seq[i-1] {
			switches++
		}
	}

	diversity := lexicalDiversity(items)
	flags := detectFragmentation(items)

	totalTokens := 0
	for _, item := range items {
		totalTokens += len(strings.Fields(item))
	}
	avgLength := float64(totalTokens) / float64(len(items))

	return Result{
		CoherenceScore:    score(len(items), switches, diversity, len(flags)),
		TopicSwitches:     switches,
		TopicSequence:     seq,
		LexicalDiversity:  diversity,
		Fragmentation:     flags,
		AverageItemLength: avgLength,
	}
}

// score computes the composite coherence score, starting at 1.0 and
// subtracting switch, diversity, and fragmentation penalties.
func score(itemCount, switches int, diversity float64, flagCount int) float64 {
	pairs := itemCount - 1
	if pairs < 1 {
		pairs = 1
	}
	switchPenalty := float64(switches) / float64(pairs) * switchPenaltyWeight

	diversityPenalty := 0.0
	switch {
	case diversity < lowDiversityThreshold:
		diversityPenalty = lowDiversityPenalty
	case diversity > highDiversityThreshold:
		diversityPenalty = highDiversityPenalty
	}

	fragPenalty := float64(flagCount) / float64(itemCount) * fragPenaltyWeight

	return clamp01(1.0 - switchPenalty - diversityPenalty - fragPenalty)
}

// lexicalDiversity computes unique/total word counts over all items joined
// into one lowercase word stream. Returns 0 when there are no words.
func lexicalDiversity(items []string) float64 {
	words := strings.Fields(strings.ToLower(strings.Join(items, " ")))
	if len(words) == 0 {
		return 0
	}
	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[w] = true
	}
	return float64(len(unique)) / float64(len(words))
}

// detectFragmentation flags short fragments and confusion expressions,
// index-ordered. The two checks are independent per item.
func detectFragmentation(items []string) []Flag {
	var flags []Flag
	for i, item := range items {
		if len(strings.Fields(item)) < shortFragmentTokens {
			flags = append(flags, Flag{Index: i, Kind: ShortFragment, Content: item})
		}
		if marker, ok := ConfusionMarker(item); ok {
			flags = append(flags, Flag{Index: i, Kind: ConfusionExpression, Marker: marker, Content: item})
		}
	}
	return flags
}

// clamp01 limits a value to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
