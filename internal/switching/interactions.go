package switching

import (
	"strings"

	"github.com/johns/mindsift/internal/topic"
)

// clarificationPhrases are literal markers of the user asking the coach to
// re-explain something.
var clarificationPhrases = []string{
	"what do you mean",
	"can you explain",
	"not sure what",
	"don't understand",
}

// Interaction is one logged turn of a review conversation. ExpectedTopic is
// empty when the session phase has no topic expectation.
type Interaction struct {
	Role          string      `json:"role"`
	Content       string      `json:"content"`
	ExpectedTopic topic.Label `json:"expected_topic,omitempty"`
}

// Summary aggregates interaction-level attention statistics.
type Summary struct {
	ClarificationRate      float64 `json:"clarification_rate"`
	OffTopicRate           float64 `json:"off_topic_rate"`
	AverageResponseLength  float64 `json:"average_response_length"`
	ResponseLengthVariance float64 `json:"response_length_variance"`
	TotalInteractions      int     `json:"total_interactions"`
}

// AnalyzeInteractions computes rates and response-length statistics over an
// ordered interaction log. Empty input yields an all-zero summary.
func AnalyzeInteractions(interactions []Interaction) Summary {
	n := len(interactions)
	if n == 0 {
		return Summary{}
	}

	clarifications := 0
	offTopic := 0
	lengths := make([]float64, n)

	for i, in := range interactions {
		lower := strings.ToLower(in.Content)
		for _, phrase := range clarificationPhrases {
			if strings.Contains(lower, phrase) {
				clarifications++
				break
			}
		}

		if in.Role == "user" && in.ExpectedTopic != "" {
			if topic.Categorize(in.Content) != in.ExpectedTopic {
				offTopic++
			}
		}

		lengths[i] = float64(len(strings.Fields(in.Content)))
	}

	var sum float64
	for _, l := range lengths {
		sum += l
	}
	mean := sum / float64(n)

	var sumSq float64
	for _, l := range lengths {
		diff := l - mean
		sumSq += diff * diff
	}
	variance := sumSq / float64(n)

	return Summary{
		ClarificationRate:      float64(clarifications) / float64(n),
		OffTopicRate:           float64(offTopic) / float64(n),
		AverageResponseLength:  mean,
		ResponseLengthVariance: variance,
		TotalInteractions:      n,
	}
}
