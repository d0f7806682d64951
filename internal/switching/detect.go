// Package switching detects topic changes between consecutive capture
// items and aggregates interaction-level attention statistics.
package switching

import (
	"time"

	"github.com/johns/mindsift/internal/coherence"
	"github.com/johns/mindsift/internal/topic"
)

// abruptGap is the inter-item gap below which a topic switch counts as abrupt.
const abruptGap = 2 * time.Second

// UnknownGap marks the time between two items as not recorded.
const UnknownGap time.Duration = -1

// Event records a single detected topic switch between consecutive items.
type Event struct {
	FromTopic topic.Label `json:"from_topic"`
	ToTopic   topic.Label `json:"to_topic"`
	FromItem  string      `json:"from_item"`
	ToItem    string      `json:"to_item"`

	// IsAbrupt is true when the gap between items is known and under 2s.
	IsAbrupt bool `json:"is_abrupt"`

	// IncludesConfusion is true when the current item carries a confusion
	// marker. Always present, never omitted.
	IncludesConfusion bool `json:"includes_confusion"`
}

// Detect compares the current item against the previous one and returns a
// switch event when their topics differ, nil otherwise. A negative gap
// means the time between items is unknown; unknown gaps are never abrupt.
func Detect(current, previous string, gap time.Duration) *Event {
	if previous == "" {
		return nil
	}

	from := topic.Categorize(previous)
	to := topic.Categorize(current)
	if from == to {
		return nil
	}

	return &Event{
		FromTopic:         from,
		ToTopic:           to,
		FromItem:          previous,
		ToItem:            current,
		IsAbrupt:          gap >= 0 && gap < abruptGap,
		IncludesConfusion: coherence.HasConfusion(current),
	}
}
