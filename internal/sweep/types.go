// Package sweep parses mind-sweep capture files written by the review
// orchestrator: one JSON record per line, items and interactions
// interleaved in capture order.
package sweep

import "time"

// Entry represents a single line in a capture JSONL file.
type Entry struct {
	Type      string    `json:"type"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`

	// Present on item entries
	Text  string `json:"text,omitempty"`
	Phase string `json:"phase,omitempty"`

	// Present on interaction entries
	Role          string `json:"role,omitempty"`
	Content       string `json:"content,omitempty"`
	ExpectedTopic string `json:"expectedTopic,omitempty"`
}

// Item is one captured mind-sweep thought with its capture time.
type Item struct {
	Text      string
	Phase     string
	Timestamp time.Time
}

// Interaction is one coach/user conversation turn from the session log.
type Interaction struct {
	Role          string
	Content       string
	ExpectedTopic string
	Timestamp     time.Time
}

// Stats holds aggregated statistics for a parsed capture.
type Stats struct {
	SessionID    string
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	Items        int
	Interactions int
	TotalWords   int
}

// Capture holds the fully parsed result of a capture file.
type Capture struct {
	Items        []Item
	Interactions []Interaction
	Stats        Stats
}

// Texts returns the item texts in capture order.
func (c *Capture) Texts() []string {
	out := make([]string, len(c.Items))
	for i, it := range c.Items {
		out[i] = it.Text
	}
	return out
}
