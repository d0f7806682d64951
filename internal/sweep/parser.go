package sweep

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFile reads and parses a mind-sweep capture JSONL file.
func ParseFile(path string) (*Capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a JSONL capture from a reader. Unparseable lines are skipped
// rather than failing the whole capture; unknown record types are ignored.
func Parse(r io.Reader) (*Capture, error) {
	c := &Capture{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}

		switch entry.Type {
		case "item":
			if entry.Text == "" {
				continue
			}
			c.Items = append(c.Items, Item{
				Text:      entry.Text,
				Phase:     entry.Phase,
				Timestamp: entry.Timestamp,
			})
		case "interaction":
			c.Interactions = append(c.Interactions, Interaction{
				Role:          entry.Role,
				Content:       entry.Content,
				ExpectedTopic: entry.ExpectedTopic,
				Timestamp:     entry.Timestamp,
			})
		default:
			continue
		}

		trackStats(&c.Stats, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan capture: %w", err)
	}

	if !c.Stats.StartTime.IsZero() && !c.Stats.EndTime.IsZero() {
		c.Stats.Duration = c.Stats.EndTime.Sub(c.Stats.StartTime)
	}
	c.Stats.Items = len(c.Items)
	c.Stats.Interactions = len(c.Interactions)

	return c, nil
}

func trackStats(s *Stats, e Entry) {
	if s.SessionID == "" && e.SessionID != "" {
		s.SessionID = e.SessionID
	}

	if !e.Timestamp.IsZero() {
		if s.StartTime.IsZero() || e.Timestamp.Before(s.StartTime) {
			s.StartTime = e.Timestamp
		}
		if s.EndTime.IsZero() || e.Timestamp.After(s.EndTime) {
			s.EndTime = e.Timestamp
		}
	}

	switch e.Type {
	case "item":
		s.TotalWords += len(strings.Fields(e.Text))
	case "interaction":
		s.TotalWords += len(strings.Fields(e.Content))
	}
}
