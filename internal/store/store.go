// Package store persists review results as JSON: one document per session
// plus an index file for listing and dedupe.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Entry represents one review session in the index.
type Entry struct {
	SessionID       string    `json:"session_id"`
	Date            string    `json:"date"` // YYYY-MM-DD
	ReportPath      string    `json:"report_path,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	Items           int       `json:"items"`
	Interactions    int       `json:"interactions,omitempty"`
	CoherenceScore  float64   `json:"coherence_score"`
	TopicSwitches   int       `json:"topic_switches"`
	Fragments       int       `json:"fragments"`
	FocusScore      int       `json:"focus_score,omitempty"`
	HyperfocusScore int       `json:"hyperfocus_score,omitempty"`
	OverallPattern  string    `json:"overall_pattern,omitempty"`
}

// Index manages the review-index.json file.
type Index struct {
	path    string
	Entries map[string]Entry `json:"entries"` // keyed by session_id
}

// Load reads the index from disk, creating an empty one if it doesn't exist.
func Load(stateDir string) (*Index, error) {
	path := filepath.Join(stateDir, "review-index.json")

	idx := &Index{
		path:    path,
		Entries: make(map[string]Entry),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	if err := json.Unmarshal(data, &idx.Entries); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	return idx, nil
}

// Save writes the index to disk.
func (idx *Index) Save() error {
	if err := os.MkdirAll(filepath.Dir(idx.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := json.MarshalIndent(idx.Entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	return os.WriteFile(idx.path, data, 0o644)
}

// Add inserts or updates a session entry.
func (idx *Index) Add(entry Entry) {
	idx.Entries[entry.SessionID] = entry
}

// Has checks if a session is already indexed.
func (idx *Index) Has(sessionID string) bool {
	_, ok := idx.Entries[sessionID]
	return ok
}

// Recent returns up to n entries, most recent first.
func (idx *Index) Recent(n int) []Entry {
	entries := make([]Entry, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// WriteResult writes the full analysis document for a session next to the
// index, as <session-id>.json.
func WriteResult(stateDir, sessionID string, result any) (string, error) {
	dir := filepath.Join(stateDir, "results")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	path := filepath.Join(dir, sessionID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}
	return path, nil
}
