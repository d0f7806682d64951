// Package review runs the full weekly-review pipeline: parse a capture,
// score it, persist the results, and write the markdown report.
package review

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/johns/mindsift/internal/archive"
	"github.com/johns/mindsift/internal/coherence"
	"github.com/johns/mindsift/internal/config"
	"github.com/johns/mindsift/internal/focus"
	"github.com/johns/mindsift/internal/history"
	"github.com/johns/mindsift/internal/kgraph"
	"github.com/johns/mindsift/internal/report"
	"github.com/johns/mindsift/internal/store"
	"github.com/johns/mindsift/internal/sweep"
	"github.com/johns/mindsift/internal/switching"
	"github.com/johns/mindsift/internal/timing"
	"github.com/johns/mindsift/internal/topic"
)

// Result holds the output of processing one capture.
type Result struct {
	SessionID  string
	ReportPath string
	Data       report.ReviewData
	Skipped    bool
	Reason     string
}

// Process analyzes a capture file and writes the review report.
// timingPath overrides the configured timing export; pass "" to use the
// config default. Missing timing data degrades to mind-sweep-only analysis.
func Process(capturePath, timingPath string, cfg config.Config) (*Result, error) {
	c, err := sweep.ParseFile(capturePath)
	if err != nil {
		return nil, fmt.Errorf("parse capture: %w", err)
	}

	// Skip trivial captures
	if len(c.Items) < 2 {
		return &Result{Skipped: true, Reason: "trivial capture (< 2 items)"}, nil
	}

	sessionID := c.Stats.SessionID
	if sessionID == "" {
		sessionID = sessionIDFromPath(capturePath)
	}

	idx, err := store.Load(cfg.StateDir())
	if err != nil {
		log.Printf("warning: could not load index: %v", err)
		idx = &store.Index{Entries: make(map[string]store.Entry)}
	}

	if idx.Has(sessionID) {
		return &Result{SessionID: sessionID, Skipped: true, Reason: "already processed"}, nil
	}

	date := c.Stats.StartTime.Format("2006-01-02")
	if date == "0001-01-01" {
		date = time.Now().Format("2006-01-02")
	}

	// Mind-sweep analysis
	msResult := coherence.Analyze(c.Texts())
	events := switchEvents(c.Items)
	interactions := switching.AnalyzeInteractions(convertInteractions(c.Interactions))

	data := report.ReviewData{
		Date:         date,
		SessionID:    sessionID,
		Items:        len(c.Items),
		Interactions: len(c.Interactions),
		Duration:     int(c.Stats.Duration.Minutes()),
		MindSweep:    msResult,
		Switches:     events,
		Interaction:  interactions,
	}

	// Timing analysis (optional)
	if tp := resolveTimingPath(timingPath, cfg); tp != "" {
		td, err := timing.Load(tp)
		if err != nil {
			log.Printf("warning: timing export unusable: %v", err)
		} else {
			metrics := focus.CalculateMetrics(td.SwitchAnalysis)
			analysis := focus.AnalyzeSwitches(td)
			corr := focus.Correlate(td, &msResult)
			data.Timing = &metrics
			data.Patterns = &analysis
			data.Correlation = &corr
		}
	}

	// Write report
	markdown := report.ReviewNote(data)
	relPath := report.NoteRelPath(date, sessionID)
	absPath := filepath.Join(cfg.DataPath, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("create reviews dir: %w", err)
	}
	if err := os.WriteFile(absPath, []byte(markdown), 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	// Persist full result document
	if _, err := store.WriteResult(cfg.StateDir(), sessionID, data); err != nil {
		log.Printf("warning: could not write result document: %v", err)
	}

	// Update index
	entry := store.Entry{
		SessionID:      sessionID,
		Date:           date,
		ReportPath:     relPath,
		CreatedAt:      time.Now(),
		Items:          len(c.Items),
		Interactions:   len(c.Interactions),
		CoherenceScore: msResult.CoherenceScore,
		TopicSwitches:  msResult.TopicSwitches,
		Fragments:      len(msResult.Fragmentation),
	}
	if data.Timing != nil {
		entry.FocusScore = data.Timing.FocusScore
		entry.HyperfocusScore = data.Timing.HyperfocusScore
	}
	if data.Correlation != nil {
		entry.OverallPattern = data.Correlation.OverallPattern
	}
	idx.Add(entry)
	if err := idx.Save(); err != nil {
		log.Printf("warning: could not save index: %v", err)
	}

	// Record in history database
	if cfg.History.Enabled {
		recordHistory(cfg, entry)
	}

	// Archive the raw capture
	if cfg.Archive.Compress {
		if _, err := archive.Archive(capturePath, sessionID, cfg.ArchiveDir()); err != nil {
			log.Printf("warning: could not archive capture: %v", err)
		}
	}

	// Publish to knowledge graph (graceful: skip on error or if disabled)
	if cfg.Graph.Enabled {
		publishGraph(cfg, data)
	}

	return &Result{
		SessionID:  sessionID,
		ReportPath: relPath,
		Data:       data,
	}, nil
}

// switchEvents walks items in capture order and collects topic switches.
// Items without timestamps get an unknown gap so they are never counted
// as abrupt.
func switchEvents(items []sweep.Item) []switching.Event {
	var events []switching.Event
	for i := 1; i < len(items); i++ {
		gap := switching.UnknownGap
		if !items[i].Timestamp.IsZero() && !items[i-1].Timestamp.IsZero() {
			gap = items[i].Timestamp.Sub(items[i-1].Timestamp)
		}
		if e := switching.Detect(items[i].Text, items[i-1].Text, gap); e != nil {
			events = append(events, *e)
		}
	}
	return events
}

func convertInteractions(in []sweep.Interaction) []switching.Interaction {
	out := make([]switching.Interaction, len(in))
	for i, it := range in {
		out[i] = switching.Interaction{
			Role:          it.Role,
			Content:       it.Content,
			ExpectedTopic: topic.Label(it.ExpectedTopic),
		}
	}
	return out
}

// resolveTimingPath picks the explicit path, then the configured default.
// Returns "" when neither exists on disk.
func resolveTimingPath(explicit string, cfg config.Config) string {
	if explicit != "" {
		return explicit
	}
	if cfg.TimingExport == "" {
		return ""
	}
	if _, err := os.Stat(cfg.TimingExport); err != nil {
		return ""
	}
	return cfg.TimingExport
}

func recordHistory(cfg config.Config, entry store.Entry) {
	db, err := history.Open(cfg.HistoryPath())
	if err != nil {
		log.Printf("warning: could not open history db: %v", err)
		return
	}
	defer db.Close()

	row := history.Row{
		SessionID:     entry.SessionID,
		Date:          entry.Date,
		Coherence:     entry.CoherenceScore,
		FocusScore:    entry.FocusScore,
		Hyperfocus:    entry.HyperfocusScore,
		TopicSwitches: entry.TopicSwitches,
		Fragments:     entry.Fragments,
		Items:         entry.Items,
	}
	if err := db.Record(row); err != nil {
		log.Printf("warning: could not record history: %v", err)
	}
}

func publishGraph(cfg config.Config, data report.ReviewData) {
	timeout := time.Duration(cfg.Graph.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	node := kgraph.ReviewNode{
		SessionID:      data.SessionID,
		Date:           data.Date,
		CoherenceScore: data.MindSweep.CoherenceScore,
		TopicSwitches:  data.MindSweep.TopicSwitches,
		Topics:         uniqueTopics(data.MindSweep.TopicSequence),
	}
	if data.Timing != nil {
		node.FocusScore = data.Timing.FocusScore
	}
	if data.Correlation != nil {
		node.OverallPattern = data.Correlation.OverallPattern
	}

	if _, err := kgraph.Publish(ctx, cfg.Graph, node); err != nil {
		log.Printf("warning: graph publish failed: %v", err)
	}
}

// uniqueTopics returns distinct topics preserving first-seen order.
func uniqueTopics(seq []topic.Label) []string {
	seen := make(map[topic.Label]bool)
	var out []string
	for _, t := range seq {
		if !seen[t] {
			seen[t] = true
			out = append(out, string(t))
		}
	}
	return out
}

func sessionIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
