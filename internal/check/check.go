// Package check implements the doctor pass for mindsift: it verifies the
// data layout, configuration, and optional integrations without mutating
// anything.
package check

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johns/mindsift/internal/config"
	"github.com/johns/mindsift/internal/history"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Report aggregates all check results.
type Report struct {
	Results []Result
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	if len(r.Results) == 0 {
		return "mindsift check\n\n  no checks ran\n"
	}

	maxName := 0
	for _, res := range r.Results {
		if len(res.Name) > maxName {
			maxName = len(res.Name)
		}
	}

	var b strings.Builder
	b.WriteString("mindsift check\n\n")

	var passed, warnings, failures int
	for _, res := range r.Results {
		switch res.Status {
		case Pass:
			passed++
		case Warn:
			warnings++
		case Fail:
			failures++
		}
		fmt.Fprintf(&b, "  %-4s  %-*s  %s\n", res.Status, maxName, res.Name, res.Detail)
	}

	fmt.Fprintf(&b, "\n%d passed, %d warning, %d failure\n", passed, warnings, failures)
	return b.String()
}

// CheckConfig reports the resolved config path. Always passes; broken TOML
// is caught by config.Load before we get here.
func CheckConfig() Result {
	cfgPath := filepath.Join(config.ConfigDir(), "config.toml")
	return Result{
		Name:   "config",
		Status: Pass,
		Detail: config.CompressHome(cfgPath),
	}
}

// CheckDataPath checks whether the data directory exists.
func CheckDataPath(path string) Result {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return Result{Name: "data", Status: Pass, Detail: config.CompressHome(path)}
	}
	return Result{Name: "data", Status: Fail, Detail: path + " not found"}
}

// CheckInbox checks whether the capture inbox exists and reports pending
// capture count.
func CheckInbox(inbox string) Result {
	entries, err := os.ReadDir(inbox)
	if err != nil {
		return Result{Name: "inbox", Status: Warn, Detail: "inbox not found (run `mindsift watch` to create it)"}
	}
	pending := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			pending++
		}
	}
	return Result{Name: "inbox", Status: Pass, Detail: fmt.Sprintf("%s (%d pending)", config.CompressHome(inbox), pending)}
}

// CheckReviews checks whether the Reviews directory exists and reports
// report count.
func CheckReviews(reviewsDir string) Result {
	if _, err := os.ReadDir(reviewsDir); err != nil {
		return Result{Name: "reviews", Status: Warn, Detail: "Reviews/ not found (no reviews yet)"}
	}
	count := countMD(reviewsDir)
	return Result{Name: "reviews", Status: Pass, Detail: fmt.Sprintf("Reviews/ (%d reports)", count)}
}

func countMD(dir string) int {
	count := 0
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".md") {
			count++
		}
		return nil
	})
	return count
}

// CheckStateDir checks whether the .mindsift state directory exists.
func CheckStateDir(stateDir string) Result {
	if info, err := os.Stat(stateDir); err == nil && info.IsDir() {
		return Result{Name: "state", Status: Pass, Detail: ".mindsift/ found"}
	}
	return Result{Name: "state", Status: Warn, Detail: ".mindsift/ not found (fresh data dir)"}
}

// CheckIndex validates the review-index.json file.
func CheckIndex(stateDir string) Result {
	path := filepath.Join(stateDir, "review-index.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Name: "index", Status: Warn, Detail: "review-index.json not found yet"}
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return Result{Name: "index", Status: Fail, Detail: "review-index.json invalid JSON"}
	}

	return Result{Name: "index", Status: Pass, Detail: fmt.Sprintf("review-index.json (%d entries)", len(entries))}
}

// CheckHistory verifies the SQLite history database opens and reports row
// count. Disabled history passes without touching the file.
func CheckHistory(hcfg config.HistoryConfig, path string) Result {
	if !hcfg.Enabled {
		return Result{Name: "history", Status: Pass, Detail: "disabled"}
	}
	if _, err := os.Stat(path); err != nil {
		return Result{Name: "history", Status: Warn, Detail: "history.db not found yet"}
	}

	db, err := history.Open(path)
	if err != nil {
		return Result{Name: "history", Status: Fail, Detail: "history.db unreadable: " + err.Error()}
	}
	defer db.Close()

	count, err := db.Count()
	if err != nil {
		return Result{Name: "history", Status: Fail, Detail: "history.db query failed: " + err.Error()}
	}
	return Result{Name: "history", Status: Pass, Detail: fmt.Sprintf("history.db (%d sessions)", count)}
}

// CheckTimingExport checks the configured timing export location.
func CheckTimingExport(path string) Result {
	if path == "" {
		return Result{Name: "timing", Status: Pass, Detail: "not configured (mind-sweep only)"}
	}
	if _, err := os.Stat(path); err == nil {
		return Result{Name: "timing", Status: Pass, Detail: config.CompressHome(path)}
	}
	return Result{Name: "timing", Status: Warn, Detail: config.CompressHome(path) + " not found"}
}

// CheckGraph checks knowledge-graph configuration.
func CheckGraph(gcfg config.GraphConfig) Result {
	if !gcfg.Enabled {
		return Result{Name: "graph", Status: Pass, Detail: "disabled"}
	}
	if gcfg.BaseURL == "" {
		return Result{Name: "graph", Status: Fail, Detail: "enabled but base_url not set"}
	}
	keyEnv := gcfg.APIKeyEnv
	if keyEnv == "" {
		keyEnv = "MINDSIFT_GRAPH_KEY"
	}
	if os.Getenv(keyEnv) != "" {
		return Result{Name: "graph", Status: Pass, Detail: keyEnv + " set"}
	}
	return Result{Name: "graph", Status: Warn, Detail: keyEnv + " not set"}
}

// Run executes all checks against the given config and returns a report.
func Run(cfg config.Config) Report {
	var results []Result

	results = append(results, CheckConfig())
	results = append(results, CheckDataPath(cfg.DataPath))
	results = append(results, CheckInbox(cfg.Inbox))
	results = append(results, CheckReviews(cfg.ReviewsDir()))
	results = append(results, CheckStateDir(cfg.StateDir()))
	results = append(results, CheckIndex(cfg.StateDir()))
	results = append(results, CheckHistory(cfg.History, cfg.HistoryPath()))
	results = append(results, CheckTimingExport(cfg.TimingExport))
	results = append(results, CheckGraph(cfg.Graph))

	return Report{Results: results}
}
