package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johns/mindsift/internal/config"
	"github.com/johns/mindsift/internal/history"
)

func TestCheckDataPath_Pass(t *testing.T) {
	dir := t.TempDir()
	r := CheckDataPath(dir)
	if r.Status != Pass {
		t.Errorf("expected Pass, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckDataPath_Fail(t *testing.T) {
	r := CheckDataPath("/nonexistent/data/path")
	if r.Status != Fail {
		t.Errorf("expected Fail, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckInbox_Pass(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "rev-1.jsonl"), []byte("{}\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "rev-2.jsonl"), []byte("{}\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644)

	r := CheckInbox(dir)
	if r.Status != Pass {
		t.Errorf("expected Pass, got %s: %s", r.Status, r.Detail)
	}
	if !strings.Contains(r.Detail, "(2 pending)") {
		t.Errorf("unexpected detail: %s", r.Detail)
	}
}

func TestCheckInbox_Warn(t *testing.T) {
	r := CheckInbox(filepath.Join(t.TempDir(), "missing"))
	if r.Status != Warn {
		t.Errorf("expected Warn, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckReviews_Pass(t *testing.T) {
	dir := t.TempDir()
	reviewsDir := filepath.Join(dir, "Reviews")
	os.Mkdir(reviewsDir, 0o755)
	os.WriteFile(filepath.Join(reviewsDir, "2026-03-01-a.md"), []byte("# Review"), 0o644)
	os.WriteFile(filepath.Join(reviewsDir, "2026-03-08-b.md"), []byte("# Review"), 0o644)

	r := CheckReviews(reviewsDir)
	if r.Status != Pass {
		t.Errorf("expected Pass, got %s: %s", r.Status, r.Detail)
	}
	if r.Detail != "Reviews/ (2 reports)" {
		t.Errorf("unexpected detail: %s", r.Detail)
	}
}

func TestCheckReviews_Warn(t *testing.T) {
	r := CheckReviews(filepath.Join(t.TempDir(), "Reviews"))
	if r.Status != Warn {
		t.Errorf("expected Warn, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckStateDir(t *testing.T) {
	dir := t.TempDir()
	if r := CheckStateDir(dir); r.Status != Pass {
		t.Errorf("expected Pass, got %s", r.Status)
	}
	if r := CheckStateDir(filepath.Join(dir, "missing")); r.Status != Warn {
		t.Errorf("expected Warn, got %s", r.Status)
	}
}

func TestCheckIndex(t *testing.T) {
	dir := t.TempDir()

	// Missing
	if r := CheckIndex(dir); r.Status != Warn {
		t.Errorf("missing: expected Warn, got %s", r.Status)
	}

	// Invalid
	path := filepath.Join(dir, "review-index.json")
	os.WriteFile(path, []byte("not json"), 0o644)
	if r := CheckIndex(dir); r.Status != Fail {
		t.Errorf("invalid: expected Fail, got %s", r.Status)
	}

	// Valid
	os.WriteFile(path, []byte(`{"s1":{"session_id":"s1"}}`), 0o644)
	r := CheckIndex(dir)
	if r.Status != Pass {
		t.Errorf("valid: expected Pass, got %s: %s", r.Status, r.Detail)
	}
	if !strings.Contains(r.Detail, "(1 entries)") {
		t.Errorf("unexpected detail: %s", r.Detail)
	}
}

func TestCheckHistory_Disabled(t *testing.T) {
	r := CheckHistory(config.HistoryConfig{Enabled: false}, "/nonexistent/history.db")
	if r.Status != Pass || r.Detail != "disabled" {
		t.Errorf("expected Pass/disabled, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckHistory_NotYet(t *testing.T) {
	r := CheckHistory(config.HistoryConfig{Enabled: true}, filepath.Join(t.TempDir(), "history.db"))
	if r.Status != Warn {
		t.Errorf("expected Warn, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckHistory_Pass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := history.Open(path)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	if err := db.Record(history.Row{SessionID: "s1", Date: "2026-03-01", Coherence: 0.8}); err != nil {
		t.Fatalf("record: %v", err)
	}
	db.Close()

	r := CheckHistory(config.HistoryConfig{Enabled: true}, path)
	if r.Status != Pass {
		t.Errorf("expected Pass, got %s: %s", r.Status, r.Detail)
	}
	if !strings.Contains(r.Detail, "(1 sessions)") {
		t.Errorf("unexpected detail: %s", r.Detail)
	}
}

func TestCheckTimingExport(t *testing.T) {
	if r := CheckTimingExport(""); r.Status != Pass {
		t.Errorf("unconfigured: expected Pass, got %s", r.Status)
	}

	path := filepath.Join(t.TempDir(), "timing.json")
	if r := CheckTimingExport(path); r.Status != Warn {
		t.Errorf("missing: expected Warn, got %s", r.Status)
	}

	os.WriteFile(path, []byte("{}"), 0o644)
	if r := CheckTimingExport(path); r.Status != Pass {
		t.Errorf("present: expected Pass, got %s", r.Status)
	}
}

func TestCheckGraph(t *testing.T) {
	if r := CheckGraph(config.GraphConfig{Enabled: false}); r.Status != Pass {
		t.Errorf("disabled: expected Pass, got %s", r.Status)
	}

	if r := CheckGraph(config.GraphConfig{Enabled: true}); r.Status != Fail {
		t.Errorf("no base_url: expected Fail, got %s", r.Status)
	}

	cfg := config.GraphConfig{Enabled: true, BaseURL: "http://localhost:7474", APIKeyEnv: "MINDSIFT_CHECK_TEST_KEY"}
	if r := CheckGraph(cfg); r.Status != Warn {
		t.Errorf("no key: expected Warn, got %s", r.Status)
	}

	t.Setenv("MINDSIFT_CHECK_TEST_KEY", "k")
	if r := CheckGraph(cfg); r.Status != Pass {
		t.Errorf("key set: expected Pass, got %s", r.Status)
	}
}

func TestReportFormat(t *testing.T) {
	rep := Report{Results: []Result{
		{Name: "data", Status: Pass, Detail: "~/mindsift"},
		{Name: "inbox", Status: Warn, Detail: "inbox not found"},
		{Name: "graph", Status: Fail, Detail: "enabled but base_url not set"},
	}}

	out := rep.Format()
	for _, want := range []string{"mindsift check", "pass", "warn", "FAIL", "1 passed, 1 warning, 1 failure"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in report", want)
		}
	}
	if !rep.HasFailures() {
		t.Error("expected HasFailures")
	}
}

func TestReportNoFailures(t *testing.T) {
	rep := Report{Results: []Result{{Name: "data", Status: Pass}}}
	if rep.HasFailures() {
		t.Error("unexpected failure")
	}
}
