package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T, inbox string) *Watcher {
	t.Helper()
	w, err := New(inbox)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.settle = 50 * time.Millisecond
	t.Cleanup(w.Stop)
	return w
}

func waitForEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case path := <-w.Events():
		return path
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func TestNewCreatesInbox(t *testing.T) {
	inbox := filepath.Join(t.TempDir(), "inbox")
	newTestWatcher(t, inbox)

	if _, err := os.Stat(inbox); err != nil {
		t.Errorf("expected inbox dir to be created: %v", err)
	}
}

func TestStartEmitsExistingCaptures(t *testing.T) {
	inbox := t.TempDir()
	existing := filepath.Join(inbox, "rev-old.jsonl")
	if err := os.WriteFile(existing, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// non-capture files are ignored
	if err := os.WriteFile(filepath.Join(inbox, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t, inbox)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	got := waitForEvent(t, w)
	if got != existing {
		t.Errorf("expected %q, got %q", existing, got)
	}

	select {
	case extra := <-w.Events():
		t.Errorf("unexpected extra event: %q", extra)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchEmitsAfterSettle(t *testing.T) {
	inbox := t.TempDir()
	w := newTestWatcher(t, inbox)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	path := filepath.Join(inbox, "rev-new.jsonl")
	if err := os.WriteFile(path, []byte(`{"type":"item"}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := waitForEvent(t, w)
	if got != path {
		t.Errorf("expected %q, got %q", path, got)
	}
}

func TestWatchDebouncesRepeatedWrites(t *testing.T) {
	inbox := t.TempDir()
	w := newTestWatcher(t, inbox)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	path := filepath.Join(inbox, "rev-live.jsonl")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := f.WriteString(`{"type":"item"}` + "\n"); err != nil {
			t.Fatal(err)
		}
		f.Sync()
		time.Sleep(10 * time.Millisecond)
	}
	f.Close()

	got := waitForEvent(t, w)
	if got != path {
		t.Errorf("expected %q, got %q", path, got)
	}

	// a single settled emit for the burst of writes
	select {
	case extra := <-w.Events():
		t.Errorf("unexpected extra event: %q", extra)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchIgnoresNonCaptures(t *testing.T) {
	inbox := t.TempDir()
	w := newTestWatcher(t, inbox)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := os.WriteFile(filepath.Join(inbox, "scratch.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events():
		t.Errorf("unexpected event for non-capture: %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w := newTestWatcher(t, t.TempDir())
	w.Stop()
	w.Stop()
}

func TestIsCapture(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"rev-001.jsonl", true},
		{"/inbox/rev-001.jsonl", true},
		{"rev-001.jsonl.zst", false},
		{"notes.txt", false},
		{"rev-001.json", false},
	}
	for _, tt := range tests {
		if got := isCapture(tt.path); got != tt.want {
			t.Errorf("isCapture(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
