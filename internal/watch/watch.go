// Package watch monitors the capture inbox and emits paths of capture
// files that are ready to process.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherFailed indicates the filesystem watcher failed to initialize.
var ErrWatcherFailed = errors.New("failed to initialize filesystem watcher")

// settleDelay is how long a capture file must stay quiet before it is
// considered fully written. The orchestrator appends lines during a live
// session, so emitting on first write would hand out partial captures.
const settleDelay = 2 * time.Second

// Watcher watches an inbox directory for finished capture files.
type Watcher struct {
	inbox   string
	watcher *fsnotify.Watcher
	events  chan string
	stop    chan struct{}
	settle  time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a watcher for the given inbox directory, creating it if
// needed.
func New(inbox string) (*Watcher, error) {
	if err := os.MkdirAll(inbox, 0o755); err != nil {
		return nil, fmt.Errorf("create inbox: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatcherFailed, err)
	}

	return &Watcher{
		inbox:   inbox,
		watcher: fsw,
		events:  make(chan string, 16),
		stop:    make(chan struct{}),
		settle:  settleDelay,
		timers:  make(map[string]*time.Timer),
	}, nil
}

// Start begins watching. Capture files already sitting in the inbox are
// emitted first so a restart never strands them.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.inbox); err != nil {
		return fmt.Errorf("watch inbox: %w", err)
	}

	entries, err := os.ReadDir(w.inbox)
	if err != nil {
		return fmt.Errorf("scan inbox: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() && isCapture(e.Name()) {
			w.emit(filepath.Join(w.inbox, e.Name()))
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and cleans up resources.
func (w *Watcher) Stop() {
	select {
	case <-w.stop:
		return
	default:
		close(w.stop)
		_ = w.watcher.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, t := range w.timers {
		t.Stop()
	}
}

// Events returns the channel of capture paths ready for processing.
func (w *Watcher) Events() <-chan string {
	return w.events
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !isCapture(event.Name) {
				continue
			}
			w.schedule(event.Name)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// keep watching
		}
	}
}

// schedule arms (or re-arms) the settle timer for a capture path. Each
// write pushes the emit out by the settle delay.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Reset(w.settle)
		return
	}

	w.timers[path] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.emit(path)
	})
}

// emit sends a path to the events channel without blocking.
func (w *Watcher) emit(path string) {
	select {
	case <-w.stop:
	case w.events <- path:
	default:
		// channel full, drop; the file stays in the inbox for rescan
	}
}

func isCapture(path string) bool {
	return strings.HasSuffix(filepath.Base(path), ".jsonl")
}
