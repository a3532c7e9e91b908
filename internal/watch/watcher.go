// Package watch provides a polling file watcher for the preview
// server's live reload.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Change represents a detected file change.
type Change struct {
	// Path is the changed file.
	Path string

	// Deleted reports whether the file was removed.
	Deleted bool
}

// Config configures the file watcher.
type Config struct {
	// Path is the directory to watch.
	Path string

	// Exts limits watching to these extensions (e.g. ".html").
	// Empty watches every file.
	Exts []string

	// Interval is the polling interval.
	Interval time.Duration
}

// Watcher monitors a directory for changes by polling modification
// times. Page sources are small trees of HTML files, so polling keeps
// the watcher dependency-free and portable.
type Watcher struct {
	config     Config
	onChange   func(Change)
	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// New creates a Watcher for the given configuration.
func New(config Config) *Watcher {
	if config.Interval == 0 {
		config.Interval = 250 * time.Millisecond
	}
	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback invoked for each detected change.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching. It blocks until ctx is canceled or Stop is
// called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.scan(nil)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.Poll()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// Poll runs one scan cycle, reporting changes through the callback.
// Start calls this on its ticker; tests may call it directly.
func (w *Watcher) Poll() {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()

	var changes []Change
	w.scan(func(c Change) {
		changes = append(changes, c)
	})

	if callback == nil {
		return
	}
	for _, c := range changes {
		callback(c)
	}
}

// scan walks the watched directory, updating the timestamp map and
// reporting differences via report (nil on the initial scan).
func (w *Watcher) scan(report func(Change)) {
	seen := make(map[string]bool)

	filepath.Walk(w.config.Path, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !w.matches(p) {
			return nil
		}
		seen[p] = true

		w.mu.Lock()
		last, exists := w.timestamps[p]
		modTime := info.ModTime()
		changed := !exists || modTime.After(last)
		if changed {
			w.timestamps[p] = modTime
		}
		w.mu.Unlock()

		if changed && report != nil {
			report(Change{Path: p})
		}
		return nil
	})

	w.mu.Lock()
	for p := range w.timestamps {
		if !seen[p] {
			delete(w.timestamps, p)
			if report != nil {
				report(Change{Path: p, Deleted: true})
			}
		}
	}
	w.mu.Unlock()
}

func (w *Watcher) matches(path string) bool {
	if len(w.config.Exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.config.Exts {
		if ext == e {
			return true
		}
	}
	return false
}
