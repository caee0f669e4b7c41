// Package watch reports changes to a single file. It watches the file's
// directory rather than the file, so editors that save by rename-and-replace
// are still seen.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 500 * time.Millisecond

// Watcher follows one file at a time. Watch may be called again to switch files.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	log      *slog.Logger

	mu   sync.Mutex
	dir  string
	path string
}

// New returns a Watcher. debounce <= 0 uses DefaultDebounce.
func New(debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{fs: fs, debounce: debounce, log: log}, nil
}

// Watch switches the watched file to path.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if abs == w.path {
		return nil
	}
	if dir != w.dir {
		if w.dir != "" {
			_ = w.fs.Remove(w.dir)
		}
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watch: %s: %w", dir, err)
		}
		w.dir = dir
	}
	w.path = abs
	w.log.Debug("watching file", "path", abs)
	return nil
}

// Path returns the watched file, or "" if none.
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Run delivers debounced change notifications for the watched file to onChange
// until ctx is done or the watcher is closed. onChange runs on Run's goroutine,
// so no call is in flight once Run has returned.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case <-fire:
			fire = nil
			if ctx.Err() != nil {
				return
			}
			if path := w.Path(); path != "" {
				onChange(path)
			}
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path := w.Path()
			if path == "" || filepath.Clean(ev.Name) != path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", "error", err)
		}
	}
}

// Close stops watching and ends Run.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
