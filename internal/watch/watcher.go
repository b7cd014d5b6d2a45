// Package watch re-runs a handler when a recipe file changes.
package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrStopped is returned by Start after Stop.
var ErrStopped = errors.New("watch: watcher stopped")

// DefaultDebounce is how long a file must be quiet before the handler runs.
const DefaultDebounce = 300 * time.Millisecond

// Handler is called with the watched path once its changes settle.
type Handler func(ctx context.Context, path string)

// Watcher watches one file for changes and calls a Handler after rapid
// saves settle.
//
// The parent directory is watched rather than the file, because editors
// often save by writing a new file and renaming it over the old one.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	dir      string
	handle   Handler
	logger   *zap.Logger
	debounce time.Duration
	pending  time.Time // zero when no change is waiting
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	closed   bool

	stats Stats
}

// Stats tracks watcher activity.
type Stats struct {
	Events        int
	Triggered     int
	Errors        int
	LastEventTime time.Time
	LastEventType string
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before the handler runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New creates a Watcher for path. Call Start to begin watching.
func New(path string, handle Handler, opts ...Option) (*Watcher, error) {
	if handle == nil {
		return nil, errors.New("watch: nil handler")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		path:     abs,
		dir:      filepath.Dir(abs),
		handle:   handle,
		logger:   zap.NewNop(),
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching. It does not block; the handler runs on the
// watcher's goroutine until Stop is called or ctx is done. If watching
// cannot begin the watcher is released and Start fails.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrStopped
	}
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		w.closed = true
		w.mu.Unlock()
		w.closeWatcher()
		return err
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info("watching recipe", zap.String("path", w.path))
	go w.run(ctx)
	return nil
}

// Stop stops the watcher, waits for its goroutine and releases it. It is
// safe to call more than once, and without Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	w.closeWatcher()
	w.logger.Debug("watcher stopped")
}

func (w *Watcher) closeWatcher() {
	if err := w.watcher.Close(); err != nil {
		w.logger.Error("close watcher", zap.Error(err))
	}
}

// Stats returns a snapshot of the watcher's counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 5
	if tick <= 0 {
		tick = time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.processDebounced(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return // chmod
	}

	w.logger.Debug("recipe event", zap.String("type", eventType), zap.String("path", event.Name))

	now := time.Now()
	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventTime = now
	w.stats.LastEventType = eventType
	w.pending = now
	w.mu.Unlock()
}

// processDebounced runs the handler once the last change is older than
// the debounce period and the file still exists.
func (w *Watcher) processDebounced(ctx context.Context) {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	if _, err := os.Stat(w.path); err != nil {
		w.logger.Debug("recipe gone, skipping", zap.String("path", w.path), zap.Error(err))
		return
	}

	w.mu.Lock()
	w.stats.Triggered++
	w.mu.Unlock()

	w.handle(ctx, w.path)
}
