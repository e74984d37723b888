package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the config file when it changes on disk and publishes
// the resolved theme whenever it differs from the last one seen.
type Watcher struct {
	mu       sync.Mutex
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration

	themes  chan bool
	pending time.Time
	dark    bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	stopped bool
}

// NewWatcher prepares a watcher for path. dark is the theme currently in
// effect; only changes away from it are published.
func NewWatcher(path string, dark bool, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		logger:   logger,
		debounce: 150 * time.Millisecond,
		themes:   make(chan bool, 1),
		dark:     dark,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Themes delivers theme changes. Only the latest pending value is kept.
func (w *Watcher) Themes() <-chan bool {
	return w.themes
}

// Start watches the file's directory, so editors that replace the file on
// save are still seen. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.stopped {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	w.running = true
	go w.run(ctx)

	w.logger.Debug("watching config", zap.String("path", w.path))
	return nil
}

// Stop ends the watch loop and releases the watcher. Safe to call more
// than once, and before Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	running := w.running
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	if running {
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("close config watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.pending = time.Now()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))

		case <-ticker.C:
			if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
				continue
			}
			w.pending = time.Time{}
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// Half-written files are common mid-save; the next write retries.
		w.logger.Warn("reload config", zap.Error(err))
		return
	}

	dark := cfg.Theme.Resolve()
	if dark == w.dark {
		return
	}
	w.dark = dark
	w.logger.Info("theme changed on disk", zap.String("theme", string(cfg.Theme)))

	// Drop a stale value the host has not picked up yet.
	select {
	case <-w.themes:
	default:
	}
	w.themes <- dark
}
