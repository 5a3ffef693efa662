package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a config file's latest valid contents in memory.
// Invalid edits are logged and ignored; the previous config stays current.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	logger  *log.Logger
	mu      sync.RWMutex
	current FlappyConfig
	changed chan FlappyConfig
}

// NewWatcher starts watching path. The directory is watched rather than the
// file itself so editors that save by rename are still seen.
func NewWatcher(path string, initial FlappyConfig, logger *log.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", path, err)
	}
	return &Watcher{
		path:    filepath.Clean(path),
		fs:      fs,
		logger:  logger,
		current: initial,
		changed: make(chan FlappyConfig, 1),
	}, nil
}

// Current returns the most recent valid config.
func (w *Watcher) Current() FlappyConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Changes delivers each successfully reloaded config. Slow readers only see
// the newest value.
func (w *Watcher) Changes() <-chan FlappyConfig {
	return w.changed
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous", "path", w.path, "error", err)
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()
	w.logger.Info("config reloaded", "path", w.path)

	// Drop a stale pending value so the channel always holds the newest.
	select {
	case <-w.changed:
	default:
	}
	w.changed <- cfg
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
