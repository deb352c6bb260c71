package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gravelworks/grumble-cli/internal/logger"
)

// debounceWindow coalesces bursts of filesystem events. Editors often
// write a config file in several operations (truncate, write, rename).
const debounceWindow = 250 * time.Millisecond

// Watcher reloads a ConfigStore when its backing file changes on disk
// and notifies an optional callback. It lets a running REPL pick up
// edits made to ~/.grumble/config.toml in another terminal.
type Watcher struct {
	store    *ConfigStore
	onReload func()
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a watcher for the store's config file. onReload may
// be nil.
func NewWatcher(store *ConfigStore, onReload func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: renames and atomic saves
	// replace the inode, which would silently drop a file watch.
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{store: store, onReload: onReload, fsw: fsw}, nil
}

// Run watches until ctx is cancelled. It is intended to run in its own
// goroutine.
func (w *Watcher) Run(ctx context.Context) {
	target := filepath.Base(w.store.Path())

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.store.Load(); err != nil {
				logger.Warn("Failed to reload config: %v", err)
				continue
			}
			logger.Debug("Config reloaded from %s", w.store.Path())
			if w.onReload != nil {
				w.onReload()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Config watcher error: %v", err)
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
