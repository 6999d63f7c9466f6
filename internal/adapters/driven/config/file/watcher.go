package file

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long the config file must be quiet before a
// change is reported. Editors and the settings commands often produce
// several write events for a single save.
const watchDebounce = 100 * time.Millisecond

// Watcher monitors the preference file and signals when another process
// rewrites it, so a running session can reload its appearance live.
type Watcher struct {
	store   *ConfigStore
	watcher *fsnotify.Watcher
	changes chan struct{}

	running bool
	stopCh  chan struct{}
	mu      sync.Mutex
}

// NewWatcher creates a watcher for the given store's config file.
func NewWatcher(store *ConfigStore) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	return &Watcher{
		store:   store,
		watcher: fsWatcher,
		changes: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}, nil
}

// Changes returns a channel that receives a signal after the config
// file has been rewritten and reloaded into the store.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Start begins watching the config file's directory. Watching the
// directory rather than the file survives atomic rename-based saves.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.store.Path())); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}

	go w.processEvents()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.stopCh)

	return w.watcher.Close()
}

// processEvents handles file system events, debouncing bursts of
// writes into a single reload and signal.
func (w *Watcher) processEvents() {
	var timer *time.Timer

	fire := func() {
		if err := w.store.Load(); err != nil {
			return
		}
		select {
		case w.changes <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Name != w.store.Path() {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, fire)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
