package preset

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDebounce coalesces the bursts of events editors produce on save
const DefaultReloadDebounce = 250 * time.Millisecond

// Watcher reloads the catalog when the user preset file changes
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(*Catalog)

	mu     sync.Mutex
	timer  *time.Timer
	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for the preset file at path. onReload receives
// the rebuilt catalog after every change that parses.
func NewWatcher(path string, debounce time.Duration, onReload func(*Catalog)) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("no preset file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     filepath.Clean(path),
		watcher:  watcher,
		debounce: debounce,
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching. The directory is watched rather than the file so that
// editors replacing the file on save are still noticed.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	go w.processEvents()
	return nil
}

// Close stops watching
func (w *Watcher) Close() error {
	w.cancel()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("preset watcher error: %v", err)
		}
	}
}

// schedule reloads once no event has arrived for the debounce period
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	if w.ctx.Err() != nil {
		return
	}
	catalog, err := Load(w.path)
	if err != nil {
		log.Printf("keeping previous collections, preset file is invalid: %v", err)
		return
	}
	log.Printf("collections reloaded from %s (%d presets)", w.path, catalog.Len())
	if w.onReload != nil {
		w.onReload(catalog)
	}
}
