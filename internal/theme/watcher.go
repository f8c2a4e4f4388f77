package theme

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a themes file for changes and re-resolves the active
// theme, delivering the result on Updates. Reload failures keep the
// previous theme live and are only logged.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	name    string
	updates chan Theme
	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for the themes file at path. Changes are
// re-resolved against the theme called name.
func NewWatcher(path, name string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher: watcher,
		path:    path,
		name:    name,
		updates: make(chan Theme, 1),
		done:    make(chan struct{}),
	}, nil
}

// Updates returns the channel carrying re-resolved themes.
func (w *Watcher) Updates() <-chan Theme {
	return w.updates
}

// Start begins watching the themes file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory containing the file (more reliable for editors
	// that replace the file on save)
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	filename := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about our file
			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("themes watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// reload re-reads the themes file and publishes the re-resolved theme.
// A stale pending update is dropped in favor of the newest one.
func (w *Watcher) reload() {
	reg, err := Load(w.path)
	if err != nil {
		slog.Warn("failed to reload themes file", "path", w.path, "error", err)
		return
	}

	t, err := reg.Resolve(w.name)
	if err != nil {
		slog.Warn("active theme missing after reload", "theme", w.name, "path", w.path)
		return
	}

	select {
	case w.updates <- t:
	default:
		select {
		case <-w.updates:
		default:
		}
		w.updates <- t
	}
}

// Stop stops watching and releases the underlying watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false

	close(w.done)
	w.watcher.Close()
}
