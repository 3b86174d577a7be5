// Package watcher watches a project tree for changes with debouncing, so
// a burst of editor writes produces one rebuild instead of a dozen.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Event is a debounced batch of changed paths.
type Event struct {
	Paths []string
	Time  time.Time
}

// Handler consumes a batch of changes.
type Handler func(Event)

// Watcher watches directories recursively and reports matching changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	include  []string
	exclude  []string
	delay    time.Duration
	handlers []Handler

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

// New creates a watcher. include and exclude are doublestar patterns
// matched against slash-separated relative paths; an empty include list
// matches everything.
func New(include, exclude []string, delay time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	return &Watcher{
		fsw:     fsw,
		include: include,
		exclude: exclude,
		delay:   delay,
		pending: make(map[string]struct{}),
	}, nil
}

// OnChange registers a handler for debounced change batches. Handlers
// must be registered before Start.
func (w *Watcher) OnChange(h Handler) {
	w.handlers = append(w.handlers, h)
}

// Add watches root and every directory below it.
func (w *Watcher) Add(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if w.excluded(path) {
				return filepath.SkipDir
			}
			return w.fsw.Add(path)
		}
		return nil
	})
}

// Start processes events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.flush()
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	// New directories must be added so nested changes are seen.
	if ev.Op.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if !w.excluded(ev.Name) {
				_ = w.fsw.Add(ev.Name)
			}
			return
		}
	}
	if !w.matches(ev.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[ev.Name] = struct{}{}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.delay, w.flush)
	} else {
		w.timer.Reset(w.delay)
	}
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.timer = nil
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.timer = nil
	handlers := w.handlers
	w.mu.Unlock()

	ev := Event{Paths: paths, Time: time.Now()}
	for _, h := range handlers {
		h(ev)
	}
}

func (w *Watcher) matches(path string) bool {
	if w.excluded(path) {
		return false
	}
	if len(w.include) == 0 {
		return true
	}
	rel := filepath.ToSlash(path)
	for _, pattern := range w.include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}

func (w *Watcher) excluded(path string) bool {
	rel := filepath.ToSlash(path)
	for _, pattern := range w.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}
