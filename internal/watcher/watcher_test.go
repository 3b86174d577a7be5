package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector gathers events for assertions.
type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) handle(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *collector) all() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *collector) waitFor(t *testing.T, n int, timeout time.Duration) []Event {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if evs := c.all(); len(evs) >= n {
			return evs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", n, len(c.all()))
	return nil
}

func startWatcher(t *testing.T, root string, include, exclude []string) (*Watcher, *collector) {
	t.Helper()
	w, err := New(include, exclude, 50*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	c := &collector{}
	w.OnChange(c.handle)
	require.NoError(t, w.Add(root))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go w.Start(ctx)
	return w, c
}

func TestWatcherReportsMatchingChange(t *testing.T) {
	root := t.TempDir()
	_, c := startWatcher(t, root, []string{"**/*.go"}, nil)

	path := filepath.Join(root, "button.go")
	require.NoError(t, os.WriteFile(path, []byte("package ui\n"), 0o644))

	evs := c.waitFor(t, 1, 2*time.Second)
	assert.Contains(t, evs[0].Paths, path)
}

func TestWatcherIgnoresNonMatching(t *testing.T) {
	root := t.TempDir()
	_, c := startWatcher(t, root, []string{"**/*.go"}, nil)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, c.all())
}

func TestWatcherExcludePatternWins(t *testing.T) {
	root := t.TempDir()
	_, c := startWatcher(t, root, []string{"**/*.go"}, []string{"*_test.go"})

	require.NoError(t, os.WriteFile(filepath.Join(root, "button_test.go"), []byte("package ui\n"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, c.all())
}

func TestWatcherDebouncesBursts(t *testing.T) {
	root := t.TempDir()
	_, c := startWatcher(t, root, []string{"**/*.go"}, nil)

	path := filepath.Join(root, "card.go")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("package ui\n"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	evs := c.waitFor(t, 1, 2*time.Second)
	// The burst collapses into one batch with the path listed once.
	require.Len(t, evs, 1)
	assert.Equal(t, []string{path}, evs[0].Paths)
}

func TestWatcherPicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()
	_, c := startWatcher(t, root, []string{"**/*.go"}, nil)

	sub := filepath.Join(root, "ui")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Give the watcher a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(sub, "badge.go")
	require.NoError(t, os.WriteFile(path, []byte("package ui\n"), 0o644))

	evs := c.waitFor(t, 1, 2*time.Second)
	assert.Contains(t, evs[0].Paths, path)
}
