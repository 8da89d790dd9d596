package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/utils"
)

func newMatcher(t *testing.T) *utils.Matcher {
	t.Helper()
	m, err := utils.NewMatcher([]string{"**.js", "**.ts"}, []string{"dist/**"})
	require.NoError(t, err)
	return m
}

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
}

// recorder collects the batches passed to a HandleFunc.
type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) handle(_ context.Context, files []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, files)
}

func (r *recorder) files() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []string
	for _, b := range r.batches {
		all = append(all, b...)
	}
	return all
}

func TestNew_watchedDirs(t *testing.T) {
	req := require.New(t)
	root := t.TempDir()
	mkdirs(t, root, "src/components", "dist/assets", "node_modules/react", ".git")

	w, err := New(root, newMatcher(t), nil)
	req.NoError(err)
	defer w.fsw.Close()

	// root, src, src/components
	req.Equal(3, w.Dirs())
	req.ElementsMatch([]string{
		root,
		filepath.Join(root, "src"),
		filepath.Join(root, "src/components"),
	}, w.fsw.WatchList())
}

func TestNew_missingRoot(t *testing.T) {
	req := require.New(t)
	_, err := New(filepath.Join(t.TempDir(), "missing"), newMatcher(t), nil)
	req.Error(err)
}

func TestWatcher_shouldProcess(t *testing.T) {
	root := t.TempDir()
	w := &Watcher{root: root, matcher: newMatcher(t)}

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{
			name:     "write to source file",
			event:    fsnotify.Event{Name: filepath.Join(root, "src/a.js"), Op: fsnotify.Write},
			expected: true,
		},
		{
			name:     "created source file",
			event:    fsnotify.Event{Name: filepath.Join(root, "b.ts"), Op: fsnotify.Create},
			expected: true,
		},
		{
			name:     "removed source file",
			event:    fsnotify.Event{Name: filepath.Join(root, "a.js"), Op: fsnotify.Remove},
			expected: false,
		},
		{
			name:     "chmod",
			event:    fsnotify.Event{Name: filepath.Join(root, "a.js"), Op: fsnotify.Chmod},
			expected: false,
		},
		{
			name:     "unselected extension",
			event:    fsnotify.Event{Name: filepath.Join(root, "style.css"), Op: fsnotify.Write},
			expected: false,
		},
		{
			name:     "ignored path",
			event:    fsnotify.Event{Name: filepath.Join(root, "dist/bundle.js"), Op: fsnotify.Write},
			expected: false,
		},
		{
			name:     "temporary file of an atomic write",
			event:    fsnotify.Event{Name: filepath.Join(root, ".a.js.jisort-123"), Op: fsnotify.Create},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, w.shouldProcess(tt.event))
		})
	}
}

func TestWatcher_Run(t *testing.T) {
	req := require.New(t)
	root := t.TempDir()
	mkdirs(t, root, "src")

	w, err := New(root, newMatcher(t), nil)
	req.NoError(err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	rec := &recorder{}
	go func() { done <- w.Run(ctx, rec.handle) }()

	path := filepath.Join(root, "src/app.js")
	req.NoError(os.WriteFile(path, []byte("import a from 'a';\n"), 0644))
	req.NoError(os.WriteFile(filepath.Join(root, "src/style.css"), []byte("body {}\n"), 0644))

	req.Eventually(func() bool {
		return len(rec.files()) > 0
	}, 5*time.Second, 10*time.Millisecond)
	req.Contains(rec.files(), path)
	req.NotContains(rec.files(), filepath.Join(root, "src/style.css"))

	// Directories created while running are watched too.
	mkdirs(t, root, "src/nested")
	req.Eventually(func() bool {
		return w.Dirs() == 3
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(5 * time.Second):
		req.Fail("Run did not return after cancellation")
	}
}

func TestWatcher_Run_debounce(t *testing.T) {
	req := require.New(t)
	root := t.TempDir()

	w, err := New(root, newMatcher(t), nil)
	req.NoError(err)
	w.SetDebounce(200 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{}
	go func() { _ = w.Run(ctx, rec.handle) }()

	path := filepath.Join(root, "a.js")
	for i := 0; i < 5; i++ {
		req.NoError(os.WriteFile(path, []byte("import a from 'a';\n"), 0644))
	}

	req.Eventually(func() bool {
		return len(rec.files()) > 0
	}, 5*time.Second, 10*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	req.Len(rec.batches, 1)
	req.Equal([]string{path}, rec.batches[0])
}
