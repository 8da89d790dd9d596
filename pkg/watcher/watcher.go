// Package watcher re-runs a handler on source files as they change.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/siyuan-infoblox/js-imports-sort/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-sort/pkg/utils"
)

// DefaultDebounce is the quiet period after the last event before changed
// files are handed over.
const DefaultDebounce = 300 * time.Millisecond

// HandleFunc processes a batch of changed files, sorted and deduplicated.
type HandleFunc func(ctx context.Context, files []string)

// Watcher watches a directory tree for changes to files selected by a
// Matcher.
type Watcher struct {
	root     string
	matcher  *utils.Matcher
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger
	dirs     atomic.Int64
}

// New creates a watcher on every directory under root that is not skipped
// or ignored by m.
func New(root string, m *utils.Matcher, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCreateWatcher, err)
	}
	w := &Watcher{
		root:     root,
		matcher:  m,
		fsw:      fsw,
		debounce: DefaultDebounce,
		logger:   logger,
	}
	if err := w.addRecursive(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// SetDebounce changes the quiet period. It must be called before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Dirs is the number of directories being watched.
func (w *Watcher) Dirs() int {
	return int(w.dirs.Load())
}

// Run blocks until ctx is done, calling handle with the files changed during
// each burst of events. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, handle HandleFunc) error {
	defer w.fsw.Close()

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if !w.shouldProcess(event) {
				continue
			}
			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			files := make([]string, 0, len(pending))
			for path := range pending {
				files = append(files, path)
			}
			clear(pending)
			slices.Sort(files)
			w.logger.Debug("files changed", "count", len(files))
			handle(ctx, files)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

// shouldProcess accepts writes and creations of selected files.
func (w *Watcher) shouldProcess(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return false
	}
	return w.matcher.Match(rel)
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			w.logger.Warn("failed to access path", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root {
			rel, relErr := filepath.Rel(w.root, path)
			if relErr == nil && (utils.SkipDir(d.Name()) || w.matcher.IgnoresDir(rel)) {
				return filepath.SkipDir
			}
		}
		if err := w.fsw.Add(path); err != nil {
			if path == dir {
				return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWatchDirectory, err)
			}
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
			return nil
		}
		w.dirs.Add(1)
		return nil
	})
}
