package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/logger"
)

type watcher struct {
	fs *fsnotify.Watcher
}

func (w *watcher) close() error {
	return w.fs.Close()
}

// Watch emits change events for matching files until ctx is cancelled.
// Every non-hidden directory under the root is registered, including
// ones created after the watch starts.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.ChangeEvent, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := addRecursive(fsw, c.root); err != nil {
		fsw.Close()
		return nil, err
	}
	c.watcher = &watcher{fs: fsw}

	events := make(chan domain.ChangeEvent)
	go func() {
		defer close(events)
		defer fsw.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				c.handleEvent(ctx, fsw, ev, events)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error: %v", err)
			}
		}
	}()
	return events, nil
}

func (c *Connector) handleEvent(ctx context.Context, fsw *fsnotify.Watcher, ev fsnotify.Event, out chan<- domain.ChangeEvent) {
	if strings.HasPrefix(filepath.Base(ev.Name), ".") {
		return
	}

	// New directories must be registered before events inside them
	// can be seen.
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := addRecursive(fsw, ev.Name); err != nil {
				logger.Warn("Failed to watch %s: %v", ev.Name, err)
			}
			return
		}
	}

	if !c.allowed(ev.Name) {
		return
	}
	rel, err := filepath.Rel(c.root, ev.Name)
	if err != nil {
		return
	}

	change := domain.ChangeEvent{ID: filepath.ToSlash(rel)}
	switch {
	case ev.Op.Has(fsnotify.Create):
		change.Type = domain.ChangeCreated
	case ev.Op.Has(fsnotify.Write):
		change.Type = domain.ChangeUpdated
	case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
		change.Type = domain.ChangeDeleted
	default:
		return
	}

	select {
	case out <- change:
	case <-ctx.Done():
	}
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
