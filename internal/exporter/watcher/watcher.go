// Package watcher implements the hot-folder mode: a directory is
// monitored and every DXF file dropped into it is handed to a callback.
package watcher

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Handler receives the path of a newly created DXF file.
type Handler func(path string)

type Watcher struct {
	watcher *fsnotify.Watcher
}

func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{watcher: w}, nil
}

// Watch blocks until ctx is done, invoking handle for every .dxf file
// created under dir. Rename-into-place and plain writes both surface as
// create events for freshly dropped files.
func (w *Watcher) Watch(ctx context.Context, dir string, handle Handler) error {
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isDXF(event.Name) {
				continue
			}
			handle(event.Name)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}

func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func isDXF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".dxf")
}
