// Package watcher implements manifest watching for the watch loop.
package watcher

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/relock/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements file system watching using fsnotify. Unlike a build
// tool's recursive watcher it observes a fixed set of directories, the ones
// holding the manifest and the config file; the caller filters for the files
// it cares about.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsw,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given directories.
func (w *Watcher) Start(ctx context.Context, dirs []string) error {
	for _, dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// processEvents converts raw fsnotify events to ports.WatchEvent.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
func convertEvent(event fsnotify.Event) *ports.WatchEvent {
	var op ports.WatchOp
	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		op = ports.OpWrite
	case event.Op&fsnotify.Create == fsnotify.Create:
		op = ports.OpCreate
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		op = ports.OpRemove
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		op = ports.OpRename
	default:
		return nil
	}

	return &ports.WatchEvent{Path: event.Name, Operation: op}
}
