package content

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Invalidator is the slice of the knowledge store the watcher needs:
// dropping the current index so the next query rebuilds it.
type Invalidator interface {
	Clear()
}

// Watcher invalidates the knowledge index when files in the content
// directory change, so edits to projects.json or posts.json show up in
// search without a restart.
type Watcher struct {
	fsw    *fsnotify.Watcher
	target Invalidator
	logger *slog.Logger
}

// NewWatcher creates a watcher over dir. Start must be called to begin
// processing events.
func NewWatcher(dir string, target Invalidator, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Watcher{
		fsw:    fsw,
		target: target,
		logger: logger,
	}, nil
}

// Start consumes filesystem events until ctx is canceled or the watcher is
// closed.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				w.logger.Info("content changed, invalidating knowledge index",
					"file", event.Name,
					"op", event.Op.String(),
				)
				w.target.Clear()
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("content watcher error", "error", err)
			}
		}
	}()
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
