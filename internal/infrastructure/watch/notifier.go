// Package watch reports changes to manifest files.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Notifier watches single files with fsnotify.
type Notifier struct {
	logger   *slog.Logger
	debounce time.Duration
}

// NewNotifier creates a notifier. A zero debounce uses DefaultDebounce.
func NewNotifier(debounce time.Duration, logger *slog.Logger) *Notifier {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{debounce: debounce, logger: logger}
}

// Watch sends once per burst of writes to path until ctx is done. The parent
// directory is watched so editors that replace the file are still seen.
func (n *Notifier) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan struct{})
	go n.loop(ctx, watcher, abs, out)
	return out, nil
}

func (n *Notifier) loop(ctx context.Context, watcher *fsnotify.Watcher, path string, out chan<- struct{}) {
	defer close(out)
	defer func() { _ = watcher.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			n.logger.Debug("manifest event", "op", event.Op.String(), "path", event.Name)
			if timer == nil {
				timer = time.NewTimer(n.debounce)
			} else {
				timer.Reset(n.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			n.logger.Warn("watch error", "error", err)

		case <-fire:
			fire = nil
			select {
			case out <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}
}
