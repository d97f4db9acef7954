// Package watch re-runs a callback when markdown files in a directory change.
package watch

import (
	"context"
	"fmt"
	"github.com/fsnotify/fsnotify"
	"log/slog"
	"path/filepath"
	"tagkit/internal/ingest"
	"time"
)

const DefaultDelay = 200 * time.Millisecond

type Watcher struct {
	Dir   string
	Delay time.Duration
	Log   *slog.Logger
}

// Run blocks until ctx is done, calling onChange once per burst of
// write, create, remove or rename events on markdown files directly inside
// Dir. Callback errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	log := w.Log
	if log == nil {
		log = slog.Default()
	}
	delay := w.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.Dir, err)
	}
	log.Info("watching for file changes", "dir", w.Dir)

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ingest.IsMarkdown(filepath.Base(ev.Name)) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				log.Debug("change", "file", ev.Name, "op", ev.Op.String())
				debounce.Reset(delay)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "err", err)
		case <-debounce.C:
			if err := onChange(ctx); err != nil {
				log.Error("re-run failed", "err", err)
			}
		}
	}
}
