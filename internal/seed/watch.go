package seed

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch calls apply with the parsed fixtures each time the file at path is
// written, debounced by wait. It blocks until ctx is cancelled. Parse errors
// are logged and the previous state is kept.
func Watch(ctx context.Context, path string, wait time.Duration, apply func(*Fixtures) error, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()
	// Editors often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	reload := func() {
		f, err := ParseFile(abs)
		if err != nil {
			log.Error("reload fixtures", "file", abs, "err", err)
			return
		}
		if err := apply(f); err != nil {
			log.Error("apply fixtures", "file", abs, "err", err)
		}
	}

	// Reloads run on this loop, so they never overlap and none starts
	// after Watch returns.
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fire:
			fire = nil
			reload()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug("fixtures changed", "op", ev.Op.String(), "file", ev.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(wait)
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("fixtures watcher", "err", err)
		}
	}
}
