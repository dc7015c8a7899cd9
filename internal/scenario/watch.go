package scenario

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/lightcalc/lightcalc/internal/engine"
)

// Watch monitors a parameter file and calls onChange with the freshly parsed
// parameters each time the file is written. It runs until ctx is cancelled.
//
// If a reload fails (invalid YAML or an out-of-domain value), the error is
// logged and the previous parameters remain active — Watch does not call
// onChange.
func Watch(ctx context.Context, path string, onChange func(engine.Params)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	slog.Info("scenario: watching parameter file", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Reload on writes and on creates — atomic-save editors replace
			// the file via rename, which surfaces as Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			p, err := LoadParams(path)
			if err != nil {
				slog.Error("scenario: reload failed — keeping previous parameters",
					"path", path, "err", err)
				continue
			}

			slog.Info("scenario: parameters reloaded", "path", path)
			onChange(p)

			// The inode may have changed on an atomic save; watch the
			// path again so later edits still arrive.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("scenario: watcher error", "err", err)
		}
	}
}
