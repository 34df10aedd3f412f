package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/log"
)

// Watch reloads the config file whenever it changes and calls fn with
// the new settings, so a running TUI picks up theme or language edits
// without a restart. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself: editors
// that write via rename would otherwise detach the watch.
func Watch(ctx context.Context, path string, logger *log.Logger, fn func(Config)) error {
	if logger == nil {
		logger = log.DefaultLogger()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch config dir: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			cfg, err := Load(path)
			if err != nil {
				logger.WithError(err).Warn("ignoring invalid config change")
				continue
			}
			logger.Debug("config reloaded", "path", path)
			fn(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Warn("config watcher error")
		}
	}
}
