package main

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchConfig watches the directory holding the config file. Editors often
// replace a file instead of writing it in place, which drops a watch placed
// on the file itself.
func watchConfig(watcher *fsnotify.Watcher, configPath string) error {
	return watcher.Add(filepath.Dir(configPath))
}

// fileWatcherLoop processes file system events with debouncing and calls
// reload once the config file has been quiet for debounceDuration.
//
// The loop ends when ctx is done or the watcher is closed.
func fileWatcherLoop(ctx context.Context, watcher *fsnotify.Watcher, configPath string, reload func(), debounceDuration time.Duration, logger *zap.Logger) {
	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
	)
	defer func() {
		mu.Lock()
		defer mu.Unlock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	logger.Debug("config watcher loop started")

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				logger.Debug("config watcher events channel closed")
				return
			}

			if shouldIgnoreEvent(event, configPath) {
				continue
			}

			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDuration, func() {
				if ctx.Err() != nil {
					return
				}
				logger.Info("config file changed", zap.String("path", configPath))
				reload()
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				logger.Debug("config watcher errors channel closed")
				return
			}
			logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

// shouldIgnoreEvent returns true if the event does not change the config
// file's content:
//   - Events for other files in the watched directory
//   - Remove, Rename and Chmod operations
func shouldIgnoreEvent(event fsnotify.Event, configPath string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(configPath) {
		return true
	}
	return !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create)
}
