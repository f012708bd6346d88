package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"brandcarousel/internal/core/model"

	"github.com/fsnotify/fsnotify"
)

const catalogSettleDelay = 150 * time.Millisecond

// WatchCatalog reloads the catalog whenever the file changes and hands the
// new item list to onChange. Invalid edits are logged and skipped. The watch
// ends when ctx is cancelled.
func WatchCatalog(ctx context.Context, catalogPath string, logger *slog.Logger, onChange func([]model.Item)) error {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	// Editors often replace the file, so the directory is watched instead.
	if err := watcher.Add(filepath.Dir(catalogPath)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch catalog directory: %w", err)
	}

	go runCatalogWatch(ctx, watcher, filepath.Clean(catalogPath), logger, onChange)
	return nil
}

func runCatalogWatch(ctx context.Context, watcher *fsnotify.Watcher, catalogPath string, logger *slog.Logger, onChange func([]model.Item)) {
	defer watcher.Close()

	var settle *time.Timer
	var settleC <-chan time.Time
	defer func() {
		if settle != nil {
			settle.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != catalogPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if settle != nil {
				settle.Stop()
			}
			settle = time.NewTimer(catalogSettleDelay)
			settleC = settle.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("storage: catalog watcher error", "error", err)
		case <-settleC:
			settleC = nil
			items, err := LoadCatalog(catalogPath)
			if err != nil {
				logger.Warn("storage: catalog reload failed, keeping current brands", "path", catalogPath, "error", err)
				continue
			}
			logger.Info("storage: catalog reloaded", "path", catalogPath, "brands", len(items))
			onChange(items)
		}
	}
}
