package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads configuration when the config file changes and hands the
// result to a callback. Reload errors are logged and skipped; the previous
// configuration stays in effect.
type Watcher struct {
	path     string
	logger   *slog.Logger
	onReload func(*Config)
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// NewWatcher watches the config file at path. onReload is called with each
// successfully loaded and validated configuration.
func NewWatcher(path string, logger *slog.Logger, onReload func(*Config)) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if onReload == nil {
		return nil, fmt.Errorf("reload callback is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace files on save,
	// which drops a watch registered on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &Watcher{
		path:     path,
		logger:   logger,
		onReload: onReload,
		watcher:  fsw,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Config watcher error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) reload() {
	config, err := LoadFromFile(w.path)
	if err != nil {
		w.logger.Warn("Failed to reload config", slog.String("path", w.path), slog.String("error", err.Error()))
		return
	}
	if err := config.Validate(); err != nil {
		w.logger.Warn("Reloaded config is invalid", slog.String("path", w.path), slog.String("error", err.Error()))
		return
	}

	w.logger.Info("Config reloaded", slog.String("path", w.path))
	w.onReload(config)
}
