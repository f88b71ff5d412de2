package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-loads the configuration whenever the config file is
// written, and calls onReload with the fresh config. It returns a stop
// function that releases the watcher.
//
// The watch is placed on the containing directory rather than the file
// itself: editors that save by rename-replace would otherwise detach
// the watch after the first save.
func Watch(onReload func(*Config)) (func() error, error) {
	cfg := Get()
	configPath := filepath.Clean(cfg.ConfigFilePath())

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := watcher.Add(configDir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", configDir, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != configPath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := Reload(); err != nil {
					// Keep the last good config on a bad reload.
					continue
				}
				if onReload != nil {
					onReload(Get())
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher.Close, nil
}
