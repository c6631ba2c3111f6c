package main

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"cardioscreen/logging"
)

// watchConfig re-reads the config file when it changes and applies the log
// level. Only the log level is hot-reloaded; everything else needs a restart.
func watchConfig(path string) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				config, err := loadConfig(path)
				if err != nil {
					logging.L().Warn("config reload failed", zap.Error(err))
					continue
				}
				logging.SetLevel(config.Log.Level)
				logging.L().Info("log level applied", zap.String("level", config.Log.Level))

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.L().Warn("config watcher error", zap.Error(err))
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
