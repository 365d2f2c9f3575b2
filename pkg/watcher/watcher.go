package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"learnpath_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchFile watches a single file and invokes onChange after writes, with a
// one second debounce so editors that write in bursts trigger one reload.
// The watch is attached to the parent directory so replace-by-rename (the
// usual way CSV exports land on disk) is still observed. Blocks; run it in
// a goroutine.
func WatchFile(path string, onChange func()) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Log.Error("failed to create file watcher", zap.String("path", path), zap.Error(err))
		return
	}
	defer w.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Log.Error("failed to resolve watch path", zap.String("path", path), zap.Error(err))
		return
	}

	if err := w.Add(filepath.Dir(absPath)); err != nil {
		logger.Log.Error("failed to watch directory", zap.String("path", absPath), zap.Error(err))
		return
	}

	var mu sync.Mutex
	timer := time.NewTimer(0)
	<-timer.C

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Name != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				mu.Lock()
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(1 * time.Second)
				mu.Unlock()
			}
		case <-timer.C:
			logger.Log.Info("watched file changed, reloading", zap.String("path", absPath))
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Log.Error("file watcher error", zap.String("path", absPath), zap.Error(err))
		}
	}
}
