package primitives

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"town-explorer/internal/logger"
)

// Watcher reloads a palette file whenever it is written. Reloaded palettes are delivered on
// Changes; the render loop drains it so GPU state is only touched on the main thread.
type Watcher struct {
	path    string
	log     *logger.Logger
	fw      *fsnotify.Watcher
	changes chan PaletteDef
	done    chan struct{}
}

// WatchPalette starts watching path. The directory is watched so editors that replace the
// file on save are still seen.
func WatchPalette(path string, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("primitives: watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("primitives: watch %s: %w", path, err)
	}
	w := &Watcher{
		path:    filepath.Clean(path),
		log:     log,
		fw:      fw,
		changes: make(chan PaletteDef, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers the latest palette after each successful reload. Only the newest
// pending palette is kept.
func (w *Watcher) Changes() <-chan PaletteDef {
	return w.changes
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			p, err := LoadPalette(w.path)
			if err != nil {
				w.log.Warn("palette reload failed", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.publish(p)
			w.log.Info("palette reloaded", zap.String("path", w.path))
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("palette watcher", zap.Error(err))
		}
	}
}

func (w *Watcher) publish(p PaletteDef) {
	select {
	case <-w.changes:
	default:
	}
	w.changes <- p
}
