package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"leapseek/internal/logging"
)

// ReloadFunc receives the freshly loaded configuration after a file
// change. It is called from the watcher goroutine.
type ReloadFunc func(Config)

// Watcher reloads a config file on change. Editors save configs with
// rapid write bursts (and some replace the file atomically via rename),
// so events are debounced and the parent directory is watched rather
// than the file itself.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload ReloadFunc
	log      *logging.Logger

	fsw *fsnotify.Watcher

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// Watch starts watching path and invokes onReload with each
// successfully loaded configuration. Load errors are logged and the
// previous configuration stays in effect.
func Watch(path string, onReload ReloadFunc, log *logging.Logger) (*Watcher, error) {
	if log == nil {
		log = logging.Null
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		debounce: 200 * time.Millisecond,
		onReload: onReload,
		log:      log.WithComponent("config"),
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

// scheduleReload resets the debounce timer so a burst of writes
// produces one reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("reload %s: %v", w.path, err)
		return
	}

	// The lock is held across the callback so that Close, which takes
	// the same lock, cannot return while a reload is being delivered
	// and no delivery can start after it has.
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.log.Info("reloaded %s", w.path)
	w.onReload(cfg)
}
