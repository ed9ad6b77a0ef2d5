package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to one tuning file. It watches the file's
// directory so editors that replace the file on save are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    filepath.Clean(path),
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// debounce is how long the file must stay quiet before a change is reported.
// A burst of writes is reported once, after the last one.
const debounce = 100 * time.Millisecond

func (w *Watcher) run() {
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	var pending string
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path || !isConfigFile(event.Name) {
				continue
			}
			pending = event.Name
			timer.Reset(debounce)
		case <-timer.C:
			select {
			case w.Events <- pending:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Reloader re-reads a tuning file when its Watcher reports a change. Check is
// non-blocking and meant to be called from the game loop between frames.
type Reloader struct {
	path    string
	watcher *Watcher
}

func NewReloader(path string) (*Reloader, error) {
	w, err := NewWatcher(path)
	if err != nil {
		return nil, err
	}
	return &Reloader{path: path, watcher: w}, nil
}

// Check returns freshly loaded settings when the file changed since the last
// call. A file that fails to load or validate is reported and skipped.
func (r *Reloader) Check() (Settings, bool, error) {
	changed := false
drain:
	for {
		select {
		case <-r.watcher.Events:
			changed = true
		case err := <-r.watcher.Errors:
			log.Printf("config: watch %s: %v", r.path, err)
		default:
			break drain
		}
	}
	if !changed {
		return Settings{}, false, nil
	}
	s, err := LoadSettings(r.path)
	if err != nil {
		return Settings{}, false, err
	}
	return s, true, nil
}

func (r *Reloader) Close() error {
	return r.watcher.Close()
}
