// Package watch reports changes inside the listed directory.
package watch

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Event is a change to an entry of the watched directory.
type Event struct {
	Dir  string
	Path string
	Op   fsnotify.Op
}

// Watcher follows one listing directory at a time.
type Watcher struct {
	fw     *fsnotify.Watcher
	logger *zap.Logger
	events chan Event

	mu  sync.Mutex
	dir string

	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

var newFSWatcher = fsnotify.NewWatcher

func New(logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := newFSWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:     fw,
		logger: logger,
		events: make(chan Event, 16),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch switches to dir, dropping the previously watched directory.
func (w *Watcher) Watch(dir string) error {
	dir = filepath.Clean(dir)
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir == w.dir {
		return nil
	}
	if err := w.fw.Add(dir); err != nil {
		return err
	}
	if w.dir != "" {
		if err := w.fw.Remove(w.dir); err != nil {
			w.logger.Debug("failed to stop watching", zap.String("dir", w.dir), zap.Error(err))
		}
	}
	w.dir = dir
	return nil
}

func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Events delivers changes until the watcher is closed.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stopCh)
		err = w.fw.Close()
		<-w.doneCh
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	defer close(w.events)
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			ev := Event{Dir: w.Dir(), Path: event.Name, Op: event.Op}
			select {
			case w.events <- ev:
			case <-w.stopCh:
				return
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.String("dir", w.Dir()), zap.Error(err))
		}
	}
}
