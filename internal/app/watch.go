package app

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chmouel/lazycd/internal/log"
)

// watchDebounce is the debounce window for watcher events.
const watchDebounce = 250 * time.Millisecond

// dirWatcher watches the current directory and coalesces filesystem
// events into refresh signals. Only one directory is watched at a
// time; SetDir repoints the watch when the user navigates.
type dirWatcher struct {
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}

	mu  sync.Mutex
	dir string

	waiting     bool
	lastRefresh time.Time
}

// newDirWatcher starts watching dir and launches the background
// goroutine draining fsnotify events.
func newDirWatcher(dir string) (*dirWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &dirWatcher{
		watcher: fw,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	if err := w.watcher.Add(dir); err != nil {
		_ = w.watcher.Close()
		return nil, err
	}
	w.dir = dir

	go w.run()
	return w, nil
}

// SetDir repoints the watch at a new directory. Failures degrade to a
// debug log line; the app keeps running without auto-refresh there.
func (w *dirWatcher) SetDir(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir == w.dir {
		return
	}
	if w.dir != "" {
		_ = w.watcher.Remove(w.dir)
	}
	w.dir = ""
	if err := w.watcher.Add(dir); err != nil {
		log.Printf("watch add failed for %s: %v", dir, err)
		return
	}
	w.dir = dir
}

// Stop closes the watcher and its channels.
func (w *dirWatcher) Stop() {
	close(w.done)
	_ = w.watcher.Close()
}

// NextEvent returns the event channel unless a receive is already in
// flight.
func (w *dirWatcher) NextEvent() <-chan struct{} {
	if w.waiting {
		return nil
	}
	w.waiting = true
	return w.events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *dirWatcher) ResetWaiting() {
	w.waiting = false
}

// ShouldRefresh checks debounce timing for watcher events.
func (w *dirWatcher) ShouldRefresh(now time.Time) bool {
	if !w.lastRefresh.IsZero() && now.Sub(w.lastRefresh) < watchDebounce {
		return false
	}
	w.lastRefresh = now
	return true
}

func (w *dirWatcher) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

func (w *dirWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			w.signal()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}
