package keymap

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/virtkbd/internal/command"
)

// defaultDebounce coalesces rapid rewrites of the binding document.
const defaultDebounce = 100 * time.Millisecond

// Handler is called with the freshly loaded bindings after the document
// changed on disk, or with the load error when the reload failed.
type Handler func(bindings map[string]command.Descriptor, err error)

// Watcher reloads the binding document when it changes on disk.
//
// Saves rewrite the whole file, and some editors replace it via rename,
// so the watcher monitors the containing directory and filters events
// for the store's path.
type Watcher struct {
	store   *Store
	fsw     *fsnotify.Watcher
	handler Handler

	mu      sync.Mutex
	pending *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

// Watch starts watching the store's file and invokes handler on change.
// Close the returned watcher to stop.
func (s *Store) Watch(handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		store:   s,
		fsw:     fsw,
		handler: handler,
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	target := filepath.Clean(w.store.path)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.handler(nil, fmt.Errorf("watching bindings: %w", err))
		}
	}
}

// scheduleReload debounces bursts of events into a single reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(defaultDebounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		w.handler(w.store.Load())
	})
}
