package skin

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/prism/internal/logger"
)

// DefaultWatchDebounce is the default debounce interval for file watch events.
const DefaultWatchDebounce = 250 * time.Millisecond

// WatchOptions configures a Watcher.
type WatchOptions struct {
	Debounce time.Duration
	// OnReload receives every skin rebuilt after a change.
	OnReload func(*Skin)
	// OnError receives load and watch failures. The previous skin stays in
	// effect.
	OnError func(error)
	Logger  *logger.Logger
}

// Watcher rebuilds a skin whenever its theme file changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	loader   *Loader
	debounce time.Duration
	onReload func(*Skin)
	onError  func(error)
	log      *logger.Logger

	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
	closed    bool
}

// NewWatcher prepares a watcher for the theme at path. The parent directory
// is watched so editors that save by renaming are still seen.
func NewWatcher(path string, loader *Loader, opts WatchOptions) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	return &Watcher{
		watcher:   fsw,
		path:      path,
		loader:    loader,
		debounce:  debounce,
		onReload:  opts.OnReload,
		onError:   opts.OnError,
		log:       opts.Logger,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine. Cancelling ctx stops the watcher.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running || w.closed {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.watchLoop(ctx)
}

// Stop ends watching and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	running := w.running
	w.mu.Unlock()

	close(w.stopCh)
	if running {
		<-w.stoppedCh
		return
	}
	_ = w.watcher.Close()
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.stoppedCh)
	defer w.watcher.Close()

	absPath, _ := filepath.Abs(w.path)
	baseName := filepath.Base(w.path)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	stop := func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}

	for {
		select {
		case <-w.stopCh:
			stop()
			return

		case <-ctx.Done():
			stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			eventAbs, _ := filepath.Abs(event.Name)
			if filepath.Base(event.Name) != baseName && eventAbs != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			debounceTimer = nil
			debounceCh = nil
			w.reload(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.fail(err)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	s, err := w.loader.Load(ctx, w.path)
	if err != nil {
		w.fail(err)
		return
	}

	w.log.WithFields(map[string]any{"path": w.path}).Info("theme reloaded")
	if w.onReload != nil {
		w.onReload(s)
	}
}

func (w *Watcher) fail(err error) {
	w.log.WithFields(map[string]any{"path": w.path}).Error(err, "theme watch error")
	if w.onError != nil {
		w.onError(err)
	}
}
