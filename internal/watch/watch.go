// Package watch re-decodes data files when they change on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/vicky3-mod/internal/logger"
)

// DecodeFunc re-reads and decodes one changed file.
type DecodeFunc func(path string) error

// Result is the outcome of decoding a changed file.
type Result struct {
	File string
	Err  error
}

// Watcher monitors a fixed set of files using fsnotify. Their parent
// directories are watched so that editors which replace files on save are
// still seen.
type Watcher struct {
	Results <-chan Result // Read-only external channel

	results  chan Result
	files    map[string]bool
	decode   DecodeFunc
	debounce time.Duration
	watcher  *fsnotify.Watcher
	log      *zap.Logger
	started  bool
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a watcher for files. Changes to a file are reported once no
// further events arrived for debounce.
func New(files []string, decode DecodeFunc, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Result, 16)
	w := &Watcher{
		Results:  ch,
		results:  ch,
		files:    make(map[string]bool, len(files)),
		decode:   decode,
		debounce: debounce,
		watcher:  fw,
		log:      logger.Named("watch"),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, f := range files {
		w.files[filepath.Clean(f)] = true
	}
	return w, nil
}

// Start adds the watched directories and begins the event loop.
func (w *Watcher) Start() error {
	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		w.log.Debug("watching directory", zap.String("dir", dir))
	}

	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Results channel.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.quit)
		w.watcher.Close()
		if w.started {
			<-w.done
		}
		close(w.results)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	tick := w.debounce / 2
	if tick <= 0 {
		tick = time.Millisecond
	}
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending[name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					delete(pending, file)
					w.emit(file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) emit(file string) {
	err := w.decode(file)
	if err != nil {
		w.log.Warn("decode failed", zap.String("file", file), zap.Error(err))
	} else {
		w.log.Info("decoded", zap.String("file", file))
	}
	select {
	case w.results <- Result{File: file, Err: err}:
	case <-w.quit:
	}
}
