// Package watch reports when the files a card is built from change on disk.
package watch

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls a function once per burst of changes under a set of paths
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(path string)

	cancel context.CancelFunc
	done   chan struct{}
}

// New watches each path and calls onChange after debounce has passed without
// further events. Files are watched through their directory so that atomic
// renames are seen. Directories are watched together with their
// subdirectories, including ones created later. Paths that cannot be watched
// are logged and skipped.
func New(paths []string, debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	targets := make(map[string]bool)
	watchedDirs := make(map[string]bool)
	for _, p := range paths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			log.Printf("watch: bad path %q: %v", p, err)
			continue
		}
		targets[absPath] = true

		for _, dir := range append(subdirs(absPath), filepath.Dir(absPath)) {
			if watchedDirs[dir] {
				continue
			}
			if err := fw.Add(dir); err == nil {
				watchedDirs[dir] = true
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		watcher:  fw,
		debounce: debounce,
		onChange: onChange,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go w.run(ctx, targets)

	log.Printf("watch: watching %d path(s) in %d dir(s)", len(targets), len(watchedDirs))
	return w, nil
}

func (w *Watcher) run(ctx context.Context, targets map[string]bool) {
	defer close(w.done)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			absPath, _ := filepath.Abs(event.Name)
			if !relevant(targets, absPath) {
				continue
			}
			if event.Has(fsnotify.Create) {
				w.addTree(absPath)
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			changed := absPath
			timer = time.AfterFunc(w.debounce, func() {
				log.Printf("watch: changed %q", changed)
				w.onChange(changed)
			})
			mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: error: %v", err)
		}
	}
}

// addTree starts watching a directory that appeared after New, with
// everything below it. Files are ignored.
func (w *Watcher) addTree(path string) {
	for _, dir := range subdirs(path) {
		if err := w.watcher.Add(dir); err != nil {
			log.Printf("watch: cannot watch %q: %v", dir, err)
		}
	}
}

// subdirs returns root and every directory below it; nothing for a file or a
// missing path
func subdirs(root string) []string {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}

// relevant reports whether path is a target or lies inside a target directory
func relevant(targets map[string]bool, path string) bool {
	for p := path; ; p = filepath.Dir(p) {
		if targets[p] {
			return true
		}
		if parent := filepath.Dir(p); parent == p {
			return false
		}
	}
}

// Close stops watching and waits for the event loop to exit
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}
