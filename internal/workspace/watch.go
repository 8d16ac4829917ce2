package workspace

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/stefanvanburen/pols/internal/config"
)

// Change describes one registry update made by a Watcher.
type Change struct {
	URI     string
	Removed bool
}

// Watcher keeps a Registry in sync with files changed on disk outside the
// editor. Documents open in an editor are never touched.
type Watcher struct {
	reg     *Registry
	ws      config.Workspace
	filter  *config.FileFilter
	logger  *slog.Logger
	watcher *fsnotify.Watcher

	onChange func(Change)

	mu    sync.Mutex
	roots []string

	wg   sync.WaitGroup
	once sync.Once
}

// NewWatcher starts an event loop that applies file changes to reg.
// onChange, if non-nil, is called from that loop after every registry
// update. Directories are watched once passed to Add.
func NewWatcher(reg *Registry, ws config.Workspace, logger *slog.Logger, onChange func(Change)) (*Watcher, error) {
	filter, err := config.NewFileFilter(ws.Filter)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		reg:      reg,
		ws:       ws,
		filter:   filter,
		logger:   logger,
		watcher:  fw,
		onChange: onChange,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Add watches root and every directory below it that is not excluded.
func (w *Watcher) Add(root string) error {
	w.mu.Lock()
	w.roots = append(w.roots, root)
	w.mu.Unlock()
	return w.addTree(root, root)
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) addTree(root, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.excluded(root, path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "err", err)
		}
		return nil
	})
}

// rootOf returns the watched root containing path.
func (w *Watcher) rootOf(path string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, root := range w.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return root, true
		}
	}
	return "", false
}

func (w *Watcher) excluded(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return true
	}
	return w.ws.Excluded(filepath.ToSlash(rel))
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "err", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := event.Name
	root, ok := w.rootOf(path)
	if !ok || w.excluded(root, path) {
		return
	}
	w.logger.Debug("file event", "path", path, "op", event.Op.String())

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.remove(path)
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		w.remove(path)
		return
	}
	if err != nil {
		w.logger.Warn("stat failed", "path", path, "err", err)
		return
	}
	if info.IsDir() {
		if event.Has(fsnotify.Create) {
			if err := w.addTree(root, path); err != nil {
				w.logger.Warn("failed to watch directory", "path", path, "err", err)
			}
		}
		return
	}
	if !info.Mode().IsRegular() {
		return
	}
	if ok, err := w.filter.Match(path, info.Size()); !ok {
		if err != nil {
			w.logger.Warn("filter failed", "path", path, "err", err)
		}
		return
	}

	text, err := ReadText(path)
	if err != nil {
		w.logger.Warn("read failed, loading empty text", "path", path, "err", err)
	}
	uri := URIFromPath(path)
	if w.reg.Reload(uri, text) {
		w.notify(Change{URI: uri})
	}
}

// remove unloads the document at path, or every document below it when
// path was a directory.
func (w *Watcher) remove(path string) {
	uri := URIFromPath(path)
	if w.reg.Unload(uri) {
		w.notify(Change{URI: uri, Removed: true})
		return
	}
	prefix := uri + "/"
	for _, u := range w.reg.Documents() {
		if strings.HasPrefix(u, prefix) && w.reg.Unload(u) {
			w.notify(Change{URI: u, Removed: true})
		}
	}
}

func (w *Watcher) notify(c Change) {
	if w.onChange != nil {
		w.onChange(c)
	}
}
