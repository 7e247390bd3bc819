package layout

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it changes and delivers the result to
// onReload, debounced so one editor save means one reload. Load failures
// are delivered through the callback with a nil layout and do not stop the
// watch; the host decides whether to keep the previous graph. Watch blocks
// until ctx is done or the underlying watcher fails.
//
// The parent directory is watched rather than the file itself, because
// editors that save via rename would otherwise silently detach the watch.
func Watch(ctx context.Context, path string, onReload func(*Layout, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	deb := newDebouncer(reloadDebounce)
	defer deb.cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			evPath, err := filepath.Abs(ev.Name)
			if err != nil || evPath != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			deb.trigger(func() {
				onReload(Load(path))
			})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}
