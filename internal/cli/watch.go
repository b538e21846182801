package cli

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/anchorage/pkg/errors"
)

// defaultDebounce collapses the burst of events an editor emits on save.
const defaultDebounce = 300 * time.Millisecond

// scenarioWatcher reports scenario files that changed on disk.
//
// Parent directories are watched rather than the files themselves: most
// editors save by writing a temporary file and renaming it over the original,
// which drops a watch held on the old inode.
type scenarioWatcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]string // absolute path -> path as given
	debounce time.Duration
	logger   *log.Logger
}

func newScenarioWatcher(paths []string, debounce time.Duration, logger *log.Logger) (*scenarioWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "start file watcher")
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &scenarioWatcher{
		fsw:      fsw,
		files:    make(map[string]string, len(paths)),
		debounce: debounce,
		logger:   logger,
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "resolve %s", p)
		}
		w.files[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "watch %s", dir)
		}
		dirs[dir] = true
		logger.Debug("watching directory", "dir", dir)
	}
	return w, nil
}

// Run calls fn with the changed files after each quiet period until ctx is
// done. fn runs on the watcher goroutine, so changes arriving while it runs
// are batched into the next call.
func (w *scenarioWatcher) Run(ctx context.Context, fn func(ctx context.Context, changed []string)) error {
	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			given, watched := w.files[filepath.Clean(ev.Name)]
			if !watched || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			w.logger.Debug("scenario changed", "path", given, "op", ev.Op.String())
			pending[given] = true
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			slices.Sort(changed)
			fn(ctx, changed)
		}
	}
}

// Close stops watching.
func (w *scenarioWatcher) Close() error {
	return w.fsw.Close()
}
