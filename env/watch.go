package env

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mobiletools/buildenv/build"
	"github.com/mobiletools/buildenv/config"
)

// Watcher reports changes to the files feeding a resolution so callers can
// re-resolve during a development loop. It carries no state from the files
// themselves; on an event, call Gather or Secrets again.
type Watcher struct {
	// Events receives the path of each watched file that changed.
	Events chan string

	// Errors receives watcher failures.
	Errors chan error

	fsw   *fsnotify.Watcher
	paths map[string]bool
}

// WatchSources watches every candidate secrets and manifest file for the
// build context, plus the tool configuration file if one exists at the
// solution root.
func WatchSources(bc *build.Context) (*Watcher, error) {
	if bc == nil {
		return nil, ErrNoContext
	}
	paths := SourcePaths(bc, true)
	if path, ok := config.Find(bc.SolutionDirectory); ok {
		paths = append(paths, path)
	}
	return NewWatcher(paths...)
}

// NewWatcher watches the given file paths. The files need not exist yet;
// their parent directories are watched and events are filtered to the
// named files, so creating a missing secrets file is reported too.
func NewWatcher(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		fsw:    fsw,
		paths:  make(map[string]bool, len(paths)),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		clean := filepath.Clean(path)
		w.paths[clean] = true
		dirs[filepath.Dir(clean)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	go w.loop()
	return w, nil
}

// Close stops the watcher. Events is closed once the internal loop drains.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.Events)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.paths[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.Events <- event.Name
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}
