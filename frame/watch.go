package frame

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/signadot/construct/debug"
)

// Watcher turns changes to a set of files into ChangeEvents. It watches
// the files' directories, so that files replaced by editors are still
// seen.
type Watcher struct {
	w       *fsnotify.Watcher
	files   map[string]bool
	changes chan Event
	done    chan struct{}
	once    sync.Once
}

func Watch(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		w:       fw,
		files:   map[string]bool{},
		changes: make(chan Event, 16),
		done:    make(chan struct{}),
	}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			if debug.Frame() {
				debug.Logf("watch: %s\n", ev)
			}
			select {
			case w.changes <- ChangeEvent{Path: abs}:
			default:
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			debug.Logf("watch: %v\n", err)
		}
	}
}

// Poll appends pending changes, one per file.
func (w *Watcher) Poll(dst []Event) []Event {
	seen := map[string]bool{}
	for {
		select {
		case e := <-w.changes:
			c := e.(ChangeEvent)
			if seen[c.Path] {
				continue
			}
			seen[c.Path] = true
			dst = append(dst, e)
		default:
			return dst
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.w.Close()
	})
	return err
}
