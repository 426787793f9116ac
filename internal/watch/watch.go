package watch

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hoppxi/svgdark/internal/remap"
)

const debounce = 200 * time.Millisecond

// Watcher coalesces filesystem events on an asset directory into rebuild
// ticks. Generated -dark.svg files are ignored so our own writes don't
// loop back in.
type Watcher struct {
	fw      *fsnotify.Watcher
	rebuild chan struct{}
	done    chan struct{}
}

func New(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		rebuild: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.loop(fw.Events, fw.Errors)
	return w, nil
}

// Rebuild yields one tick per batch of relevant changes.
func (w *Watcher) Rebuild() <-chan struct{} { return w.rebuild }

func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

// loop takes its event source as parameters so tests can feed it directly.
func (w *Watcher) loop(events <-chan fsnotify.Event, errs <-chan error) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			log.Println("Watch error:", err)
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			select {
			case w.rebuild <- struct{}{}:
			default:
			}
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Rename) && !ev.Op.Has(fsnotify.Remove) {
		return false
	}
	return remap.IsEligible(filepath.Base(ev.Name))
}
