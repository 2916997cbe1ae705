package mapconf

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// Event notifies that a named config changed on disk.
type Event struct {
	Name string
}

const debounceWindow = 50 * time.Millisecond

// Watch emits an Event on events for every .conf file created, modified
// or removed under the store directory, until ctx is canceled. Rapid
// successive writes to the same config are debounced into one event.
//
// The watcher goroutine is supervised via lifecycle; panics are reported
// through the store logger instead of crashing the process.
func (s *Store) Watch(ctx context.Context, events chan<- Event) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		d := &debouncer{pending: make(map[string]*time.Timer)}
		defer d.stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if s.logger != nil {
					s.logger.Error("fsnotify error", "error", err)
				}
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !strings.EqualFold(filepath.Ext(ev.Name), ".conf") {
					continue
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
					!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				name := sanitize(ev.Name)
				if s.logger != nil {
					s.logger.Debug("config changed", "name", name, "op", ev.Op.String())
				}
				d.add(name, func() {
					select {
					case events <- Event{Name: name}:
					case <-ctx.Done():
					}
				})
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.logger != nil {
			s.logger.Error("config watcher stopped", "error", err)
		}
	}))

	return nil
}

// debouncer coalesces bursts of events per config name.
type debouncer struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
}

func (d *debouncer) add(name string, fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if timer, ok := d.pending[name]; ok {
		timer.Stop()
	}
	d.pending[name] = time.AfterFunc(debounceWindow, fire)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, timer := range d.pending {
		timer.Stop()
	}
}
