package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

const debounceWindow = 50 * time.Millisecond

// Watch emits a change event for every key matching pattern that an
// external writer touches. There is no cross-process locking (the last
// writer wins), so this feed only tells consumers to re-read; it never
// carries payloads. The channel closes when ctx is cancelled.
func (m *Medium) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(m.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", m.dir, err)
	}

	events := make(chan core.Event, 16)
	lastSeen := make(map[string]time.Time)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return nil
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if m.logger != nil {
					m.logger.Warn("watcher error", "error", err)
				}
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				key := filepath.Base(ev.Name)
				if strings.HasPrefix(key, tempFilePrefix) {
					continue
				}
				if match, err := doublestar.Match(pattern, key); err != nil || !match {
					continue
				}

				now := time.Now()
				if last, seen := lastSeen[key]; seen && now.Sub(last) < debounceWindow {
					continue
				}
				lastSeen[key] = now

				var etype core.EventType
				switch {
				case ev.Has(fsnotify.Create):
					etype = core.EventCreate
				case ev.Has(fsnotify.Write):
					etype = core.EventModify
				case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
					etype = core.EventDelete
				default:
					continue
				}

				select {
				case events <- core.Event{Type: etype, Key: key, Timestamp: now.UnixMilli()}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	return events, nil
}
